// Ethsignup serves the administration pages for Ethereum wallet signup.
// Settings are stored in sqlite under the data directory.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/TheLab-ms/ethsignup/engine"
	"github.com/TheLab-ms/ethsignup/engine/config"
	"github.com/TheLab-ms/ethsignup/engine/db"
	"github.com/TheLab-ms/ethsignup/internal/i18n"
	"github.com/TheLab-ms/ethsignup/modules"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	HttpAddr string `envDefault:":8080"`

	// Dir holds the sqlite database and the token signing key.
	Dir string `envDefault:"."`

	DefaultLanguage string `envDefault:"en"`

	// SubmitRateLimit is the number of settings submissions allowed per second. Zero disables the limit.
	SubmitRateLimit int `envDefault:"5"`
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	conf, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "ETHSIGNUP_", UseFieldNameByDefault: true})
	if err != nil {
		panic(err)
	}

	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(context.Background(), conf.HttpAddr); err != nil {
			panic(err)
		}
		return
	}

	app, database, err := newApp(conf)
	if err != nil {
		panic(err)
	}
	defer database.Close()

	if len(os.Args) > 1 && os.Args[1] == "config" {
		if err := runConfigCommand(context.Background(), app.ConfigStore(), os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	app.Run(ctx)
}

func newApp(conf Config) (*engine.App, *sql.DB, error) {
	database, err := db.Open(filepath.Join(conf.Dir, "ethsignup.sqlite3"))
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	negotiator, err := i18n.NewNegotiator(conf.DefaultLanguage)
	if err != nil {
		database.Close()
		return nil, nil, err
	}

	router := engine.NewRouter()
	router.Use(negotiator.Middleware)
	router.HandleFunc("GET "+engine.HealthPath, engine.ServeHealth(database))

	a := engine.NewApp(conf.HttpAddr, router, database)
	modules.Register(a, modules.Options{
		Database:        database,
		AuthIssuer:      engine.NewTokenIssuer(filepath.Join(conf.Dir, "auth.pem")),
		SubmitRateLimit: conf.SubmitRateLimit,
	})

	return a, database, nil
}

var errUsage = errors.New("usage: config get <module> <field> | config set <module> <field> <value>")

// runConfigCommand reads or writes a single config field from the command line.
func runConfigCommand(ctx context.Context, store *config.Store, args []string, out io.Writer) error {
	if len(args) < 3 {
		return errUsage
	}
	e, err := store.Editable(ctx, args[1])
	if err != nil {
		return err
	}

	switch args[0] {
	case "get":
		if len(args) != 3 {
			return errUsage
		}
		val, err := e.Get(args[2])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, val)
		return nil

	case "set":
		if len(args) != 4 {
			return errUsage
		}
		if err := e.Set(args[2], args[3]); err != nil {
			return err
		}
		if err := e.Save(ctx); err != nil {
			return err
		}
		slog.Info("updated config", "module", args[1], "field", args[2])
		return nil

	default:
		return errUsage
	}
}

// runHealthcheck checks the health endpoint of a server started with the same config.
func runHealthcheck(ctx context.Context, httpAddr string) error {
	url, err := engine.HealthURL(httpAddr)
	if err != nil {
		return err
	}
	return engine.CheckHealth(ctx, url)
}
