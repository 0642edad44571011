package engine

import (
	"database/sql"

	"github.com/TheLab-ms/ethsignup/engine/config"
)

// App is a wrapper around the process manager and http router/server concepts defined by this pkg.
// It represents a set of "modules": types that can run workers, handle http routes, or expose config.
// Just load up modules with .Add() and then run the thing with .Run().
type App struct {
	ProcMgr
	Router         *Router
	configRegistry *config.Registry
	configStore    *config.Store
}

func NewApp(httpAddr string, router *Router, db *sql.DB) *App {
	registry := config.NewRegistry()
	a := &App{
		Router:         router,
		configRegistry: registry,
		configStore:    config.NewStore(db, registry),
	}
	a.ProcMgr.Add(router.Serve(httpAddr))
	return a
}

// Configs returns the registry of every config spec provided by a module.
func (a *App) Configs() *config.Registry { return a.configRegistry }

// ConfigStore returns the shared config store for typed config loading.
func (a *App) ConfigStore() *config.Store { return a.configStore }

func (a *App) Add(mod any) {
	// Config specs are registered first so routes can load them right away
	type configurableModule interface {
		ConfigSpec() config.Spec
	}
	if m, ok := mod.(configurableModule); ok {
		a.configRegistry.MustRegister(m.ConfigSpec())
	}

	type routableModule interface {
		AttachRoutes(*Router)
	}
	if m, ok := mod.(routableModule); ok {
		m.AttachRoutes(a.Router)
	}

	type workableModule interface {
		AttachWorkers(*ProcMgr)
	}
	if m, ok := mod.(workableModule); ok {
		m.AttachWorkers(&a.ProcMgr)
	}
}
