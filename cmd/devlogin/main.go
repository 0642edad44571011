// Devlogin prints a login link for the dev@localhost administrator.
// Run from the data directory (where auth.pem and ethsignup.sqlite3 live).
package main

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/TheLab-ms/ethsignup/engine"
	"github.com/TheLab-ms/ethsignup/engine/db"
	"github.com/TheLab-ms/ethsignup/modules/auth"
	"github.com/TheLab-ms/ethsignup/modules/roles"
)

func main() {
	database, err := db.Open("ethsignup.sqlite3")
	if err != nil {
		panic(err)
	}
	defer database.Close()

	roles.New(database)
	m := auth.New(database, engine.NewTokenIssuer("auth.pem"))

	id, err := m.EnsureUser(context.Background(), "dev@localhost", roles.Administrator)
	if err != nil {
		panic(err)
	}

	tok, err := m.IssueToken(id, 5*time.Minute)
	if err != nil {
		panic(err)
	}

	q := url.Values{"t": {tok}, "n": {"/admin/config"}}
	fmt.Printf("http://localhost:8080/login?%s\n", q.Encode())
}
