package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TheLab-ms/ethsignup/engine"
	"github.com/TheLab-ms/ethsignup/engine/config"
	"github.com/gavv/httpexpect/v2"
	"github.com/stretchr/testify/require"
)

type emptyConfig struct {
	Name string `json:"name"`
}

func TestConfigIndex(t *testing.T) {
	registry := config.NewRegistry()
	require.NoError(t, registry.Register(config.Spec{Module: "second", Title: "Second", Type: emptyConfig{}, Order: 2}))
	require.NoError(t, registry.Register(config.Spec{Module: "first", Title: "First", Description: "Comes first", Type: emptyConfig{}, Order: 1}))

	router := engine.NewRouter()
	New(registry).AttachRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	e := httpexpect.Default(t, server.URL)

	body := e.GET("/admin/config").Expect().Status(http.StatusOK).Body()
	body.Contains(`href="/admin/config/first"`)
	body.Contains(`href="/admin/config/second"`)
	body.Contains("Comes first")
	body.Match(`(?s)First.*Second`)

	e.GET("/admin").WithRedirectPolicy(httpexpect.DontFollowRedirects).
		Expect().Status(http.StatusSeeOther).
		Header("Location").IsEqual("/admin/config")
}

func TestConfigIndexEmpty(t *testing.T) {
	router := engine.NewRouter()
	New(config.NewRegistry()).AttachRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	httpexpect.Default(t, server.URL).GET("/admin/config").
		Expect().Status(http.StatusOK).
		Body().Contains("No configuration pages are registered.")
}
