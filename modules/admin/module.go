// Package admin serves the administration landing pages.
package admin

import (
	"log/slog"
	"net/http"

	"github.com/TheLab-ms/ethsignup/engine"
	"github.com/TheLab-ms/ethsignup/engine/config"
)

type Module struct {
	registry *config.Registry
}

func New(registry *config.Registry) *Module {
	return &Module{registry: registry}
}

func (m *Module) AttachRoutes(router *engine.Router) {
	router.HandleFunc("GET /admin", router.WithLeadership(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin/config", http.StatusSeeOther)
	}))

	router.HandleFunc("GET /admin/config", router.WithLeadership(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderConfigIndex(r.Context(), m.registry.List()).Render(r.Context(), w); err != nil {
			slog.Error("rendering config index", "error", err)
		}
	}))
}
