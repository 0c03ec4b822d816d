package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
)

type (
	Registrar  func(r chi.Router, d deps.Deps)
	Middleware = func(http.Handler) http.Handler
)

type entry struct {
	reg Registrar
	mws []Middleware
}

var (
	apiRegistry   []entry
	infraRegistry []entry
)

// Register adds a registrar mounted under /api, with optional per-route middlewares.
func Register(reg Registrar, mws ...Middleware) {
	apiRegistry = append(apiRegistry, entry{reg: reg, mws: mws})
}

// RegisterInfra adds a registrar mounted at the root (probes, metrics).
func RegisterInfra(reg Registrar, mws ...Middleware) {
	infraRegistry = append(infraRegistry, entry{reg: reg, mws: mws})
}

// RegisterAll is called once from httpserver.NewRouter.
func RegisterAll(r chi.Router, d deps.Deps) {
	mount(r, infraRegistry, d)
	r.Route("/api", func(api chi.Router) {
		mount(api, apiRegistry, d)
	})
}

func mount(r chi.Router, entries []entry, d deps.Deps) {
	for _, e := range entries {
		if len(e.mws) == 0 {
			e.reg(r, d)
			continue
		}
		sub := r.With(e.mws...) // apply per-route middlewares
		e.reg(sub, d)
	}
}
