package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/folio/internal/httpserver/mw"
)

func init() { RegisterInfra(registerReadyz) }

func registerReadyz(r chi.Router, d deps.Deps) {
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)).Get("/readyz", handlers.Readyz(d))
}
