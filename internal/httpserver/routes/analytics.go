package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/httpserver/handlers"
)

func init() { Register(registerAnalytics) }

func registerAnalytics(r chi.Router, d deps.Deps) {
	r.Post("/analytics", handlers.TrackAnalytics(d))
	r.Get("/analytics", handlers.AnalyticsSummary(d))
}
