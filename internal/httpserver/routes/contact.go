package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/httpserver/handlers"
)

func init() { Register(registerContact) }

func registerContact(r chi.Router, d deps.Deps) {
	r.Post("/contact", handlers.SubmitContact(d))
	r.Get("/contact", handlers.ListContactMessages(d))
}
