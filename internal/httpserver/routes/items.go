package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/bhrigu123/readster/internal/httpserver/deps"
	"github.com/bhrigu123/readster/internal/httpserver/handlers"
	"github.com/bhrigu123/readster/internal/httpserver/mw"
)

func init() { Register(registerItems) }

func registerItems(r chi.Router, d deps.Deps) {
	r.Get("/api/items", handlers.ListItems(d))

	// Mutating endpoints share one rate limiter.
	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit(d.WriteLimit))
		r.Post("/api/items", handlers.SaveItem(d))
		r.Post("/api/items/{id}/archive", handlers.ArchiveItem(d))
		r.Post("/api/items/{id}/unarchive", handlers.UnarchiveItem(d))
		r.Put("/api/items/{id}/tags", handlers.UpdateItemTags(d))
		r.Delete("/api/items/{id}", handlers.DeleteItem(d))
	})
}
