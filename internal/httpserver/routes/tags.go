package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/bhrigu123/readster/internal/httpserver/deps"
	"github.com/bhrigu123/readster/internal/httpserver/handlers"
	"github.com/bhrigu123/readster/internal/httpserver/mw"
)

func init() { Register(registerTags) }

func registerTags(r chi.Router, d deps.Deps) {
	r.Get("/api/tags", handlers.ListTags(d))
	r.With(mw.RateLimit(d.WriteLimit)).Post("/api/tags", handlers.AddTag(d))
}
