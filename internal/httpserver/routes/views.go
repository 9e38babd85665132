package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/bhrigu123/readster/internal/httpserver/deps"
	"github.com/bhrigu123/readster/internal/httpserver/handlers"
)

func init() { Register(registerViews) }

func registerViews(r chi.Router, d deps.Deps) {
	r.Get("/api/page", handlers.PageState(d))
	r.Get("/api/badge", handlers.Badge(d))
	r.Get("/dashboard", handlers.Dashboard(d))
}
