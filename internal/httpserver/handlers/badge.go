package handlers

import (
	"net/http"

	"github.com/bhrigu123/readster/internal/httpserver/deps"
)

type badgeResponse struct {
	Count int    `json:"count"`
	Text  string `json:"text"`
}

// Badge exposes the live active-item count for the extension shell.
// Text is empty when there is nothing to read (which clears the badge)
// and capped at "99+".
//
//	GET /api/badge
func Badge(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, badgeResponse{
			Count: d.Badge.Count(),
			Text:  d.Badge.Text(),
		})
	}
}
