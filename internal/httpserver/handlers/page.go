package handlers

import (
	"net/http"

	"github.com/bhrigu123/readster/internal/httpserver/deps"
)

type pageStateResponse struct {
	Saved bool     `json:"saved"`
	Tags  []string `json:"tags"`
}

// PageState bootstraps the popup for the current page: whether the URL
// is already on the reading list (archived items do not count) and the
// registered tags to offer.
//
//	GET /api/page?url=...
func PageState(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawURL := r.URL.Query().Get("url")
		if rawURL == "" {
			respondError(w, http.StatusBadRequest, "url is required")
			return
		}

		ctx := r.Context()
		saved, err := d.Repo.IsURLSaved(ctx, rawURL)
		if err != nil {
			respondStoreError(w, d, "page state", err)
			return
		}

		doc, err := d.Repo.Snapshot(ctx)
		if err != nil {
			respondStoreError(w, d, "page state", err)
			return
		}

		respondJSON(w, http.StatusOK, pageStateResponse{
			Saved: saved,
			Tags:  doc.Tags,
		})
	}
}
