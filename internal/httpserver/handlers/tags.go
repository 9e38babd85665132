package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bhrigu123/readster/internal/domain"
	"github.com/bhrigu123/readster/internal/httpserver/deps"
	"github.com/bhrigu123/readster/internal/logger"
)

type tagListResponse struct {
	Tags []string `json:"tags"`
}

// ListTags returns the globally registered tags, sorted ascending.
//
//	GET /api/tags
func ListTags(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.Repo.Snapshot(r.Context())
		if err != nil {
			respondStoreError(w, d, "list tags", err)
			return
		}
		respondJSON(w, http.StatusOK, tagListResponse{Tags: doc.Tags})
	}
}

type addTagRequest struct {
	Tag string `json:"tag"`
}

type addTagResponse struct {
	Tag string `json:"tag"`
}

// AddTag normalizes raw tag input and registers it globally. Input that
// normalizes to the empty string is rejected.
//
//	POST /api/tags {"tag": "  My Tag!! "}
func AddTag(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addTagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		tag := domain.NormalizeTag(req.Tag)
		if tag == "" {
			respondError(w, http.StatusBadRequest, "tag is empty after normalization")
			return
		}

		if err := d.Repo.AddGlobalTag(r.Context(), tag); err != nil {
			respondStoreError(w, d, "add tag", err)
			return
		}

		d.Logger.Debug("tag registered", logger.String("tag", tag))
		respondJSON(w, http.StatusCreated, addTagResponse{Tag: tag})
	}
}
