package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/bhrigu123/readster/internal/domain"
	"github.com/bhrigu123/readster/internal/httpserver/deps"
	"github.com/bhrigu123/readster/internal/logger"
	"github.com/bhrigu123/readster/internal/urlinfo"
)

type itemListResponse struct {
	Items []domain.ReadingItem `json:"items"`
}

type groupedListResponse struct {
	Groups []domain.DateGroup `json:"groups"`
}

// ListItems returns the reading or archived view, optionally filtered by
// free-text query and tag, optionally bucketed by date.
//
//	GET /api/items?view=reading|archived|all&q=&tag=&grouped=1
func ListItems(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.Repo.Snapshot(r.Context())
		if err != nil {
			respondStoreError(w, d, "list items", err)
			return
		}

		q := r.URL.Query()
		items := selectView(doc.Items, q.Get("view"))
		items = domain.FilterItems(items, q.Get("q"), q.Get("tag"))

		if q.Get("grouped") == "1" {
			respondJSON(w, http.StatusOK, groupedListResponse{
				Groups: domain.GroupByDate(items, d.TimeNow()),
			})
			return
		}
		respondJSON(w, http.StatusOK, itemListResponse{Items: items})
	}
}

func selectView(items []domain.ReadingItem, view string) []domain.ReadingItem {
	if view == "all" {
		return items
	}
	wantArchived := view == "archived"
	kept := make([]domain.ReadingItem, 0, len(items))
	for _, item := range items {
		if item.Archived == wantArchived {
			kept = append(kept, item)
		}
	}
	return kept
}

type saveItemRequest struct {
	URL   string   `json:"url"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

type saveItemResponse struct {
	Item domain.ReadingItem `json:"item"`
}

// SaveItem is the save flow behind the popup and the context menu:
// derive domain and favicon from the URL, generate an id, store the
// item, then register any new tags globally. Saving an already-saved
// URL is a quiet no-op.
//
//	POST /api/items {"url": ..., "title": ..., "tags": [...]}
func SaveItem(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.URL == "" {
			respondError(w, http.StatusBadRequest, "url is required")
			return
		}

		item, err := buildItem(d, req.URL, req.Title, req.Tags)
		if err != nil {
			respondStoreError(w, d, "save item", err)
			return
		}

		ctx := r.Context()
		if err := d.Repo.AddItem(ctx, item); err != nil {
			respondStoreError(w, d, "save item", err)
			return
		}
		for _, tag := range item.Tags {
			if err := d.Repo.AddGlobalTag(ctx, tag); err != nil {
				respondStoreError(w, d, "register tag", err)
				return
			}
		}

		d.Logger.Info("item saved",
			logger.String("url", item.URL),
			logger.String("domain", item.Domain))
		respondJSON(w, http.StatusCreated, saveItemResponse{Item: item})
	}
}

func buildItem(d deps.Deps, rawURL, title string, tags []string) (domain.ReadingItem, error) {
	id, err := gonanoid.New()
	if err != nil {
		return domain.ReadingItem{}, err
	}
	if title == "" {
		title = rawURL
	}
	return domain.ReadingItem{
		ID:        id,
		URL:       rawURL,
		Title:     title,
		Favicon:   urlinfo.FaviconURL(rawURL),
		Domain:    urlinfo.Domain(rawURL),
		DateAdded: d.TimeNow().UnixMilli(),
		Archived:  false,
		Tags:      domain.NormalizeTags(tags),
	}, nil
}

// ArchiveItem marks an item as read. Unknown ids respond 204 as well:
// the item may already be gone, which is the same outcome.
//
//	POST /api/items/{id}/archive
func ArchiveItem(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.Repo.ArchiveItem(r.Context(), id); err != nil {
			respondStoreError(w, d, "archive item", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// UnarchiveItem puts an archived item back on the reading list.
//
//	POST /api/items/{id}/unarchive
func UnarchiveItem(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.Repo.UnarchiveItem(r.Context(), id); err != nil {
			respondStoreError(w, d, "unarchive item", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteItem removes an item permanently.
//
//	DELETE /api/items/{id}
func DeleteItem(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.Repo.DeleteItem(r.Context(), id); err != nil {
			respondStoreError(w, d, "delete item", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type updateTagsRequest struct {
	Tags []string `json:"tags"`
}

// UpdateItemTags replaces an item's tags wholesale.
//
//	PUT /api/items/{id}/tags {"tags": [...]}
func UpdateItemTags(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateTagsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		id := chi.URLParam(r, "id")
		if err := d.Repo.UpdateItemTags(r.Context(), id, req.Tags); err != nil {
			respondStoreError(w, d, "update item tags", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
