package handlers

import (
	"net/http"

	"github.com/bhrigu123/readster/internal/domain"
	"github.com/bhrigu123/readster/internal/httpserver/deps"
	"github.com/bhrigu123/readster/internal/logger"
)

type dashboardResponse struct {
	Groups []domain.DateGroup `json:"groups"`
	Tags   []string           `json:"tags"`
}

// Dashboard serves the dashboard snapshot and consumes the save-intent
// signal from the context menu: a first load carrying
// ?save=1&url=...&title=... saves the page and then redirects to the
// bare dashboard path, stripping the parameters so a reload cannot
// re-trigger the save.
//
//	GET /dashboard
//	GET /dashboard?save=1&url=...&title=...
func Dashboard(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		if q.Get("save") == "1" {
			rawURL := q.Get("url")
			if rawURL != "" {
				item, err := buildItem(d, rawURL, q.Get("title"), nil)
				if err == nil {
					err = d.Repo.AddItem(ctx, item)
				}
				if err != nil {
					respondStoreError(w, d, "dashboard save", err)
					return
				}
				d.Logger.Info("save intent consumed",
					logger.String("url", rawURL))
			}
			http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
			return
		}

		doc, err := d.Repo.Snapshot(ctx)
		if err != nil {
			respondStoreError(w, d, "dashboard", err)
			return
		}

		active := selectView(doc.Items, "reading")
		respondJSON(w, http.StatusOK, dashboardResponse{
			Groups: domain.GroupByDate(active, d.TimeNow()),
			Tags:   doc.Tags,
		})
	}
}
