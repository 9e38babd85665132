package handlers

import (
	"net/http"

	"github.com/bhrigu123/readster/internal/httpserver/deps"
	"github.com/bhrigu123/readster/internal/logger"
)

// Reload triggers a manual pass over the import file.
//
//	POST /api/reload
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.ImportTrigger == nil {
			respondError(w, http.StatusNotFound, "import file not configured")
			return
		}

		select {
		case d.ImportTrigger <- struct{}{}:
			d.Logger.Info("manual import triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusAccepted)
		default:
			d.Logger.Warn("import already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			respondError(w, http.StatusTooManyRequests, "import already in progress")
		}
	}
}
