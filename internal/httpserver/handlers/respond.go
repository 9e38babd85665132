package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bhrigu123/readster/internal/httpserver/deps"
	"github.com/bhrigu123/readster/internal/logger"
	"github.com/bhrigu123/readster/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// respondStoreError maps an operation failure to a response. A storage
// failure means the change may not have been saved; clients should
// re-read to resync.
func respondStoreError(w http.ResponseWriter, d deps.Deps, op string, err error) {
	var storageErr *store.StorageError
	if errors.As(err, &storageErr) {
		d.Logger.Error("storage failure",
			logger.String("op", op),
			logger.Error(err))
		respondError(w, http.StatusServiceUnavailable, "storage unavailable, changes may not have been saved")
		return
	}
	d.Logger.Error("operation failed",
		logger.String("op", op),
		logger.Error(err))
	respondError(w, http.StatusInternalServerError, "internal error")
}
