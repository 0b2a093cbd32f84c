// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

package handlers

import (
	"net/http"
	"time"

	"github.com/pollbox/pollbox/cliparse"
	"github.com/pollbox/pollbox/middleware"
	"github.com/pollbox/pollbox/store"
)

type ResultsHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewResultsHandler(s *store.Store, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{store: s, cfg: cfg}
}

// GetResults handles GET /polls/{id}/results
// Tallies are live; results are visible while the poll is open.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	results, err := h.store.Results(pollID, middleware.UserID(r), time.Now())
	if err != nil {
		writeStoreError(w, err, "Failed to load results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
