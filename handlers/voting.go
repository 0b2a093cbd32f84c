// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pollbox/pollbox/cliparse"
	"github.com/pollbox/pollbox/middleware"
	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/store"
)

type VotingHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewVotingHandler(s *store.Store, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: s, cfg: cfg}
}

// CastVote handles POST /polls/{id}/vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.OptionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option_id is required")
		return
	}

	userID := middleware.UserID(r)

	newVotes, err := h.store.CastVote(userID, pollID, req.OptionID, time.Now())
	if err != nil {
		writeStoreError(w, err, "Failed to cast vote")
		return
	}

	slog.Info("vote cast", "poll_id", pollID, "option_id", req.OptionID, "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
		Success:  true,
		NewVotes: newVotes,
	})
}
