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

type PollHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewPollHandler(s *store.Store, cfg cliparse.Config) *PollHandler {
	return &PollHandler{store: s, cfg: cfg}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	userID := middleware.UserID(r)

	detail, err := h.store.CreatePoll(userID, req.Question, req.Options, req.DurationHours, time.Now())
	if err != nil {
		writeStoreError(w, err, "Failed to create poll")
		return
	}

	slog.Info("poll created",
		"poll_id", detail.Poll.ID,
		"creator_id", userID,
		"options", len(detail.Options),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		PollID: detail.Poll.ID,
	})
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.ListPolls(time.Now())
	if err != nil {
		writeStoreError(w, err, "Failed to list polls")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"polls": polls,
	})
}

// GetPoll handles GET /polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	detail, err := h.store.GetPoll(pollID, middleware.UserID(r), time.Now())
	if err != nil {
		writeStoreError(w, err, "Failed to load poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, detail)
}

// DeletePoll handles DELETE /polls/{id}
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	userID := middleware.UserID(r)

	if err := h.store.DeletePoll(pollID, userID); err != nil {
		writeStoreError(w, err, "Failed to delete poll")
		return
	}

	slog.Info("poll deleted", "poll_id", pollID, "creator_id", userID)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Poll deleted",
	})
}
