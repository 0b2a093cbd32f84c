// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pollbox/pollbox/middleware"
	"github.com/pollbox/pollbox/store"
)

// writeStoreError maps a store error to an HTTP response. Domain errors
// become structured 4xx payloads; anything else is logged and reported as
// a 500 with the given fallback message.
func writeStoreError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	case errors.Is(err, store.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, "You can only delete your own polls")
	case errors.Is(err, store.ErrPollClosed):
		middleware.ErrorResponse(w, http.StatusBadRequest, "This poll has ended")
	case errors.Is(err, store.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusBadRequest, "You have already voted in this poll")
	case errors.Is(err, store.ErrInvalidOption):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid option for this poll")
	case errors.Is(err, store.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
	default:
		slog.Error("store operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, fallback)
	}
}

func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), store.ErrValidation.Error())
	return strings.TrimPrefix(msg, ": ")
}
