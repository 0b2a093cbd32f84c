// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/pollbox/pollbox/store"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "pollbox_session"

type contextKey string

const userIDKey contextKey = "user_id"

// SessionToken extracts the session token from the request, preferring the
// cookie and falling back to the X-Session-Token header for non-browser
// clients.
func SessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.Header.Get("X-Session-Token")
}

// RequireAuth rejects the request with 401 unless a valid session is
// presented, and puts the authenticated user id in the request context.
func RequireAuth(s *store.Store, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := SessionToken(r)
		if token == "" {
			ErrorResponse(w, http.StatusUnauthorized, "Login required")
			return
		}

		user, err := s.UserForSession(token, time.Now())
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, user.ID)
		next(w, r.WithContext(ctx))
	}
}

// OptionalAuth resolves the session if one is presented but never rejects.
// Read paths use it so results can report has_voted for logged-in viewers.
func OptionalAuth(s *store.Store, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := SessionToken(r)
		if token != "" {
			if user, err := s.UserForSession(token, time.Now()); err == nil {
				ctx := context.WithValue(r.Context(), userIDKey, user.ID)
				r = r.WithContext(ctx)
			}
		}
		next(w, r)
	}
}

// UserID returns the authenticated user id from the request context, or ""
// for anonymous requests.
func UserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}
