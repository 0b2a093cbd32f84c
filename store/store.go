// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

package store

import (
	"database/sql"
	"errors"
	"strings"
)

// Domain errors. Handlers translate these to HTTP statuses; nothing else
// crosses the store boundary except wrapped driver failures.
var (
	ErrNotFound      = errors.New("not found")
	ErrPollClosed    = errors.New("poll is closed")
	ErrAlreadyVoted  = errors.New("already voted in this poll")
	ErrInvalidOption = errors.New("option does not belong to this poll")
	ErrForbidden     = errors.New("forbidden")
	ErrValidation    = errors.New("validation failed")
)

// Store implements the poll repository and voting engine on top of a
// relational database. All multi-row mutations run in a transaction; the
// schema's constraints, not application pre-checks, are the final arbiter
// of the one-vote-per-user-per-poll invariant.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// isUniqueViolation reports whether err is a uniqueness constraint error
// from either supported driver (lib/pq or modernc.org/sqlite).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
