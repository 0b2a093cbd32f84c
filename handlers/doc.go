// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

/*
Package handlers contains the HTTP request handlers.

# Handlers

  - AccountHandler: register, login, logout, the caller's own polls
  - PollHandler: create, list, fetch, delete polls
  - VotingHandler: cast a vote
  - ResultsHandler: live tallies

Each handler holds the store and config injected at construction; there is
no package-level state. Handlers parse and validate the request shape, read
the authenticated identity placed in the context by the auth middleware,
call one store operation with time.Now(), and translate the outcome to
JSON. All domain rules (one vote per user per poll, expiry, ownership,
option membership) live in the store.

# Error Mapping

writeStoreError maps store errors onto the HTTP taxonomy:

  - ErrNotFound → 404
  - ErrForbidden → 403
  - ErrPollClosed, ErrAlreadyVoted, ErrInvalidOption, ErrValidation → 400
  - anything else → 500, logged

Domain failures on the voting and results endpoints always surface as
structured JSON payloads, never as bare 500s.
*/
package handlers
