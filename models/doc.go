// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: username, email, password, confirm_password
  - LoginRequest: username, password
  - CreatePollRequest: question, options, duration_hours
  - CastVoteRequest: option_id

# Response Types

Types for JSON responses:

  - RegisterResponse: user_id, username
  - LoginResponse: session_token, user_id, username
  - CreatePollResponse: poll_id
  - CastVoteResponse: success, new_votes
  - ResultsResponse: results, has_voted, is_active, expires_at
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: registered account with bcrypt password hash
  - Poll: question, creator, optional expiry
  - Option: one choice within a poll, with its running tally
  - Vote: a user's single binding choice within a poll
  - Session: server-side login session

# Poll Activity

A poll's active state is not stored. It is a pure function of the poll's
expiry and the current time, evaluated by IsActive on every read path:

	active := models.IsActive(poll.ExpiresAt, time.Now())

A nil expiry means the poll stays open until its creator deletes it.
*/
package models
