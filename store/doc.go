// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

/*
Package store implements the poll repository and voting engine.

# Design

All reads and writes go through explicit query methods on Store; handlers
never touch SQL. Multi-row mutations (poll creation, vote casting, poll
deletion) each run in a single transaction, so a poll is never visible
without options and a vote row is never recorded without its tally
increment.

# Vote Integrity

At most one vote may exist per (user, poll). CastVote pre-checks for an
existing vote to give a clean error, but the guarantee under concurrency is
the UNIQUE(user_id, poll_id) constraint on the vote table: when two casts
race, exactly one insert succeeds and the other's constraint violation is
translated to ErrAlreadyVoted.

# Poll Activity

A poll is active when its expiry is null or still in the future. Activity
is computed against a caller-supplied instant on every read and before
every vote; there is no stored flag to keep in sync and no sweep to miss.
Callers pass time.Now(); tests pass whatever clock the scenario needs.

# Errors

Domain outcomes are sentinel errors (ErrNotFound, ErrPollClosed,
ErrAlreadyVoted, ErrInvalidOption, ErrForbidden, ErrValidation) matched
with errors.Is. Validation messages are wrapped onto ErrValidation:

	if errors.Is(err, store.ErrValidation) {
		// err.Error() carries the user-facing message
	}

Anything else is a wrapped driver failure and fatal for the request.
*/
package store
