// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

/*
Package db handles database connections and schema creation.

# Opening a Connection

Open selects the driver from the configuration:

	conn, err := db.Open(cfg)

Supported types are "postgres" (github.com/lib/pq) and "sqlite"
(modernc.org/sqlite, pure Go, no cgo). Sqlite connections enable foreign
key enforcement and a busy timeout through DSN pragmas.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: registered accounts (unique username and email)
  - session: server-side login sessions
  - poll: question, creator, optional expiry (no stored active flag)
  - option: poll choices with running vote tallies and display order
  - vote: one row per (user, poll), enforced by a UNIQUE constraint

# Relationships

	users 1──* poll
	users 1──* session
	poll  1──* option
	poll  1──* vote
	option 1──* vote

Deleting a poll cascades to its options and votes. The UNIQUE(user_id,
poll_id) constraint on vote is the final arbiter of the one-vote-per-user
rule; application pre-checks are an optimization only.

# Placeholders

All queries use $1-style placeholders with each parameter appearing exactly
once, in order. Sqlite assigns those parameters the same ordinal indexes as
postgres, so the same statements run on both drivers.
*/
package db
