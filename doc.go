// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

/*
Package main provides the entry point for the Pollbox API server.

Pollbox is a polling service where registered users create polls with two
or more options, cast at most one vote per poll, and watch live tallies.

# Starting the Server

The server runs on sqlite out of the box:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8470 -t postgres -d "postgres://..."

A .env file in the working directory is loaded at startup.

# Configuration

Optional settings:

  - PORT (-p): server port (default: 8470)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (default: file:pollbox.db)
  - SESSION_TTL_HOURS (-session-ttl): login session lifetime (default: 168)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, polls, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: session auth, CORS, logging, JSON helpers
  - store: poll repository and voting engine (all SQL lives here)
  - models: request/response and domain types
  - auth: password hashing and token generation
  - db: driver selection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
