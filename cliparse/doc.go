// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

/*
Package cliparse handles configuration from CLI flags and environment.

# Precedence

CLI flags win over environment variables; environment variables win over
defaults. Settings:

  - PORT (-p): server port (default 8470)
  - DATABASE_TYPE (-t): sqlite or postgres (default sqlite)
  - DATABASE_URL (-d): driver connection string
    (default file:pollbox.db for sqlite; required for postgres)
  - SESSION_TTL_HOURS (-session-ttl): login session lifetime (default 168)

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

The resulting Config is passed explicitly to the router and handlers; there
is no process-wide configuration state.
*/
package cliparse
