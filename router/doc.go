// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

# Routes

Accounts:

	POST /register
	POST /login
	POST /logout            (auth)
	GET  /me/polls          (auth)

Polls:

	GET    /polls
	POST   /polls           (auth)
	GET    /polls/{id}
	DELETE /polls/{id}      (auth, owner only)

Voting and results:

	POST /polls/{id}/vote          (auth)
	GET  /polls/{id}/results

Routes marked (auth) are wrapped in middleware.RequireAuth, which rejects
unauthenticated callers before the handler runs. Read routes use
middleware.OptionalAuth so logged-in viewers get personalized has_voted
fields. Ownership of a poll is re-checked in the store on deletion; the
route guard alone is not trusted for it.
*/
package router
