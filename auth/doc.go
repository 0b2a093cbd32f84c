// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

/*
Package auth provides password hashing and token generation utilities.

# Passwords

Passwords are hashed with bcrypt and only the hash is stored:

	hash, err := auth.HashPassword(password)

	if err := auth.CheckPassword(hash, password); err != nil {
		// auth.ErrWrongPassword
	}

# Session Tokens

Login sessions are identified by a random 192-bit token:

	token, err := auth.GenerateSessionToken()

Tokens are URL-safe base64 without padding. The server stores them in the
session table; possession of the token is the sole proof of identity.

# Row IDs

NewID returns a random UUID string used as the primary key for users, polls,
options, and votes.
*/
package auth
