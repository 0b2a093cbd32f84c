// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pollbox/pollbox/auth"
	"github.com/pollbox/pollbox/models"
)

// CreateUser inserts a new account. Duplicate usernames and emails surface
// as ErrValidation, caught at the storage constraint rather than by a
// pre-check, so concurrent registrations cannot both succeed.
func (s *Store) CreateUser(username, email, passwordHash string, now time.Time) (models.User, error) {
	user := models.User{
		ID:           auth.NewID(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}

	_, err := s.db.Exec(`
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt)

	if isUniqueViolation(err) {
		if strings.Contains(err.Error(), "username") {
			return models.User{}, fmt.Errorf("%w: username already exists", ErrValidation)
		}
		return models.User{}, fmt.Errorf("%w: email already registered", ErrValidation)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

// GetUserByUsername looks up an account for login.
func (s *Store) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	err := s.db.QueryRow(`
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return user, nil
}

// CreateSession mints a login session for the user and returns its token.
func (s *Store) CreateSession(userID string, now time.Time, ttl time.Duration) (string, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	_, err = s.db.Exec(`
		INSERT INTO session (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, token, userID, now, now.Add(ttl))

	if err != nil {
		return "", fmt.Errorf("failed to insert session: %w", err)
	}

	return token, nil
}

// UserForSession resolves a session token to its user. Expired or unknown
// tokens return ErrNotFound.
func (s *Store) UserForSession(token string, now time.Time) (models.User, error) {
	var user models.User
	var expiresAt time.Time
	err := s.db.QueryRow(`
		SELECT u.id, u.username, u.email, u.password_hash, u.created_at, s.expires_at
		FROM session s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1
	`, token).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &expiresAt)

	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query session: %w", err)
	}

	if !expiresAt.After(now) {
		return models.User{}, ErrNotFound
	}

	return user, nil
}

// DeleteSession invalidates a session token. Deleting an unknown token is
// a no-op.
func (s *Store) DeleteSession(token string) error {
	_, err := s.db.Exec(`DELETE FROM session WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
