// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pollbox/pollbox/auth"
	"github.com/pollbox/pollbox/cliparse"
	"github.com/pollbox/pollbox/db"
)

// TestPassword is the plaintext password used for all fixture accounts.
const TestPassword = "password123"

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. The pool is capped at one connection so every query sees the
// same in-memory database; transactions from concurrent goroutines
// serialize through the pool.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            8470,
		DatabaseURL:     "file::memory:",
		DatabaseType:    "sqlite",
		SessionTTLHours: 1,
	}
}

// CreateTestUser inserts a user with TestPassword and returns its ID.
// The email is derived from the username.
func CreateTestUser(t *testing.T, conn *sql.DB, username string) string {
	t.Helper()

	hash, err := auth.HashPassword(TestPassword)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	userID := auth.NewID()
	_, err = conn.Exec(`
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, username, username+"@example.com", hash, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// CreateTestSession inserts a one-hour session for the user and returns
// its token.
func CreateTestSession(t *testing.T, conn *sql.DB, userID string) string {
	t.Helper()

	token, err := auth.GenerateSessionToken()
	if err != nil {
		t.Fatalf("Failed to generate session token: %v", err)
	}

	now := time.Now()
	_, err = conn.Exec(`
		INSERT INTO session (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, token, userID, now, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return token
}

// CreateTestPoll inserts a poll row and returns its ID. A nil expiresAt
// means the poll never expires.
func CreateTestPoll(t *testing.T, conn *sql.DB, creatorID, question string, expiresAt *time.Time) string {
	t.Helper()

	pollID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO poll (id, question, creator_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`, pollID, question, creatorID, time.Now(), expiresAt)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return pollID
}

// AddTestOption adds an option to a poll and returns the option ID
func AddTestOption(t *testing.T, conn *sql.DB, pollID, text string, position int) string {
	t.Helper()

	optionID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO option (id, poll_id, text, votes, position)
		VALUES ($1, $2, $3, 0, $4)
	`, optionID, pollID, text, position)
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}

	return optionID
}

// InsertTestVote records a vote row and bumps the option tally, bypassing
// the voting engine. Used to seed has_voted states.
func InsertTestVote(t *testing.T, conn *sql.DB, userID, pollID, optionID string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (id, user_id, poll_id, option_id, cast_at)
		VALUES ($1, $2, $3, $4, $5)
	`, auth.NewID(), userID, pollID, optionID, time.Now())
	if err != nil {
		t.Fatalf("Failed to insert test vote: %v", err)
	}

	_, err = conn.Exec(`UPDATE option SET votes = votes + 1 WHERE id = $1`, optionID)
	if err != nil {
		t.Fatalf("Failed to bump test vote count: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
