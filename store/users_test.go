// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

package store_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pollbox/pollbox/store"
	"github.com/pollbox/pollbox/testutil"
)

func TestCreateUser(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)

	user, err := s.CreateUser("alice", "alice@example.com", "hash", time.Now())
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == "" {
		t.Error("Expected non-empty user ID")
	}

	got, err := s.GetUserByUsername("alice")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if got.ID != user.ID || got.Email != "alice@example.com" {
		t.Errorf("Round-trip mismatch: %+v", got)
	}

	if _, err := s.GetUserByUsername("nobody"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestCreateUserDuplicates(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)

	if _, err := s.CreateUser("alice", "alice@example.com", "hash", time.Now()); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	_, err := s.CreateUser("alice", "other@example.com", "hash", time.Now())
	if !errors.Is(err, store.ErrValidation) {
		t.Fatalf("Expected ErrValidation for duplicate username, got %v", err)
	}
	if !strings.Contains(err.Error(), "username") {
		t.Errorf("Expected username message, got %q", err.Error())
	}

	_, err = s.CreateUser("alice2", "alice@example.com", "hash", time.Now())
	if !errors.Is(err, store.ErrValidation) {
		t.Fatalf("Expected ErrValidation for duplicate email, got %v", err)
	}
	if !strings.Contains(err.Error(), "email") {
		t.Errorf("Expected email message, got %q", err.Error())
	}
}

func TestSessions(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)

	user, err := s.CreateUser("alice", "alice@example.com", "hash", time.Now())
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	now := time.Now()
	token, err := s.CreateSession(user.ID, now, time.Hour)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	got, err := s.UserForSession(token, now.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("UserForSession failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("Expected user %s, got %s", user.ID, got.ID)
	}

	// Expired session
	if _, err := s.UserForSession(token, now.Add(2*time.Hour)); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for expired session, got %v", err)
	}

	// Deleted session
	if err := s.DeleteSession(token); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := s.UserForSession(token, now); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	// Unknown token
	if _, err := s.UserForSession("bogus", now); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown token, got %v", err)
	}
}
