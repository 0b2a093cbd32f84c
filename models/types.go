// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

package models

import "time"

// Request types

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	// Whole hours until the poll expires. Zero or absent means no expiry.
	DurationHours int `json:"duration_hours"`
}

type CastVoteRequest struct {
	OptionID string `json:"option_id"`
}

// Response types

type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	SessionToken string `json:"session_token"`
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
}

type CreatePollResponse struct {
	PollID string `json:"poll_id"`
}

type CastVoteResponse struct {
	Success  bool `json:"success"`
	NewVotes int  `json:"new_votes"`
}

type OptionResult struct {
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type ResultsResponse struct {
	Results   []OptionResult `json:"results"`
	HasVoted  bool           `json:"has_voted"`
	IsActive  bool           `json:"is_active"`
	ExpiresAt *time.Time     `json:"expires_at"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

type Poll struct {
	ID        string     `json:"id"`
	Question  string     `json:"question"`
	CreatorID string     `json:"creator_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// Derived from ExpiresAt and the wall clock at read time; never stored.
	IsActive bool `json:"is_active"`
}

type Option struct {
	ID       string `json:"id"`
	PollID   string `json:"poll_id"`
	Text     string `json:"text"`
	Votes    int    `json:"votes"`
	Position int    `json:"position"`
}

type PollDetail struct {
	Poll     Poll     `json:"poll"`
	Options  []Option `json:"options"`
	HasVoted bool     `json:"has_voted"`
}

type PollSummary struct {
	Poll       Poll `json:"poll"`
	TotalVotes int  `json:"total_votes"`
}

type Vote struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	PollID   string    `json:"poll_id"`
	OptionID string    `json:"option_id"`
	CastAt   time.Time `json:"cast_at"`
}

type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// IsActive reports whether a poll with the given expiry accepts votes at the
// given instant. A nil expiry means the poll never auto-expires.
func IsActive(expiresAt *time.Time, now time.Time) bool {
	return expiresAt == nil || expiresAt.After(now)
}
