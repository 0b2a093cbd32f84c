// Copyright (c) 2026 Pollbox contributors.
// Source-available; see LICENSE for terms.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pollbox/pollbox/auth"
	"github.com/pollbox/pollbox/models"
)

// CastVote records one vote and bumps the chosen option's tally in a single
// transaction, returning the new tally. Preconditions are checked in order,
// first failure wins:
//
//  1. poll exists, else ErrNotFound
//  2. poll is active at now, else ErrPollClosed
//  3. no vote yet for (user, poll), else ErrAlreadyVoted
//  4. option exists and belongs to the poll, else ErrInvalidOption
//
// The existing-vote pre-check only gives a clean error in the common case.
// Two concurrent casts for the same (user, poll) both pass it; the
// UNIQUE(user_id, poll_id) constraint then fails exactly one of the
// inserts, and that failure is translated to ErrAlreadyVoted.
func (s *Store) CastVote(userID, pollID, optionID string, now time.Time) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var expiresAt *time.Time
	err = tx.QueryRow(`SELECT expires_at FROM poll WHERE id = $1`, pollID).Scan(&expiresAt)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query poll: %w", err)
	}

	if !models.IsActive(expiresAt, now) {
		return 0, ErrPollClosed
	}

	var voted bool
	err = tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM vote
			WHERE user_id = $1 AND poll_id = $2
		)
	`, userID, pollID).Scan(&voted)
	if err != nil {
		return 0, fmt.Errorf("failed to query votes: %w", err)
	}
	if voted {
		return 0, ErrAlreadyVoted
	}

	var optionPollID string
	err = tx.QueryRow(`SELECT poll_id FROM option WHERE id = $1`, optionID).Scan(&optionPollID)
	if err == sql.ErrNoRows {
		return 0, ErrInvalidOption
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query option: %w", err)
	}
	if optionPollID != pollID {
		return 0, ErrInvalidOption
	}

	_, err = tx.Exec(`
		INSERT INTO vote (id, user_id, poll_id, option_id, cast_at)
		VALUES ($1, $2, $3, $4, $5)
	`, auth.NewID(), userID, pollID, optionID, now)
	if isUniqueViolation(err) {
		return 0, ErrAlreadyVoted
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert vote: %w", err)
	}

	var newVotes int
	err = tx.QueryRow(`
		UPDATE option SET votes = votes + 1 WHERE id = $1 RETURNING votes
	`, optionID).Scan(&newVotes)
	if err != nil {
		return 0, fmt.Errorf("failed to increment vote count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit vote: %w", err)
	}

	return newVotes, nil
}

// Results returns the tallies for a poll's options in display order, along
// with whether the viewer has voted and the poll's activity at now.
func (s *Store) Results(pollID, viewerID string, now time.Time) (models.ResultsResponse, error) {
	var expiresAt *time.Time
	err := s.db.QueryRow(`SELECT expires_at FROM poll WHERE id = $1`, pollID).Scan(&expiresAt)
	if err == sql.ErrNoRows {
		return models.ResultsResponse{}, ErrNotFound
	}
	if err != nil {
		return models.ResultsResponse{}, fmt.Errorf("failed to query poll: %w", err)
	}

	options, err := s.optionsForPoll(pollID)
	if err != nil {
		return models.ResultsResponse{}, err
	}

	results := make([]models.OptionResult, 0, len(options))
	for _, opt := range options {
		results = append(results, models.OptionResult{Text: opt.Text, Votes: opt.Votes})
	}

	response := models.ResultsResponse{
		Results:   results,
		IsActive:  models.IsActive(expiresAt, now),
		ExpiresAt: expiresAt,
	}

	if viewerID != "" {
		hasVoted, err := s.HasVoted(viewerID, pollID)
		if err != nil {
			return models.ResultsResponse{}, err
		}
		response.HasVoted = hasVoted
	}

	return response, nil
}
