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

// CreatePoll inserts a poll and its options as one transaction. Option
// texts are trimmed and blank entries dropped; at least two must remain.
// Duration is whole hours added to now; zero means no expiry.
func (s *Store) CreatePoll(creatorID, question string, optionTexts []string, durationHours int, now time.Time) (models.PollDetail, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.PollDetail{}, fmt.Errorf("%w: question is required", ErrValidation)
	}
	if durationHours < 0 {
		return models.PollDetail{}, fmt.Errorf("%w: duration must not be negative", ErrValidation)
	}

	texts := make([]string, 0, len(optionTexts))
	for _, text := range optionTexts {
		text = strings.TrimSpace(text)
		if text != "" {
			texts = append(texts, text)
		}
	}
	if len(texts) < 2 {
		return models.PollDetail{}, fmt.Errorf("%w: at least 2 options are required", ErrValidation)
	}

	poll := models.Poll{
		ID:        auth.NewID(),
		Question:  question,
		CreatorID: creatorID,
		CreatedAt: now,
		IsActive:  true,
	}
	if durationHours > 0 {
		expiresAt := now.Add(time.Duration(durationHours) * time.Hour)
		poll.ExpiresAt = &expiresAt
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.PollDetail{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO poll (id, question, creator_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`, poll.ID, poll.Question, poll.CreatorID, poll.CreatedAt, poll.ExpiresAt)
	if err != nil {
		return models.PollDetail{}, fmt.Errorf("failed to insert poll: %w", err)
	}

	options := make([]models.Option, 0, len(texts))
	for i, text := range texts {
		opt := models.Option{
			ID:       auth.NewID(),
			PollID:   poll.ID,
			Text:     text,
			Position: i,
		}
		_, err = tx.Exec(`
			INSERT INTO option (id, poll_id, text, votes, position)
			VALUES ($1, $2, $3, 0, $4)
		`, opt.ID, opt.PollID, opt.Text, opt.Position)
		if err != nil {
			return models.PollDetail{}, fmt.Errorf("failed to insert option: %w", err)
		}
		options = append(options, opt)
	}

	if err := tx.Commit(); err != nil {
		return models.PollDetail{}, fmt.Errorf("failed to commit poll: %w", err)
	}

	return models.PollDetail{Poll: poll, Options: options}, nil
}

// GetPoll reads a poll with its options in display order and, when viewerID
// is non-empty, whether that viewer has already voted. Activity is computed
// from the expiry and now; nothing is swept or flipped on read.
func (s *Store) GetPoll(pollID, viewerID string, now time.Time) (models.PollDetail, error) {
	var poll models.Poll
	err := s.db.QueryRow(`
		SELECT id, question, creator_id, created_at, expires_at
		FROM poll
		WHERE id = $1
	`, pollID).Scan(&poll.ID, &poll.Question, &poll.CreatorID, &poll.CreatedAt, &poll.ExpiresAt)

	if err == sql.ErrNoRows {
		return models.PollDetail{}, ErrNotFound
	}
	if err != nil {
		return models.PollDetail{}, fmt.Errorf("failed to query poll: %w", err)
	}
	poll.IsActive = models.IsActive(poll.ExpiresAt, now)

	options, err := s.optionsForPoll(poll.ID)
	if err != nil {
		return models.PollDetail{}, err
	}

	detail := models.PollDetail{Poll: poll, Options: options}

	if viewerID != "" {
		hasVoted, err := s.HasVoted(viewerID, poll.ID)
		if err != nil {
			return models.PollDetail{}, err
		}
		detail.HasVoted = hasVoted
	}

	return detail, nil
}

// ListPolls returns all polls, most recently created first, with their
// total vote counts.
func (s *Store) ListPolls(now time.Time) ([]models.PollSummary, error) {
	return s.listPolls("", now)
}

// ListPollsByCreator returns the polls created by one user, most recent
// first.
func (s *Store) ListPollsByCreator(creatorID string, now time.Time) ([]models.PollSummary, error) {
	return s.listPolls(creatorID, now)
}

func (s *Store) listPolls(creatorID string, now time.Time) ([]models.PollSummary, error) {
	query := `
		SELECT p.id, p.question, p.creator_id, p.created_at, p.expires_at,
		       COALESCE(SUM(o.votes), 0)
		FROM poll p
		LEFT JOIN option o ON o.poll_id = p.id
	`
	var args []interface{}
	if creatorID != "" {
		query += ` WHERE p.creator_id = $1`
		args = append(args, creatorID)
	}
	query += `
		GROUP BY p.id, p.question, p.creator_id, p.created_at, p.expires_at
		ORDER BY p.created_at DESC
	`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	summaries := []models.PollSummary{}
	for rows.Next() {
		var summary models.PollSummary
		err := rows.Scan(
			&summary.Poll.ID, &summary.Poll.Question, &summary.Poll.CreatorID,
			&summary.Poll.CreatedAt, &summary.Poll.ExpiresAt, &summary.TotalVotes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		summary.Poll.IsActive = models.IsActive(summary.Poll.ExpiresAt, now)
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate polls: %w", err)
	}

	return summaries, nil
}

// DeletePoll removes a poll when requested by its creator. Options and
// votes go with it via foreign key cascades. The ownership check and the
// delete share a transaction so a concurrent vote either lands before the
// cascade or fails against a missing poll, never in between.
func (s *Store) DeletePoll(pollID, requesterID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var creatorID string
	err = tx.QueryRow(`SELECT creator_id FROM poll WHERE id = $1`, pollID).Scan(&creatorID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query poll: %w", err)
	}

	if creatorID != requesterID {
		return ErrForbidden
	}

	_, err = tx.Exec(`DELETE FROM poll WHERE id = $1`, pollID)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	return nil
}

// HasVoted reports whether the user has a vote recorded for the poll.
func (s *Store) HasVoted(userID, pollID string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM vote
			WHERE user_id = $1 AND poll_id = $2
		)
	`, userID, pollID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query votes: %w", err)
	}
	return exists, nil
}

func (s *Store) optionsForPoll(pollID string) ([]models.Option, error) {
	rows, err := s.db.Query(`
		SELECT id, poll_id, text, votes, position
		FROM option
		WHERE poll_id = $1
		ORDER BY position
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text, &opt.Votes, &opt.Position); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate options: %w", err)
	}

	return options, nil
}
