// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/glasanje/db"
	"github.com/danielhkuo/glasanje/models"
)

var (
	ErrPollNotFound  = errors.New("poll not found")
	ErrUnknownOption = errors.New("option not found")
	ErrVoteRejected  = errors.New("vote did not update exactly one option")
)

// Error is returned by every Store operation that fails.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return "store: " + e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

func fail(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// Store runs every operation as a single autocommitted statement.
type Store struct {
	db    *sql.DB
	index *db.PollIndex
}

func New(conn *sql.DB, index *db.PollIndex) *Store {
	return &Store{db: conn, index: index}
}

// Poll returns one poll by id.
func (s *Store) Poll(ctx context.Context, id int64) (models.Poll, error) {
	var p models.Poll
	var category string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, message, category
		FROM poll
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Title, &p.Message, &category)

	if err == sql.ErrNoRows {
		return models.Poll{}, fail("get poll", fmt.Errorf("%w: %d", ErrPollNotFound, id))
	}
	if err != nil {
		return models.Poll{}, fail("get poll", err)
	}
	if p.Kind, err = models.ParseKind(category); err != nil {
		return models.Poll{}, fail("get poll", err)
	}
	return p, nil
}

// Polls returns all polls ordered by id.
func (s *Store) Polls(ctx context.Context) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, message, category
		FROM poll
		ORDER BY id
	`)
	if err != nil {
		return nil, fail("list polls", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		var category string
		if err := rows.Scan(&p.ID, &p.Title, &p.Message, &category); err != nil {
			return nil, fail("list polls", err)
		}
		if p.Kind, err = models.ParseKind(category); err != nil {
			return nil, fail("list polls", err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fail("list polls", err)
	}
	return polls, nil
}

// Options returns the options of a poll ordered by id. The option kind comes
// from the poll's stored category; polls missing from the index are not found.
func (s *Store) Options(ctx context.Context, pollID int64) ([]models.Option, error) {
	entry, ok := s.index.Get(pollID)
	if !ok {
		return nil, fail("list options", fmt.Errorf("%w: %d", ErrPollNotFound, pollID))
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, poll_id, title, link, votes
		FROM poll_option
		WHERE poll_id = $1
		ORDER BY id
	`, pollID)
	if err != nil {
		return nil, fail("list options", err)
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		o := models.Option{Kind: entry.Kind}
		if err := rows.Scan(&o.ID, &o.PollID, &o.Name, &o.Link, &o.Votes); err != nil {
			return nil, fail("list options", err)
		}
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fail("list options", err)
	}
	return options, nil
}

// OptionPoll returns the id of the poll an option belongs to.
func (s *Store) OptionPoll(ctx context.Context, optionID int64) (int64, error) {
	var pollID int64
	err := s.db.QueryRowContext(ctx, `
		SELECT poll_id FROM poll_option WHERE id = $1
	`, optionID).Scan(&pollID)

	if err == sql.ErrNoRows {
		return 0, fail("find option", fmt.Errorf("%w: %d", ErrUnknownOption, optionID))
	}
	if err != nil {
		return 0, fail("find option", err)
	}
	return pollID, nil
}

// Vote adds one vote to an option. The increment happens in the database,
// so concurrent votes never lose updates.
func (s *Store) Vote(ctx context.Context, optionID int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE poll_option SET votes = votes + 1 WHERE id = $1
	`, optionID)
	if err != nil {
		return fail("vote", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fail("vote", err)
	}
	if n != 1 {
		return fail("vote", fmt.Errorf("%w: option %d, %d rows", ErrVoteRejected, optionID, n))
	}
	return nil
}
