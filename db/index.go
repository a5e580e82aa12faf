// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/glasanje/models"
)

type PollEntry struct {
	ID    int64
	Title string
	Kind  models.Kind
}

// PollIndex maps stored polls by title and by id. It is built once at
// startup and never modified, so it is safe to share between requests.
type PollIndex struct {
	byTitle map[string]PollEntry
	byID    map[int64]PollEntry
}

func NewPollIndex(entries []PollEntry) *PollIndex {
	ix := &PollIndex{
		byTitle: make(map[string]PollEntry, len(entries)),
		byID:    make(map[int64]PollEntry, len(entries)),
	}
	for _, e := range entries {
		ix.byTitle[e.Title] = e
		ix.byID[e.ID] = e
	}
	return ix
}

// LoadPollIndex reads every stored poll with its category.
func LoadPollIndex(ctx context.Context, conn *sql.DB) (*PollIndex, error) {
	rows, err := conn.QueryContext(ctx, `SELECT id, title, category FROM poll ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	var entries []PollEntry
	for rows.Next() {
		var e PollEntry
		var category string
		if err := rows.Scan(&e.ID, &e.Title, &category); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		if e.Kind, err = models.ParseKind(category); err != nil {
			return nil, fmt.Errorf("poll %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read polls: %w", err)
	}

	return NewPollIndex(entries), nil
}

// Lookup finds a poll by title.
func (ix *PollIndex) Lookup(title string) (PollEntry, bool) {
	e, ok := ix.byTitle[title]
	return e, ok
}

// Get finds a poll by id.
func (ix *PollIndex) Get(id int64) (PollEntry, bool) {
	e, ok := ix.byID[id]
	return e, ok
}

func (ix *PollIndex) Len() int {
	return len(ix.byID)
}
