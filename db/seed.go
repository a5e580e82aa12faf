// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/glasanje/definitions"
)

// Initialize ensures both tables exist, inserts every poll and option of set
// that is not already stored, and returns the index of stored polls.
// Rows that already exist are skipped; any other insert failure is fatal.
func Initialize(ctx context.Context, conn *sql.DB, d Dialect, set *definitions.Set) (*PollIndex, error) {
	if _, err := CreateSchema(ctx, conn, d); err != nil {
		return nil, err
	}

	var inserted, skipped int
	for _, p := range set.Polls {
		_, err := conn.ExecContext(ctx, `
			INSERT INTO poll (title, message, category)
			VALUES ($1, $2, $3)
		`, p.Title, p.Message, string(p.Kind))
		if ok, err := rowOutcome(err, "poll", p.Title); err != nil {
			return nil, err
		} else if ok {
			inserted++
		} else {
			skipped++
		}
	}

	index, err := LoadPollIndex(ctx, conn)
	if err != nil {
		return nil, err
	}

	for _, p := range set.Polls {
		entry, ok := index.Lookup(p.Title)
		if !ok {
			slog.Warn("poll missing after seeding, skipping its options", "title", p.Title)
			continue
		}
		for _, o := range set.Options[p.Kind] {
			_, err := conn.ExecContext(ctx, `
				INSERT INTO poll_option (title, link, poll_id, votes)
				VALUES ($1, $2, $3, $4)
			`, o.Name, o.Link, entry.ID, o.Votes)
			if ok, err := rowOutcome(err, "option", o.Name); err != nil {
				return nil, err
			} else if ok {
				inserted++
			} else {
				skipped++
			}
		}
	}

	slog.Info("database seeded", "inserted", inserted, "skipped", skipped, "polls", index.Len())
	return index, nil
}

// rowOutcome reports whether a seed insert stored a row. Only uniqueness
// conflicts are skipped; any other failure aborts seeding, since it means the
// database can no longer be trusted to hold the definitions.
func rowOutcome(err error, what, name string) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case IsUniqueViolation(err):
		slog.Debug("already seeded", "kind", what, "name", name)
		return false, nil
	}
	return false, fmt.Errorf("failed to seed %s %q: %w", what, name, err)
}

// IsUniqueViolation reports whether err is a uniqueness conflict from either
// supported driver.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			// Without extended result codes only the message tells them apart.
			return strings.Contains(liteErr.Error(), "UNIQUE")
		}
	}
	return false
}
