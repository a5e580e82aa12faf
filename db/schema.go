// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/glasanje/cliparse"
)

const (
	PollTable   = "poll"
	OptionTable = "poll_option"
)

// Dialect holds the statements that differ between supported databases.
type Dialect struct {
	Name        string
	tableExists string
	createPoll  string
	createOpt   string
}

var Postgres = Dialect{
	Name: cliparse.DatabasePostgres,
	tableExists: `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_name = $1
		)`,
	createPoll: `
		CREATE TABLE poll (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			title VARCHAR(150) NOT NULL UNIQUE,
			message TEXT NOT NULL,
			category VARCHAR(32) NOT NULL
		)`,
	createOpt: `
		CREATE TABLE poll_option (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			title VARCHAR(100) NOT NULL,
			link VARCHAR(150) NOT NULL,
			poll_id BIGINT NOT NULL REFERENCES poll(id),
			votes BIGINT NOT NULL DEFAULT 0 CHECK (votes >= 0),
			UNIQUE (poll_id, title)
		)`,
}

var SQLite = Dialect{
	Name: cliparse.DatabaseSQLite,
	tableExists: `
		SELECT EXISTS (
			SELECT 1 FROM sqlite_master
			WHERE type = 'table' AND name = $1
		)`,
	createPoll: `
		CREATE TABLE poll (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title VARCHAR(150) NOT NULL UNIQUE,
			message TEXT NOT NULL,
			category VARCHAR(32) NOT NULL
		)`,
	createOpt: `
		CREATE TABLE poll_option (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title VARCHAR(100) NOT NULL,
			link VARCHAR(150) NOT NULL,
			poll_id INTEGER NOT NULL REFERENCES poll(id),
			votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0),
			UNIQUE (poll_id, title)
		)`,
}

// DialectFor returns the dialect of a configured database type.
func DialectFor(databaseType string) (Dialect, error) {
	switch databaseType {
	case cliparse.DatabasePostgres:
		return Postgres, nil
	case cliparse.DatabaseSQLite:
		return SQLite, nil
	}
	return Dialect{}, fmt.Errorf("unsupported database type %q", databaseType)
}

// TableExists asks the database catalog whether table is present.
func (d Dialect) TableExists(ctx context.Context, conn *sql.DB, table string) (bool, error) {
	var exists bool
	if err := conn.QueryRowContext(ctx, d.tableExists, table).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", table, err)
	}
	return exists, nil
}

// CreateSchema creates whichever of the two tables is missing and reports
// which ones it created. Existing tables are left untouched.
func CreateSchema(ctx context.Context, conn *sql.DB, d Dialect) (created []string, err error) {
	tables := []struct {
		name string
		ddl  string
	}{
		{PollTable, d.createPoll},
		{OptionTable, d.createOpt},
	}

	for _, t := range tables {
		exists, err := d.TableExists(ctx, conn, t.name)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		if _, err := conn.ExecContext(ctx, t.ddl); err != nil {
			return created, fmt.Errorf("failed to create table %s: %w", t.name, err)
		}
		slog.Info("created table", "table", t.name, "dialect", d.Name)
		created = append(created, t.name)
	}

	return created, nil
}

// Pool limits applied to every connection pool.
const (
	MaxOpenConns    = 20
	MaxIdleConns    = 5
	ConnMaxIdleTime = 10 * time.Minute
)

// Configure applies the pool limits to conn.
func Configure(conn *sql.DB) {
	conn.SetMaxOpenConns(MaxOpenConns)
	conn.SetMaxIdleConns(MaxIdleConns)
	conn.SetConnMaxIdleTime(ConnMaxIdleTime)
}
