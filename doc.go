// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the glasanje voting server.

Glasanje serves a fixed set of polls (favourite band, favourite website)
whose options and starting vote counts are read from tab-separated files at
startup and stored in PostgreSQL or SQLite. Visitors vote with a single
click and see the results as a table, a pie chart and a spreadsheet.

# Starting the Server

	go run . -c dbsettings.properties -data data

Or against a local SQLite file:

	go run . -t sqlite -c dbsettings.properties

# Configuration

  - PORT (-p): server port (default 8080)
  - DATABASE_TYPE (-t): postgres or sqlite (default postgres)
  - DB_SETTINGS (-c): database properties file with host, port, name,
    user and password
  - DATA_DIR (-data): directory with polls.txt and the per-kind
    definition and results files
  - LOG_LEVEL (-log-level): debug, info, warn or error
  - TRUST_PROXY (-trust-proxy): rate limit by X-Forwarded-For; only
    behind a proxy that sets it

# Startup

Configuration, logger, database settings and definition files are read
first; any failure aborts startup. Missing tables are created and every
definition row is inserted, skipping rows that already exist, so restarts
keep the stored vote counts. Any other insert failure aborts startup. SIGINT or SIGTERM shuts the server down
gracefully.

# Architecture

  - cliparse: flags, environment and the database properties file
  - logger: zap-backed slog default logger
  - definitions: definition and results file parsing
  - db: dialects, schema, seeding and the poll index
  - store: the data access layer
  - results: sorting, winners, pie chart and spreadsheet
  - views: embedded HTML templates
  - sse: live vote event broker
  - handlers, router, middleware: the HTTP surface

See package documentation for each component.
*/
package main
