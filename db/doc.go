// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates and seeds the database.

# Schema Creation

Initialize checks the catalog for each table and creates the missing ones,
then inserts every poll and option from the definition files:

	index, err := db.Initialize(ctx, conn, db.Postgres, set)
	if err != nil {
		log.Fatal(err)
	}

Safe to call on every startup. Titles are unique per poll and per poll's
options, so rows that already exist fail with a uniqueness conflict and are
skipped. Any other insert error aborts Initialize. Stored vote counts are
never reset.

# Tables

	poll        (id, title UNIQUE, message, category)
	poll_option (id, title, link, poll_id → poll.id, votes, UNIQUE(poll_id, title))

category is the option kind of the poll (band or website).

# Dialects

Postgres and SQLite differ in catalog queries and identity columns. Use
DialectFor with the configured database type.

# Poll Index

Initialize returns a PollIndex mapping titles and ids to stored polls. It is
read-only after construction and is handed to the store.
*/
package db
