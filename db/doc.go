// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and the election
event journal.

# Connecting

Open selects the driver from the configured database type:

	conn, err := db.Open("postgres", "postgres://...")   // github.com/lib/pq
	conn, err := db.Open("sqlite", "file:vote.db")       // modernc.org/sqlite

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - election: one row per election, holding its fixed administrator
  - election_event: the ordered notification log of each election

	election 1──* election_event

The event log is the source of truth. Store.Restore replays it into a
voting.Election; the Journal returned by Store.Journal appends each new
event before the election applies it.
*/
package db
