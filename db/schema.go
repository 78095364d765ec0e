// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Elections
CREATE TABLE IF NOT EXISTS election (
    id TEXT PRIMARY KEY,
    admin TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_election_created_at ON election(created_at);

-- Event log
CREATE TABLE IF NOT EXISTS election_event (
    election_id TEXT NOT NULL REFERENCES election(id) ON DELETE CASCADE,
    seq BIGINT NOT NULL,
    kind TEXT NOT NULL CHECK (kind IN ('VoterRegistered', 'ProposalRegistered', 'Voted', 'WorkflowStatusChange')),
    voter TEXT NOT NULL DEFAULT '',
    proposal_id INTEGER NOT NULL DEFAULT 0,
    description TEXT NOT NULL DEFAULT '',
    previous_status SMALLINT NOT NULL DEFAULT 0 CHECK (previous_status >= 0 AND previous_status <= 5),
    next_status SMALLINT NOT NULL DEFAULT 0 CHECK (next_status >= 0 AND next_status <= 5),
    created_at TIMESTAMP NOT NULL,
    PRIMARY KEY (election_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_election_event_kind ON election_event(election_id, kind);
`
