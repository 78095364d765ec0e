// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/voting"
)

var ErrNoElection = errors.New("no election found")

// ElectionRecord is a row of the election table.
type ElectionRecord struct {
	ID        string
	Admin     voting.Identity
	CreatedAt time.Time
}

// Store persists elections and their event logs.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateElection inserts a new election administered by admin.
func (s *Store) CreateElection(ctx context.Context, admin voting.Identity) (ElectionRecord, error) {
	rec := ElectionRecord{
		ID:        auth.NewElectionID(),
		Admin:     admin,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO election (id, admin, created_at)
		VALUES ($1, $2, $3)
	`, rec.ID, string(rec.Admin), rec.CreatedAt)
	if err != nil {
		return ElectionRecord{}, fmt.Errorf("failed to insert election: %w", err)
	}
	return rec, nil
}

// GetElection loads the election row with the given ID.
func (s *Store) GetElection(ctx context.Context, id string) (ElectionRecord, error) {
	var rec ElectionRecord
	var admin string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, admin, created_at FROM election WHERE id = $1
	`, id).Scan(&rec.ID, &admin, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return ElectionRecord{}, ErrNoElection
	}
	if err != nil {
		return ElectionRecord{}, fmt.Errorf("failed to query election: %w", err)
	}
	rec.Admin = voting.Identity(admin)
	return rec, nil
}

// LatestElection returns the most recently created election.
func (s *Store) LatestElection(ctx context.Context) (ElectionRecord, error) {
	var rec ElectionRecord
	var admin string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, admin, created_at FROM election
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&rec.ID, &admin, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return ElectionRecord{}, ErrNoElection
	}
	if err != nil {
		return ElectionRecord{}, fmt.Errorf("failed to query election: %w", err)
	}
	rec.Admin = voting.Identity(admin)
	return rec, nil
}

// LoadEvents returns the event log of an election in sequence order.
func (s *Store) LoadEvents(ctx context.Context, electionID string) ([]voting.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, kind, voter, proposal_id, description, previous_status, next_status, created_at
		FROM election_event
		WHERE election_id = $1
		ORDER BY seq
	`, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []voting.Event
	for rows.Next() {
		var ev voting.Event
		var kind, voter string
		var prev, next int
		if err := rows.Scan(&ev.Seq, &kind, &voter, &ev.ProposalID, &ev.Description, &prev, &next, &ev.At); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		ev.Kind = voting.EventKind(kind)
		ev.Voter = voting.Identity(voter)
		ev.Previous = voting.WorkflowStatus(prev)
		ev.Next = voting.WorkflowStatus(next)
		ev.At = ev.At.UTC()
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return events, nil
}

// Journal returns a voting.Journal that appends to the log of electionID.
func (s *Store) Journal(electionID string) voting.Journal {
	return &journal{db: s.db, electionID: electionID}
}

// Restore replays the stored log of an election and attaches a journal so
// further operations are persisted.
func (s *Store) Restore(ctx context.Context, rec ElectionRecord, opts ...voting.Option) (*voting.Election, error) {
	events, err := s.LoadEvents(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	opts = append(opts, voting.WithJournal(s.Journal(rec.ID)))
	e, err := voting.Replay(rec.Admin, events, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to restore election %s: %w", rec.ID, err)
	}
	return e, nil
}

// OpenElection restores the election with the given ID, or when id is empty
// the latest election, creating one administered by admin if none exists.
// The administrator of an existing election never changes; a differing
// admin is logged and ignored.
func (s *Store) OpenElection(ctx context.Context, id string, admin voting.Identity, opts ...voting.Option) (*voting.Election, ElectionRecord, error) {
	if id != "" {
		rec, err := s.GetElection(ctx, id)
		if err != nil {
			return nil, ElectionRecord{}, fmt.Errorf("election %s: %w", id, err)
		}
		return s.open(ctx, rec, admin, opts...)
	}

	rec, err := s.LatestElection(ctx)
	if errors.Is(err, ErrNoElection) {
		rec, err = s.CreateElection(ctx, admin)
		if err != nil {
			return nil, ElectionRecord{}, err
		}
		slog.Info("election created", "election_id", rec.ID, "admin", rec.Admin)
	} else if err != nil {
		return nil, ElectionRecord{}, err
	}
	return s.open(ctx, rec, admin, opts...)
}

func (s *Store) open(ctx context.Context, rec ElectionRecord, admin voting.Identity, opts ...voting.Option) (*voting.Election, ElectionRecord, error) {
	if rec.Admin != admin {
		slog.Warn("configured admin differs from stored election admin, keeping stored admin",
			"election_id", rec.ID, "stored", rec.Admin, "configured", admin)
	}

	e, err := s.Restore(ctx, rec, opts...)
	if err != nil {
		return nil, ElectionRecord{}, err
	}
	return e, rec, nil
}

type journal struct {
	db         *sql.DB
	electionID string
}

func (j *journal) Append(ctx context.Context, ev voting.Event) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO election_event
			(election_id, seq, kind, voter, proposal_id, description, previous_status, next_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, j.electionID, int64(ev.Seq), string(ev.Kind), string(ev.Voter), ev.ProposalID, ev.Description,
		int(ev.Previous), int(ev.Next), ev.At)
	if err != nil {
		return fmt.Errorf("failed to insert event %d: %w", ev.Seq, err)
	}
	return nil
}
