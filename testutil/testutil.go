// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

// TestAdmin administers every election created by NewTestElection
const TestAdmin voting.Identity = "0xowner"

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		DatabaseURL:     ":memory:",
		DatabaseType:    db.TypeSQLite,
		AdminIdentity:   string(TestAdmin),
		IdentityKeySalt: "test-identity-salt",
	}
}

// NewTestElection creates a journaled election administered by TestAdmin
// and returns it with its ID
func NewTestElection(t *testing.T, conn *sql.DB) (*voting.Election, string) {
	t.Helper()

	store := db.NewStore(conn)
	election, rec, err := store.OpenElection(context.Background(), "", TestAdmin)
	if err != nil {
		t.Fatalf("Failed to create test election: %v", err)
	}

	return election, rec.ID
}

// RegisterTestVoters registers ids as TestAdmin
func RegisterTestVoters(t *testing.T, e *voting.Election, ids ...voting.Identity) {
	t.Helper()

	for _, id := range ids {
		if err := e.RegisterVoter(context.Background(), TestAdmin, id); err != nil {
			t.Fatalf("Failed to register test voter %s: %v", id, err)
		}
	}
}

// AdvanceTo walks the workflow forward as TestAdmin until it reaches status
func AdvanceTo(t *testing.T, e *voting.Election, status voting.WorkflowStatus) {
	t.Helper()

	ctx := context.Background()
	for e.Status() < status {
		var err error
		switch e.Status() {
		case voting.RegisteringVoters:
			err = e.StartProposalsRegistering(ctx, TestAdmin)
		case voting.ProposalsRegistrationStarted:
			err = e.EndProposalsRegistering(ctx, TestAdmin)
		case voting.ProposalsRegistrationEnded:
			err = e.StartVotingSession(ctx, TestAdmin)
		case voting.VotingSessionStarted:
			err = e.EndVotingSession(ctx, TestAdmin)
		case voting.VotingSessionEnded:
			_, err = e.TallyVotes(ctx, TestAdmin)
		}
		if err != nil {
			t.Fatalf("Failed to advance workflow to %s: %v", status, err)
		}
	}
}

// IdentityHeaders returns the headers that authenticate id
func IdentityHeaders(cfg cliparse.Config, electionID string, id voting.Identity) map[string]string {
	return map[string]string{
		models.HeaderIdentity:    string(id),
		models.HeaderIdentityKey: auth.GenerateIdentityKey(electionID, string(id), cfg.IdentityKeySalt),
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
