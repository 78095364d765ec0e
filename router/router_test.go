// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
	"github.com/danielhkuo/quickly-vote/voting"
)

func newTestRouter(t *testing.T) (*http.ServeMux, *voting.Election, string) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	election, electionID := testutil.NewTestElection(t, conn)
	return NewRouter(election, electionID, testutil.GetTestConfig()), election, electionID
}

func TestHealthEndpoint(t *testing.T) {
	mux, _, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRootEndpoint(t *testing.T) {
	mux, _, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "quickly-vote API v1", w.Body.String())
}

func TestRouteExistence(t *testing.T) {
	mux, _, _ := newTestRouter(t)

	// Every route reaches its handler; most answer with a domain error for
	// an anonymous caller, never with the mux's own 404/405.
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/election"},
		{"POST", "/voters"},
		{"GET", "/voters/0xalice"},
		{"POST", "/workflow/start-proposals"},
		{"POST", "/workflow/end-proposals"},
		{"POST", "/workflow/start-voting"},
		{"POST", "/workflow/end-voting"},
		{"POST", "/workflow/tally"},
		{"POST", "/proposals"},
		{"GET", "/proposals"},
		{"GET", "/proposals/0"},
		{"POST", "/votes"},
		{"GET", "/results"},
		{"GET", "/events"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.NotEqual(t, http.StatusMethodNotAllowed, w.Code)
			if w.Code == http.StatusNotFound {
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"), "route not registered")
			}
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	mux, _, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/ballots/abc", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthenticatedRoute(t *testing.T) {
	mux, election, electionID := newTestRouter(t)
	cfg := testutil.GetTestConfig()

	req := testutil.MakeRequest("POST", "/voters", models.RegisterVoterRequest{Identity: "0xalice"},
		testutil.IdentityHeaders(cfg, electionID, testutil.TestAdmin))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req = testutil.MakeRequest("GET", "/voters/0xalice", nil, testutil.IdentityHeaders(cfg, electionID, "0xalice"))
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.VoterResponse
	testutil.AssertJSON(t, w, &resp)
	require.True(t, resp.Voter.IsRegistered)
	assert.Equal(t, 1, election.VoterCount())

	// a bad key is rejected before the handler runs
	req = testutil.MakeRequest("POST", "/voters", models.RegisterVoterRequest{Identity: "0xbob"}, map[string]string{
		models.HeaderIdentity:    string(testutil.TestAdmin),
		models.HeaderIdentityKey: "nope",
	})
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
	assert.Equal(t, 1, election.VoterCount())
}
