// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/voting"
)

func NewRouter(election *voting.Election, electionID string, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	h := handlers.NewElectionHandler(election, electionID, cfg)
	withCaller := h.Authenticator().WithCaller

	route := func(pattern string, fn http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(withCaller(fn)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Election overview (public)
	route("GET /election", h.GetElection)

	// Voter registry
	route("POST /voters", h.RegisterVoter)
	route("GET /voters/{identity}", h.GetVoter)

	// Workflow (admin only)
	route("POST /workflow/start-proposals", h.StartProposals)
	route("POST /workflow/end-proposals", h.EndProposals)
	route("POST /workflow/start-voting", h.StartVoting)
	route("POST /workflow/end-voting", h.EndVoting)
	route("POST /workflow/tally", h.Tally)

	// Proposals (voters only)
	route("POST /proposals", h.SubmitProposal)
	route("GET /proposals", h.ListProposals)
	route("GET /proposals/{index}", h.GetProposal)

	// Voting
	route("POST /votes", h.CastVote)

	// Results and notifications (public)
	route("GET /results", h.GetResults)
	route("GET /events", h.GetEvents)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-vote API v1"))
	})

	return mux
}
