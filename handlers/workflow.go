// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

// Each transition moves exactly one step forward, so the previous status of
// a successful one is always next-1.
func (h *ElectionHandler) advance(w http.ResponseWriter, r *http.Request, op string, next voting.WorkflowStatus,
	run func(ctx context.Context, caller voting.Identity) error) {
	caller := middleware.CallerFrom(r.Context())
	if err := run(r.Context(), caller); err != nil {
		writeError(w, err, op)
		return
	}

	prev := next - 1
	middleware.JSONResponse(w, http.StatusOK, models.WorkflowResponse{
		Previous:     prev,
		Status:       next,
		StatusName:   next.String(),
		PreviousName: prev.String(),
	})
}

// StartProposals handles POST /workflow/start-proposals
func (h *ElectionHandler) StartProposals(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, "start proposals registration", voting.ProposalsRegistrationStarted, h.election.StartProposalsRegistering)
}

// EndProposals handles POST /workflow/end-proposals
func (h *ElectionHandler) EndProposals(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, "end proposals registration", voting.ProposalsRegistrationEnded, h.election.EndProposalsRegistering)
}

// StartVoting handles POST /workflow/start-voting
func (h *ElectionHandler) StartVoting(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, "start voting session", voting.VotingSessionStarted, h.election.StartVotingSession)
}

// EndVoting handles POST /workflow/end-voting
func (h *ElectionHandler) EndVoting(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, "end voting session", voting.VotingSessionEnded, h.election.EndVotingSession)
}

// Tally handles POST /workflow/tally
func (h *ElectionHandler) Tally(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())
	winner, err := h.election.TallyVotes(r.Context(), caller)
	if err != nil {
		writeError(w, err, "tally votes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TallyResponse{WinningProposalID: winner})
}
