// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

// ElectionHandler serves one election. Routes that act on behalf of a caller
// must be wrapped with Authenticator().WithCaller.
type ElectionHandler struct {
	election   *voting.Election
	electionID string
	cfg        cliparse.Config
	authn      *middleware.Authenticator
}

func NewElectionHandler(election *voting.Election, electionID string, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{
		election:   election,
		electionID: electionID,
		cfg:        cfg,
		authn:      middleware.NewAuthenticator(electionID, cfg.IdentityKeySalt),
	}
}

func (h *ElectionHandler) Authenticator() *middleware.Authenticator {
	return h.authn
}

// GetElection handles GET /election
func (h *ElectionHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	status := h.election.Status()
	_, tallied := h.election.Winner()

	middleware.JSONResponse(w, http.StatusOK, models.ElectionResponse{
		ElectionID:    h.electionID,
		Admin:         string(h.election.Admin()),
		Status:        status,
		StatusName:    status.String(),
		VoterCount:    h.election.VoterCount(),
		ProposalCount: h.election.ProposalCount(),
		Tallied:       tallied,
	})
}

// writeError maps an election error onto an HTTP status. Rejected
// preconditions carry their reason as the message; anything else is an
// infrastructure failure and is logged.
func writeError(w http.ResponseWriter, err error, op string) {
	var status int
	switch {
	case errors.Is(err, voting.ErrUnauthorized), errors.Is(err, voting.ErrNotAVoter):
		status = http.StatusForbidden
	case errors.Is(err, voting.ErrWrongWorkflowStatus),
		errors.Is(err, voting.ErrAlreadyRegistered),
		errors.Is(err, voting.ErrAlreadyVoted):
		status = http.StatusConflict
	case errors.Is(err, voting.ErrEmptyProposal):
		status = http.StatusBadRequest
	case errors.Is(err, voting.ErrProposalNotFound):
		status = http.StatusNotFound
	default:
		slog.Error("failed to "+op, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.ErrorResponse(w, status, voting.Reason(err))
}
