// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

// RegisterVoter handles POST /voters
// Admin only. The response carries the key the new voter authenticates with.
func (h *ElectionHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := auth.NormalizeIdentity(req.Identity)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "identity is invalid")
		return
	}

	caller := middleware.CallerFrom(r.Context())
	if err := h.election.RegisterVoter(r.Context(), caller, voting.Identity(id)); err != nil {
		writeError(w, err, "register voter")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterVoterResponse{
		Identity:    id,
		IdentityKey: h.authn.KeyFor(voting.Identity(id)),
	})
}

// GetVoter handles GET /voters/{identity}
// Voters only. Unknown identities report an unregistered voter, not 404.
func (h *ElectionHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("identity")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "identity is required")
		return
	}

	caller := middleware.CallerFrom(r.Context())
	voter, err := h.election.GetVoter(caller, voting.Identity(id))
	if err != nil {
		writeError(w, err, "get voter")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoterResponse{
		Identity: id,
		Voter:    voter,
	})
}
