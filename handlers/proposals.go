// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
)

// SubmitProposal handles POST /proposals
func (h *ElectionHandler) SubmitProposal(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	caller := middleware.CallerFrom(r.Context())
	index, err := h.election.SubmitProposal(r.Context(), caller, req.Description)
	if err != nil {
		writeError(w, err, "submit proposal")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitProposalResponse{ProposalID: index})
}

// GetProposal handles GET /proposals/{index}
func (h *ElectionHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	caller := middleware.CallerFrom(r.Context())
	proposal, err := h.election.GetProposal(caller, index)
	if err != nil {
		writeError(w, err, "get proposal")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProposalResponse{
		ProposalID: index,
		Proposal:   proposal,
	})
}

// ListProposals handles GET /proposals
func (h *ElectionHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFrom(r.Context())
	proposals, err := h.election.Proposals(caller)
	if err != nil {
		writeError(w, err, "list proposals")
		return
	}

	resp := models.ProposalsResponse{Proposals: make([]models.ProposalResponse, 0, len(proposals))}
	for i, p := range proposals {
		resp.Proposals = append(resp.Proposals, models.ProposalResponse{ProposalID: i, Proposal: p})
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
