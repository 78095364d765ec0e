// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

// GetResults handles GET /results
// Public. winning_proposal_id stays 0 until tallied is true.
func (h *ElectionHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	res := h.election.Result()

	resp := models.ResultsResponse{
		WinningProposalID: res.WinningProposalID,
		Tallied:           res.Tallied,
		TotalVotes:        res.TotalVotes,
		Summary:           Summary(res),
	}
	if res.Tallied {
		resp.Description = res.Winner.Description
		resp.VoteCount = res.Winner.VoteCount
		resp.ComputedAt = res.TalliedAt
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Summary renders a one-line human readable outcome.
func Summary(res voting.Result) string {
	if !res.Tallied {
		return fmt.Sprintf("Not tallied yet, %s cast across %s",
			plural(res.TotalVotes, "vote"), plural(res.ProposalCount, "proposal"))
	}
	return fmt.Sprintf("Proposal %d %q won with %s of %s, tallied %s",
		res.WinningProposalID, res.Winner.Description,
		humanize.Comma(int64(res.Winner.VoteCount)), plural(res.TotalVotes, "vote"),
		humanize.Time(res.TalliedAt))
}

func plural(n int, word string) string {
	if n != 1 {
		word += "s"
	}
	return humanize.Comma(int64(n)) + " " + word
}

// GetEvents handles GET /events?after=N
// Public. Returns the notifications with seq > after; next is the cursor
// to pass on the following call. Proposal notifications carry only their
// index.
func (h *ElectionHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	var after uint64
	if v := r.URL.Query().Get("after"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "after must be a non-negative integer")
			return
		}
		after = n
	}

	events := h.election.Events(after)
	next := after
	if len(events) > 0 {
		next = events[len(events)-1].Seq
	}
	for i := range events {
		events[i] = events[i].Public()
	}

	middleware.JSONResponse(w, http.StatusOK, models.EventsResponse{
		Events: events,
		Next:   next,
	})
}
