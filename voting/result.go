// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "time"

// Result is the public outcome of an election. Before the tally only
// Tallied (false) and TotalVotes are meaningful.
type Result struct {
	WinningProposalID int
	Tallied           bool
	Winner            Proposal
	TotalVotes        int
	ProposalCount     int
	TalliedAt         time.Time
}

// Result reports the outcome. It needs no caller: the winning index is
// public, and once tallied so is the winning proposal.
func (e *Election) Result() Result {
	e.mu.RLock()
	defer e.mu.RUnlock()

	res := Result{
		WinningProposalID: e.winner,
		Tallied:           e.tallied,
		ProposalCount:     e.proposals.Len(),
		TalliedAt:         e.talliedAt,
	}
	for _, p := range e.proposals.proposals {
		res.TotalVotes += p.VoteCount
	}
	if e.tallied {
		res.Winner, _ = e.proposals.Get(e.winner)
	}
	return res
}
