// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "strings"

// GenesisDescription is the description of the reserved proposal at index 0.
const GenesisDescription = "GENESIS"

type Proposal struct {
	Description string `json:"description"`
	VoteCount   int    `json:"vote_count"`
}

// ProposalRegistry is the append-only sequence of proposals. Index 0 is
// GENESIS once proposal registration has started.
type ProposalRegistry struct {
	proposals []Proposal
}

func NewProposalRegistry() *ProposalRegistry {
	return &ProposalRegistry{}
}

func (r *ProposalRegistry) Len() int {
	return len(r.proposals)
}

// Get returns the proposal at index, failing with ErrProposalNotFound when
// index is out of range.
func (r *ProposalRegistry) Get(index int) (Proposal, error) {
	if index < 0 || index >= len(r.proposals) {
		return Proposal{}, newError(ErrProposalNotFound, msgProposalNotFound)
	}
	return r.proposals[index], nil
}

// All returns a copy of every proposal in index order.
func (r *ProposalRegistry) All() []Proposal {
	out := make([]Proposal, len(r.proposals))
	copy(out, r.proposals)
	return out
}

func checkDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return newError(ErrEmptyProposal, msgEmptyProposal)
	}
	return nil
}

func (r *ProposalRegistry) add(description string) int {
	r.proposals = append(r.proposals, Proposal{Description: description})
	return len(r.proposals) - 1
}

func (r *ProposalRegistry) increment(index int) {
	r.proposals[index].VoteCount++
}
