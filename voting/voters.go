// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

// Voter is the record kept for every identity. The zero value is what an
// identity that was never registered reports.
//
// VotedProposalID is 0 both before voting and after a vote for proposal 0;
// pair it with HasVoted to tell the two apart.
type Voter struct {
	IsRegistered    bool `json:"is_registered"`
	HasVoted        bool `json:"has_voted"`
	VotedProposalID int  `json:"voted_proposal_id"`
}

// VoterRegistry maps identities to voter records. It is insert-only.
type VoterRegistry struct {
	voters map[Identity]*Voter
}

func NewVoterRegistry() *VoterRegistry {
	return &VoterRegistry{voters: make(map[Identity]*Voter)}
}

// Get returns a copy of the record for id, the zero Voter if unknown.
func (r *VoterRegistry) Get(id Identity) Voter {
	if v, ok := r.voters[id]; ok {
		return *v
	}
	return Voter{}
}

func (r *VoterRegistry) IsRegistered(id Identity) bool {
	v, ok := r.voters[id]
	return ok && v.IsRegistered
}

// Len returns the number of registered voters.
func (r *VoterRegistry) Len() int {
	return len(r.voters)
}

func (r *VoterRegistry) checkRegister(id Identity) error {
	if r.IsRegistered(id) {
		return newError(ErrAlreadyRegistered, msgAlreadyRegistered)
	}
	return nil
}

func (r *VoterRegistry) register(id Identity) {
	r.voters[id] = &Voter{IsRegistered: true}
}

func (r *VoterRegistry) checkVote(id Identity) error {
	if r.Get(id).HasVoted {
		return newError(ErrAlreadyVoted, msgAlreadyVoted)
	}
	return nil
}

func (r *VoterRegistry) recordVote(id Identity, proposalID int) {
	v := r.voters[id]
	v.HasVoted = true
	v.VotedProposalID = proposalID
}
