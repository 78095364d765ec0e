package models

import (
	"time"

	"github.com/danielhkuo/quickly-vote/voting"
)

// Header names
const (
	HeaderIdentity    = "X-Identity"
	HeaderIdentityKey = "X-Identity-Key"
)

// Request types

type RegisterVoterRequest struct {
	Identity string `json:"identity"`
}

type SubmitProposalRequest struct {
	Description string `json:"description"`
}

type CastVoteRequest struct {
	ProposalID *int `json:"proposal_id"`
}

// Response types

type RegisterVoterResponse struct {
	Identity    string `json:"identity"`
	IdentityKey string `json:"identity_key"`
}

type SubmitProposalResponse struct {
	ProposalID int `json:"proposal_id"`
}

type CastVoteResponse struct {
	ProposalID int    `json:"proposal_id"`
	Message    string `json:"message"`
}

type WorkflowResponse struct {
	Previous     voting.WorkflowStatus `json:"previous"`
	Status       voting.WorkflowStatus `json:"status"`
	StatusName   string                `json:"status_name"`
	PreviousName string                `json:"previous_name"`
}

type TallyResponse struct {
	WinningProposalID int `json:"winning_proposal_id"`
}

type ElectionResponse struct {
	ElectionID    string                `json:"election_id"`
	Admin         string                `json:"admin"`
	Status        voting.WorkflowStatus `json:"status"`
	StatusName    string                `json:"status_name"`
	VoterCount    int                   `json:"voter_count"`
	ProposalCount int                   `json:"proposal_count"`
	Tallied       bool                  `json:"tallied"`
}

type VoterResponse struct {
	Identity string       `json:"identity"`
	Voter    voting.Voter `json:"voter"`
}

type ProposalResponse struct {
	ProposalID int             `json:"proposal_id"`
	Proposal   voting.Proposal `json:"proposal"`
}

type ProposalsResponse struct {
	Proposals []ProposalResponse `json:"proposals"`
}

// WinningProposalID is 0 until Tallied is true.
type ResultsResponse struct {
	WinningProposalID int       `json:"winning_proposal_id"`
	Tallied           bool      `json:"tallied"`
	Description       string    `json:"description,omitempty"`
	VoteCount         int       `json:"vote_count"`
	TotalVotes        int       `json:"total_votes"`
	Summary           string    `json:"summary"`
	ComputedAt        time.Time `json:"computed_at"`
}

type EventsResponse struct {
	Events []voting.Event `json:"events"`
	Next   uint64         `json:"next"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
