// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "errors"

// Error kinds. Compare with errors.Is; the concrete *Error carries the
// caller-facing reason text.
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotAVoter           = errors.New("not a voter")
	ErrWrongWorkflowStatus = errors.New("wrong workflow status")
	ErrAlreadyRegistered   = errors.New("already registered")
	ErrEmptyProposal       = errors.New("empty proposal")
	ErrProposalNotFound    = errors.New("proposal not found")
	ErrAlreadyVoted        = errors.New("already voted")
)

// Reason strings returned to callers. Existing clients match on these.
const (
	msgNotOwner          = "Ownable: caller is not the owner"
	msgNotAVoter         = "You're not a voter"
	msgAlreadyRegistered = "Already registered"
	msgEmptyProposal     = "Vous ne pouvez pas ne rien proposer"
	msgProposalNotFound  = "Proposal not found"
	msgAlreadyVoted      = "You have already voted"

	msgVotersClosed         = "Voters registration is not open yet"
	msgProposalsClosed      = "Proposals are not allowed yet"
	msgVotingNotStarted     = "Voting session havent started yet"
	msgCantStartProposals   = "Registering proposals cant be started now"
	msgProposalsNotStarted  = "Registering proposals havent started yet"
	msgProposalsNotFinished = "Registering proposals phase is not finished"
	msgNotVotingEnded       = "Current status is not voting session ended"
)

// Error is a rejected precondition. No state was changed.
type Error struct {
	Kind    error
	Message string

	// Set only for ErrWrongWorkflowStatus.
	Expected WorkflowStatus
	Actual   WorkflowStatus
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrongStatus(message string, expected, actual WorkflowStatus) *Error {
	return &Error{
		Kind:     ErrWrongWorkflowStatus,
		Message:  message,
		Expected: expected,
		Actual:   actual,
	}
}

// Reason returns the caller-facing reason text of err, or "" when err is
// not a rejected precondition.
func Reason(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
