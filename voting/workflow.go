// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"
	"strconv"
	"strings"
)

// WorkflowStatus is one of the six election phases. The numeric value is
// the wire encoding used by WorkflowStatusChange notifications.
type WorkflowStatus uint8

const (
	RegisteringVoters WorkflowStatus = iota
	ProposalsRegistrationStarted
	ProposalsRegistrationEnded
	VotingSessionStarted
	VotingSessionEnded
	VotesTallied
)

var statusNames = [...]string{
	RegisteringVoters:            "RegisteringVoters",
	ProposalsRegistrationStarted: "ProposalsRegistrationStarted",
	ProposalsRegistrationEnded:   "ProposalsRegistrationEnded",
	VotingSessionStarted:         "VotingSessionStarted",
	VotingSessionEnded:           "VotingSessionEnded",
	VotesTallied:                 "VotesTallied",
}

func (s WorkflowStatus) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("WorkflowStatus(%d)", s)
}

// Valid reports whether s is one of the six known phases.
func (s WorkflowStatus) Valid() bool {
	return s <= VotesTallied
}

// ParseWorkflowStatus accepts either the phase name (case-insensitive) or
// its numeric encoding.
func ParseWorkflowStatus(v string) (WorkflowStatus, error) {
	v = strings.TrimSpace(v)
	for i, name := range statusNames {
		if strings.EqualFold(name, v) {
			return WorkflowStatus(i), nil
		}
	}
	if n, err := strconv.ParseUint(v, 10, 8); err == nil && WorkflowStatus(n).Valid() {
		return WorkflowStatus(n), nil
	}
	return 0, fmt.Errorf("unknown workflow status %q", v)
}

// transition is an administrator-triggered step from one phase to the
// next. message is the reason returned when the current phase is not from.
type transition struct {
	name    string
	from    WorkflowStatus
	message string
}

var (
	startProposals = transition{"startProposalsRegistering", RegisteringVoters, msgCantStartProposals}
	endProposals   = transition{"endProposalsRegistering", ProposalsRegistrationStarted, msgProposalsNotStarted}
	startVoting    = transition{"startVotingSession", ProposalsRegistrationEnded, msgProposalsNotFinished}
	endVoting      = transition{"endVotingSession", VotingSessionStarted, msgVotingNotStarted}
	tallyVotes     = transition{"tallyVotes", VotingSessionEnded, msgNotVotingEnded}
)

// Workflow holds the current phase. It only moves forward one step at a
// time and is the single authority every other component consults before
// mutating.
type Workflow struct {
	status WorkflowStatus
}

func (w *Workflow) Status() WorkflowStatus {
	return w.status
}

// Require fails with ErrWrongWorkflowStatus unless the current phase is
// expected.
func (w *Workflow) Require(expected WorkflowStatus, message string) error {
	if w.status != expected {
		return wrongStatus(message, expected, w.status)
	}
	return nil
}

// check validates t against the current phase and returns the resulting
// (previous, next) pair without applying it.
func (w *Workflow) check(t transition) (prev, next WorkflowStatus, err error) {
	if err := w.Require(t.from, t.message); err != nil {
		return 0, 0, err
	}
	return t.from, t.from + 1, nil
}

// advance moves from prev to next. Callers validate with check first;
// advance refuses anything but a single forward step from the current phase.
func (w *Workflow) advance(prev, next WorkflowStatus) error {
	if prev != w.status || next != prev+1 || !next.Valid() {
		return fmt.Errorf("illegal workflow transition %s -> %s from %s", prev, next, w.status)
	}
	w.status = next
	return nil
}
