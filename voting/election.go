// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Journal durably records events before they take effect. A failed Append
// rejects the operation.
type Journal interface {
	Append(ctx context.Context, ev Event) error
}

type Option func(*Election)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Election) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func WithJournal(j Journal) Option {
	return func(e *Election) {
		e.journal = j
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Election) {
		if now != nil {
			e.now = now
		}
	}
}

// Election is a single-round plurality vote run by one administrator.
//
// Every operation runs under one lock, so each either applies completely or
// fails with no effect. Subscribers are called while that lock is held and
// must not call back into the Election.
type Election struct {
	mu sync.RWMutex

	logger  *slog.Logger
	journal Journal
	now     func() time.Time

	access    *AccessControl
	workflow  Workflow
	voters    *VoterRegistry
	proposals *ProposalRegistry
	events    *EventEmitter

	winner    int
	tallied   bool
	talliedAt time.Time
}

func NewElection(admin Identity, opts ...Option) *Election {
	voters := NewVoterRegistry()
	e := &Election{
		logger:    slog.Default(),
		now:       time.Now,
		access:    NewAccessControl(admin, voters),
		voters:    voters,
		proposals: NewProposalRegistry(),
		events:    NewEventEmitter(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "election")
	return e
}

// Replay rebuilds an election from its event log. The events must be the
// complete log, in order, as produced by a live Election.
func Replay(admin Identity, events []Event, opts ...Option) (*Election, error) {
	e := NewElection(admin, opts...)
	for _, ev := range events {
		if ev.Seq != e.events.NextSeq() {
			return nil, fmt.Errorf("replay: expected event %d, got %d", e.events.NextSeq(), ev.Seq)
		}
		if err := e.validateReplay(ev); err != nil {
			return nil, fmt.Errorf("replay event %d (%s): %w", ev.Seq, ev.Kind, err)
		}
		if err := e.apply(ev); err != nil {
			return nil, fmt.Errorf("replay event %d (%s): %w", ev.Seq, ev.Kind, err)
		}
	}
	return e, nil
}

func (e *Election) validateReplay(ev Event) error {
	switch ev.Kind {
	case EventVoterRegistered:
		if err := e.workflow.Require(RegisteringVoters, msgVotersClosed); err != nil {
			return err
		}
		return e.voters.checkRegister(ev.Voter)
	case EventProposalRegistered:
		if err := e.access.RequireVoter(ev.Voter); err != nil {
			return err
		}
		if err := e.workflow.Require(ProposalsRegistrationStarted, msgProposalsClosed); err != nil {
			return err
		}
		if err := checkDescription(ev.Description); err != nil {
			return err
		}
		if ev.ProposalID != e.proposals.Len() {
			return fmt.Errorf("proposal index %d, expected %d", ev.ProposalID, e.proposals.Len())
		}
		return nil
	case EventVoted:
		if err := e.workflow.Require(VotingSessionStarted, msgVotingNotStarted); err != nil {
			return err
		}
		if err := e.access.RequireVoter(ev.Voter); err != nil {
			return err
		}
		if err := e.voters.checkVote(ev.Voter); err != nil {
			return err
		}
		_, err := e.proposals.Get(ev.ProposalID)
		return err
	case EventWorkflowStatusChange:
		return nil
	}
	return fmt.Errorf("unknown event kind %q", ev.Kind)
}

// apply performs the state change an event describes and emits it. It is
// shared by live operations (after validation and journaling) and Replay.
func (e *Election) apply(ev Event) error {
	switch ev.Kind {
	case EventVoterRegistered:
		e.voters.register(ev.Voter)
	case EventProposalRegistered:
		e.proposals.add(ev.Description)
	case EventVoted:
		e.proposals.increment(ev.ProposalID)
		e.voters.recordVote(ev.Voter, ev.ProposalID)
	case EventWorkflowStatusChange:
		if err := e.workflow.advance(ev.Previous, ev.Next); err != nil {
			return err
		}
		switch ev.Next {
		case ProposalsRegistrationStarted:
			e.proposals.add(GenesisDescription)
		case VotesTallied:
			e.winner = Tally(e.proposals.proposals)
			e.tallied = true
			e.talliedAt = ev.At
		}
	default:
		return fmt.Errorf("unknown event kind %q", ev.Kind)
	}
	e.events.emit(ev)
	return nil
}

// commit journals ev and applies it. Must be called with e.mu held and
// after every precondition has been checked.
func (e *Election) commit(ctx context.Context, ev Event) (Event, error) {
	ev.Seq = e.events.NextSeq()
	ev.At = e.now().UTC()
	if e.journal != nil {
		if err := e.journal.Append(ctx, ev); err != nil {
			return Event{}, fmt.Errorf("failed to journal %s: %w", ev.Kind, err)
		}
	}
	if err := e.apply(ev); err != nil {
		return Event{}, err
	}
	return ev, nil
}

func (e *Election) transition(ctx context.Context, caller Identity, t transition) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.access.RequireAdmin(caller); err != nil {
		return err
	}
	prev, next, err := e.workflow.check(t)
	if err != nil {
		return err
	}
	if _, err := e.commit(ctx, Event{Kind: EventWorkflowStatusChange, Previous: prev, Next: next}); err != nil {
		return err
	}
	e.logger.Info("workflow status changed", "transition", t.name, "previous", prev.String(), "next", next.String())
	return nil
}

// RegisterVoter adds id to the voter registry. Admin only, during
// RegisteringVoters.
func (e *Election) RegisterVoter(ctx context.Context, caller, id Identity) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.access.RequireAdmin(caller); err != nil {
		return err
	}
	if err := e.workflow.Require(RegisteringVoters, msgVotersClosed); err != nil {
		return err
	}
	if err := e.voters.checkRegister(id); err != nil {
		return err
	}
	if _, err := e.commit(ctx, Event{Kind: EventVoterRegistered, Voter: id}); err != nil {
		return err
	}
	e.logger.Info("voter registered", "voter", id)
	return nil
}

// StartProposalsRegistering opens proposal submission and seeds the GENESIS
// proposal at index 0.
func (e *Election) StartProposalsRegistering(ctx context.Context, caller Identity) error {
	return e.transition(ctx, caller, startProposals)
}

func (e *Election) EndProposalsRegistering(ctx context.Context, caller Identity) error {
	return e.transition(ctx, caller, endProposals)
}

func (e *Election) StartVotingSession(ctx context.Context, caller Identity) error {
	return e.transition(ctx, caller, startVoting)
}

func (e *Election) EndVotingSession(ctx context.Context, caller Identity) error {
	return e.transition(ctx, caller, endVoting)
}

// TallyVotes selects the winning proposal and closes the election. It
// returns the winning index.
func (e *Election) TallyVotes(ctx context.Context, caller Identity) (int, error) {
	if err := e.transition(ctx, caller, tallyVotes); err != nil {
		return 0, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	e.logger.Info("votes tallied", "winning_proposal_id", e.winner)
	return e.winner, nil
}

// SubmitProposal appends a proposal on behalf of a registered voter and
// returns its index.
func (e *Election) SubmitProposal(ctx context.Context, caller Identity, description string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.access.RequireVoter(caller); err != nil {
		return 0, err
	}
	if err := e.workflow.Require(ProposalsRegistrationStarted, msgProposalsClosed); err != nil {
		return 0, err
	}
	if err := checkDescription(description); err != nil {
		return 0, err
	}
	ev, err := e.commit(ctx, Event{
		Kind:        EventProposalRegistered,
		Voter:       caller,
		ProposalID:  e.proposals.Len(),
		Description: description,
	})
	if err != nil {
		return 0, err
	}
	e.logger.Info("proposal registered", "proposal_id", ev.ProposalID, "voter", caller)
	return ev.ProposalID, nil
}

// CastVote records caller's single vote for the proposal at index.
func (e *Election) CastVote(ctx context.Context, caller Identity, index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.access.RequireVoter(caller); err != nil {
		return err
	}
	if err := e.workflow.Require(VotingSessionStarted, msgVotingNotStarted); err != nil {
		return err
	}
	if err := e.voters.checkVote(caller); err != nil {
		return err
	}
	if _, err := e.proposals.Get(index); err != nil {
		return err
	}
	if _, err := e.commit(ctx, Event{Kind: EventVoted, Voter: caller, ProposalID: index}); err != nil {
		return err
	}
	e.logger.Info("vote cast", "voter", caller, "proposal_id", index)
	return nil
}

// GetVoter returns the record for id. Unregistered identities report the
// zero Voter. The caller must be a registered voter.
func (e *Election) GetVoter(caller, id Identity) (Voter, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if err := e.access.RequireVoter(caller); err != nil {
		return Voter{}, err
	}
	return e.voters.Get(id), nil
}

// GetProposal returns the proposal at index. The caller must be a
// registered voter.
func (e *Election) GetProposal(caller Identity, index int) (Proposal, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if err := e.access.RequireVoter(caller); err != nil {
		return Proposal{}, err
	}
	return e.proposals.Get(index)
}

// Proposals returns every proposal in index order. The caller must be a
// registered voter.
func (e *Election) Proposals(caller Identity) ([]Proposal, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if err := e.access.RequireVoter(caller); err != nil {
		return nil, err
	}
	return e.proposals.All(), nil
}

// WinningProposalID is 0 until the votes are tallied.
func (e *Election) WinningProposalID() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.winner
}

// Winner reports the winning index and whether the tally has run, which
// WinningProposalID alone cannot distinguish from a win by proposal 0.
func (e *Election) Winner() (int, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.winner, e.tallied
}

func (e *Election) Admin() Identity {
	return e.access.Admin()
}

func (e *Election) Status() WorkflowStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.workflow.Status()
}

func (e *Election) ProposalCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.proposals.Len()
}

func (e *Election) VoterCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.voters.Len()
}

// Events returns the notifications with Seq > after, in emission order.
func (e *Election) Events(after uint64) []Event {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.events.Since(after)
}

// Subscribe calls fn for every event emitted from now on. The returned func
// unsubscribes.
func (e *Election) Subscribe(fn func(Event)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	off := e.events.Subscribe(fn)
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		off()
	}
}
