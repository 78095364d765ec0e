// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements a single-round plurality election run by one
administrator.

# Components

  - AccessControl: the administrator identity and the registered-voter gate
  - VoterRegistry: identity → Voter record, insert-only
  - ProposalRegistry: append-only proposals, GENESIS at index 0
  - Workflow: the six-phase state machine consulted before every mutation
  - Tally: strict-maximum scan, lowest index wins ties
  - EventEmitter: ordered notification log with subscribers

Election composes them behind a single lock:

	e := voting.NewElection("admin")
	_ = e.RegisterVoter(ctx, "admin", "alice")
	_ = e.StartProposalsRegistering(ctx, "admin")
	id, _ := e.SubmitProposal(ctx, "alice", "Pizza on Fridays")

# Phases

	RegisteringVoters → ProposalsRegistrationStarted → ProposalsRegistrationEnded
	→ VotingSessionStarted → VotingSessionEnded → VotesTallied

Each arrow is an administrator call. Phases never skip or regress.

# Errors

Rejected operations return *Error. Match the kind with errors.Is
(ErrUnauthorized, ErrNotAVoter, ErrWrongWorkflowStatus, ...); Error()
is the stable reason text clients display.

# Persistence

A Journal receives each event before it is applied; Replay rebuilds an
Election from the journaled log.
*/
package voting
