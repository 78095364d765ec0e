// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Vote API.

# Handler Type

ElectionHandler serves a single election and is created with the election,
its ID and the server config:

	h := handlers.NewElectionHandler(election, electionID, cfg)

The caller of each request is taken from the context, where
middleware.Authenticator.WithCaller put it. Handlers never decide who may do
what; the election does, and its errors are mapped onto HTTP:

	Unauthorized, NotAVoter                           403
	WrongWorkflowStatus, AlreadyRegistered, AlreadyVoted 409
	EmptyProposal                                      400
	ProposalNotFound                                   404
	anything else                                      500

The message of an error response is the reason text of the rejection, for
example "You have already voted".

# Election Lifecycle

	POST /voters                   → RegisterVoter (returns identity_key)
	POST /workflow/start-proposals → StartProposals (seeds GENESIS at index 0)
	POST /proposals                → SubmitProposal
	POST /workflow/end-proposals   → EndProposals
	POST /workflow/start-voting    → StartVoting
	POST /votes                    → CastVote
	POST /workflow/end-voting      → EndVoting
	POST /workflow/tally           → Tally

# Results

GetResults is public. winning_proposal_id is 0 until tallied is true, and
summary is a humanized one-line outcome.
*/
package handlers
