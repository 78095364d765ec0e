// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterVoterRequest: identity
  - SubmitProposalRequest: description
  - CastVoteRequest: proposal_id

# Response Types

Types for JSON responses:

  - RegisterVoterResponse: identity, identity_key
  - SubmitProposalResponse: proposal_id
  - CastVoteResponse: proposal_id, message
  - WorkflowResponse: previous, status (numeric 0..5) and their names
  - TallyResponse: winning_proposal_id
  - ElectionResponse: election overview
  - VoterResponse, ProposalResponse, ProposalsResponse: registry reads
  - ResultsResponse: winner, tallied flag and a readable summary
  - EventsResponse: notification log page
  - ErrorResponse: error, message

Domain records (voting.Voter, voting.Proposal, voting.Event) are embedded
as-is; their JSON tags live in package voting.

# Headers

Callers identify themselves with X-Identity and prove it with
X-Identity-Key. Both are optional for public reads.

# JSON Conventions

  - Field names use snake_case
  - Workflow statuses are numbers 0..5, with a *_name companion
  - Times are RFC 3339
*/
package models
