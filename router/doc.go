// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Vote API.

# Route Registration

NewRouter creates a configured http.ServeMux serving one election:

	mux := router.NewRouter(election, electionID, cfg)

Every route except /health and / is wrapped with request logging and caller
authentication (X-Identity, X-Identity-Key).

# Endpoints

Health:

	GET /health

Election (public):

	GET /election - Administrator, status, counts

Voters:

	POST /voters            - Register voter (admin), returns identity_key
	GET  /voters/{identity} - Voter record (voters)

Workflow (admin):

	POST /workflow/start-proposals
	POST /workflow/end-proposals
	POST /workflow/start-voting
	POST /workflow/end-voting
	POST /workflow/tally

Proposals (voters):

	POST /proposals         - Submit proposal
	GET  /proposals         - All proposals
	GET  /proposals/{index} - One proposal

Voting (voters):

	POST /votes

Results (public):

	GET /results       - Winner and summary
	GET /events?after= - Notification log
*/
package router
