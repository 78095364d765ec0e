// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Vote API server.

Quickly Vote runs a single-round plurality election: one administrator
registers voters, voters submit proposals and cast one vote each, and the
administrator tallies. The proposal with the most votes wins; ties go to the
lowest index, and proposal 0 is the reserved GENESIS entry.

# Starting the Server

	ADMIN_IDENTITY=0xowner IDENTITY_KEY_SALT=secret DATABASE_URL=vote.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -admin 0xowner -key-salt secret

Settings may also come from a .env file (-env-file, default .env).

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file or PostgreSQL connection string
  - ADMIN_IDENTITY (-admin): administrator of a newly created election
  - IDENTITY_KEY_SALT (-key-salt): secret for identity key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ELECTION_ID (-election): election to serve (default: the latest one)

# Persistence

Every accepted operation is journaled as an event before it takes effect.
On start the latest election is rebuilt by replaying its events, so a
restart resumes exactly where the election left off.

# Architecture

  - voting: the election itself (access control, registries, workflow, tally, events)
  - db: schema, drivers and the event journal
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, caller authentication, JSON helpers
  - models: Request/response types
  - auth: Identity keys and election IDs
  - cliparse: Configuration parsing
  - client, cmd/votingctl: HTTP client and command line tool

See package documentation for each component.
*/
package main
