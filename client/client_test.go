// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/router"
	"github.com/danielhkuo/quickly-vote/testutil"
	"github.com/danielhkuo/quickly-vote/voting"
)

type testServer struct {
	url        string
	electionID string
	salt       string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	election, electionID := testutil.NewTestElection(t, conn)

	srv := httptest.NewServer(router.NewRouter(election, electionID, cfg))
	t.Cleanup(srv.Close)
	return &testServer{url: srv.URL, electionID: electionID, salt: cfg.IdentityKeySalt}
}

func (s *testServer) as(id voting.Identity) *Client {
	return NewClient(s.url+"/", string(id), auth.GenerateIdentityKey(s.electionID, string(id), s.salt))
}

func TestClientElection(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)
	admin := s.as(testutil.TestAdmin)

	require.NoError(t, admin.Health(ctx))

	// keys handed out at registration work as client credentials
	reg, err := admin.RegisterVoter(ctx, "0xalice")
	require.NoError(t, err)
	alice := NewClient(s.url, reg.Identity, reg.IdentityKey)
	_, err = admin.RegisterVoter(ctx, "0xbob")
	require.NoError(t, err)
	bob := s.as("0xbob")

	_, err = admin.Advance(ctx, StepStartPropose)
	require.NoError(t, err)

	p, err := alice.SubmitProposal(ctx, "Pizza")
	require.NoError(t, err)
	assert.Equal(t, 1, p.ProposalID)
	p, err = bob.SubmitProposal(ctx, "Tacos")
	require.NoError(t, err)
	assert.Equal(t, 2, p.ProposalID)

	list, err := bob.Proposals(ctx)
	require.NoError(t, err)
	require.Len(t, list.Proposals, 3)
	assert.Equal(t, voting.GenesisDescription, list.Proposals[0].Proposal.Description)

	_, err = admin.Advance(ctx, StepEndPropose)
	require.NoError(t, err)
	wf, err := admin.Advance(ctx, StepStartVoting)
	require.NoError(t, err)
	assert.Equal(t, voting.VotingSessionStarted, wf.Status)

	_, err = alice.Vote(ctx, 2)
	require.NoError(t, err)
	_, err = bob.Vote(ctx, 2)
	require.NoError(t, err)

	one, err := alice.Proposal(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, one.Proposal.VoteCount)

	v, err := alice.Voter(ctx, "0xbob")
	require.NoError(t, err)
	assert.True(t, v.Voter.HasVoted)
	assert.Equal(t, 2, v.Voter.VotedProposalID)

	_, err = admin.Advance(ctx, StepEndVoting)
	require.NoError(t, err)
	tally, err := admin.Tally(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, tally.WinningProposalID)

	anon := NewClient(s.url, "", "")
	res, err := anon.Results(ctx)
	require.NoError(t, err)
	assert.True(t, res.Tallied)
	assert.Equal(t, "Tacos", res.Description)

	info, err := anon.Election(ctx)
	require.NoError(t, err)
	assert.Equal(t, voting.VotesTallied, info.Status)
	assert.Equal(t, s.electionID, info.ElectionID)

	events, err := anon.Events(ctx, 0)
	require.NoError(t, err)
	// 2 registrations, 5 transitions, 2 proposals, 2 votes
	assert.Len(t, events.Events, 11)
	more, err := anon.Events(ctx, events.Next)
	require.NoError(t, err)
	assert.Empty(t, more.Events)
}

func TestClientErrors(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	_, err := s.as("0xmallory").RegisterVoter(ctx, "0xeve")
	var apiErr Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Ownable: caller is not the owner", apiErr.Message)
	assert.Contains(t, err.Error(), "403 Forbidden")

	forged := NewClient(s.url, string(testutil.TestAdmin), "forged")
	_, err = forged.RegisterVoter(ctx, "0xeve")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	_, err = s.as(testutil.TestAdmin).Tally(ctx)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Current status is not voting session ended", apiErr.Message)
}
