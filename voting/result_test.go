// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	e := NewElection(admin, WithClock(func() time.Time { return at }))

	for _, id := range []Identity{alice, bob, charlie} {
		require.NoError(t, e.RegisterVoter(ctx, admin, id))
	}
	require.NoError(t, e.StartProposalsRegistering(ctx, admin))
	_, err := e.SubmitProposal(ctx, alice, "Pizza")
	require.NoError(t, err)
	_, err = e.SubmitProposal(ctx, bob, "Tacos")
	require.NoError(t, err)
	require.NoError(t, e.EndProposalsRegistering(ctx, admin))
	require.NoError(t, e.StartVotingSession(ctx, admin))
	require.NoError(t, e.CastVote(ctx, alice, 2))
	require.NoError(t, e.CastVote(ctx, bob, 2))
	require.NoError(t, e.CastVote(ctx, charlie, 1))

	res := e.Result()
	assert.False(t, res.Tallied)
	assert.Equal(t, 0, res.WinningProposalID)
	assert.Equal(t, 3, res.TotalVotes)
	assert.Equal(t, 3, res.ProposalCount)
	assert.Empty(t, res.Winner.Description)
	assert.True(t, res.TalliedAt.IsZero())

	require.NoError(t, e.EndVotingSession(ctx, admin))
	_, err = e.TallyVotes(ctx, admin)
	require.NoError(t, err)

	res = e.Result()
	assert.True(t, res.Tallied)
	assert.Equal(t, 2, res.WinningProposalID)
	assert.Equal(t, Proposal{Description: "Tacos", VoteCount: 2}, res.Winner)
	assert.Equal(t, at, res.TalliedAt)
}

func TestResult_GenesisWins(t *testing.T) {
	e := newElectionAt(t, VotesTallied)

	res := e.Result()
	assert.True(t, res.Tallied)
	assert.Equal(t, 0, res.WinningProposalID)
	assert.Equal(t, GenesisDescription, res.Winner.Description)
	assert.Zero(t, res.TotalVotes)
}
