// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowStatusString(t *testing.T) {
	assert.Equal(t, "RegisteringVoters", RegisteringVoters.String())
	assert.Equal(t, "VotesTallied", VotesTallied.String())
	assert.Equal(t, "WorkflowStatus(9)", WorkflowStatus(9).String())
	assert.False(t, WorkflowStatus(6).Valid())
}

func TestParseWorkflowStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    WorkflowStatus
		wantErr bool
	}{
		{"RegisteringVoters", RegisteringVoters, false},
		{"votingsessionstarted", VotingSessionStarted, false},
		{" 4 ", VotingSessionEnded, false},
		{"5", VotesTallied, false},
		{"6", 0, true},
		{"3abc", 0, true},
		{"-1", 0, true},
		{"256", 0, true},
		{"Closed", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWorkflowStatus(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkflowAdvance(t *testing.T) {
	var w Workflow

	prev, next, err := w.check(startProposals)
	require.NoError(t, err)
	require.NoError(t, w.advance(prev, next))
	assert.Equal(t, ProposalsRegistrationStarted, w.Status())

	// skipping and regressing are refused
	assert.Error(t, w.advance(ProposalsRegistrationStarted, VotingSessionStarted))
	assert.Error(t, w.advance(ProposalsRegistrationStarted, RegisteringVoters))
	assert.Error(t, w.advance(RegisteringVoters, ProposalsRegistrationStarted))
	assert.Equal(t, ProposalsRegistrationStarted, w.Status())

	_, _, err = w.check(startVoting)
	assert.ErrorIs(t, err, ErrWrongWorkflowStatus)
}
