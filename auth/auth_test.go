// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewElectionID(t *testing.T) {
	id := NewElectionID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	// Test randomness - two IDs should be different
	assert.NotEqual(t, id, NewElectionID())
}

func TestGenerateIdentityKey(t *testing.T) {
	tests := []struct {
		name       string
		electionID string
		identity   string
		salt       string
	}{
		{"standard", "election-1", "0xalice", "secret-salt"},
		{"empty election id", "", "0xalice", "salt"},
		{"empty salt", "election-1", "0xbob", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateIdentityKey(tt.electionID, tt.identity, tt.salt)
			assert.NotEmpty(t, key)

			// Should be deterministic
			assert.Equal(t, key, GenerateIdentityKey(tt.electionID, tt.identity, tt.salt))

			// Different inputs should produce different keys
			assert.NotEqual(t, key, GenerateIdentityKey(tt.electionID, tt.identity+"x", tt.salt))
			assert.NotEqual(t, key, GenerateIdentityKey(tt.electionID+"x", tt.identity, tt.salt))

			// Should be URL-safe (no padding)
			assert.False(t, strings.Contains(key, "="))
		})
	}
}

func TestGenerateIdentityKeyNoConcatenationCollision(t *testing.T) {
	assert.NotEqual(t,
		GenerateIdentityKey("ab", "c", "salt"),
		GenerateIdentityKey("a", "bc", "salt"))
}

func TestValidateIdentityKey(t *testing.T) {
	electionID := "election-123"
	identity := "0xalice"
	salt := "test-salt"
	validKey := GenerateIdentityKey(electionID, identity, salt)

	tests := []struct {
		name       string
		electionID string
		identity   string
		key        string
		salt       string
		wantErr    bool
	}{
		{"valid key", electionID, identity, validKey, salt, false},
		{"wrong key", electionID, identity, "wrong-key", salt, true},
		{"wrong identity", electionID, "0xbob", validKey, salt, true},
		{"wrong election", "other-election", identity, validKey, salt, true},
		{"wrong salt", electionID, identity, validKey, "different-salt", true},
		{"empty key", electionID, identity, "", salt, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentityKey(tt.electionID, tt.identity, tt.key, tt.salt)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIdentityKey)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeIdentity(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"0xabc", "0xabc", false},
		{"  0xabc\t", "0xabc", false},
		{"", "", true},
		{"   ", "", true},
		{"two words", "", true},
		{"ctl\x00", "", true},
		{strings.Repeat("a", MaxIdentityLen), strings.Repeat("a", MaxIdentityLen), false},
		{strings.Repeat("a", MaxIdentityLen+1), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeIdentity(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidIdentity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
