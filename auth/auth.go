// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// MaxIdentityLen bounds identities accepted from clients.
const MaxIdentityLen = 128

var (
	ErrInvalidIdentityKey = errors.New("invalid identity key")
	ErrInvalidIdentity    = errors.New("invalid identity")
)

// NewElectionID creates a random UUID for a new election
func NewElectionID() string {
	return uuid.NewString()
}

// GenerateIdentityKey creates the HMAC-based key an identity presents to act
// in an election. It is deterministic, so it never needs to be stored.
func GenerateIdentityKey(electionID, identity, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(electionID))
	h.Write([]byte{0})
	h.Write([]byte(identity))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateIdentityKey checks if the provided key belongs to identity
func ValidateIdentityKey(electionID, identity, key, salt string) error {
	expected := GenerateIdentityKey(electionID, identity, salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidIdentityKey
	}
	return nil
}

// NormalizeIdentity trims surrounding whitespace and rejects identities that
// are empty, too long, or contain whitespace or control characters.
func NormalizeIdentity(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > MaxIdentityLen {
		return "", ErrInvalidIdentity
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return "", ErrInvalidIdentity
		}
	}
	return id, nil
}
