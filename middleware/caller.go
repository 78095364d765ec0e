// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

type callerKey struct{}

// Anonymous is the caller of a request that presents no identity. It is
// never the administrator and never a registered voter.
const Anonymous voting.Identity = ""

// Authenticator resolves the caller of a request from its identity headers.
type Authenticator struct {
	electionID string
	salt       string
}

func NewAuthenticator(electionID, salt string) *Authenticator {
	return &Authenticator{electionID: electionID, salt: salt}
}

// KeyFor returns the identity key id must present.
func (a *Authenticator) KeyFor(id voting.Identity) string {
	return auth.GenerateIdentityKey(a.electionID, string(id), a.salt)
}

// Resolve returns the authenticated caller, Anonymous when no identity is
// presented, or an error when the identity or its key is invalid.
func (a *Authenticator) Resolve(r *http.Request) (voting.Identity, error) {
	raw := r.Header.Get(models.HeaderIdentity)
	if raw == "" {
		return Anonymous, nil
	}
	id, err := auth.NormalizeIdentity(raw)
	if err != nil {
		return Anonymous, err
	}
	key := r.Header.Get(models.HeaderIdentityKey)
	if err := auth.ValidateIdentityKey(a.electionID, id, key, a.salt); err != nil {
		return Anonymous, err
	}
	return voting.Identity(id), nil
}

// WithCaller authenticates the caller and stores it in the request context.
// A presented identity with a bad key is rejected with 401.
func (a *Authenticator) WithCaller(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := a.Resolve(r)
		if err != nil {
			slog.Warn("caller authentication failed", "identity", r.Header.Get(models.HeaderIdentity), "error", err)
			ErrorResponse(w, http.StatusUnauthorized, "Invalid identity key")
			return
		}
		next(w, r.WithContext(WithCallerContext(r.Context(), caller)))
	}
}

func WithCallerContext(ctx context.Context, caller voting.Identity) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFrom returns the caller stored by WithCaller, or Anonymous.
func CallerFrom(ctx context.Context) voting.Identity {
	if id, ok := ctx.Value(callerKey{}).(voting.Identity); ok {
		return id
	}
	return Anonymous
}
