// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

func TestWithLogging(t *testing.T) {
	called := false
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest("GET", "/election", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(HeaderRequestID))
}

func TestWithLogging_KeepsRequestID(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, "req-42", rr.Header().Get(HeaderRequestID))
	assert.Equal(t, "ok", rr.Body.String())
}

func TestJSONResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	JSONResponse(rr, http.StatusCreated, models.RegisterVoterResponse{
		Identity:    "0xalice",
		IdentityKey: "k",
	})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp models.RegisterVoterResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "0xalice", resp.Identity)
	assert.Equal(t, "k", resp.IdentityKey)
}

func TestErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorResponse(rr, http.StatusConflict, "You have already voted")

	assert.Equal(t, http.StatusConflict, rr.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Conflict", resp.Error)
	assert.Equal(t, "You have already voted", resp.Message)
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		body, _ := json.Marshal(models.SubmitProposalRequest{Description: "Proposition 1"})
		req := httptest.NewRequest("POST", "/proposals", bytes.NewReader(body))

		var parsed models.SubmitProposalRequest
		require.NoError(t, ParseJSONBody(req, &parsed))
		assert.Equal(t, "Proposition 1", parsed.Description)
	})

	t.Run("invalid", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/proposals", bytes.NewBufferString("{nope"))
		var parsed models.SubmitProposalRequest
		assert.Error(t, ParseJSONBody(req, &parsed))
	})
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS(next)

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/votes", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
		allowed := rr.Header().Get("Access-Control-Allow-Headers")
		assert.Contains(t, allowed, models.HeaderIdentity)
		assert.Contains(t, allowed, models.HeaderIdentityKey)
	})

	t.Run("no origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/election", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{"forwarded chain", "203.0.113.1, 10.0.0.1", "", "10.0.0.2:1234", "203.0.113.1"},
		{"forwarded single", "203.0.113.9", "", "10.0.0.2:1234", "203.0.113.9"},
		{"real ip", "", "198.51.100.7", "10.0.0.2:1234", "198.51.100.7"},
		{"remote addr", "", "", "192.0.2.5:5555", "192.0.2.5"},
		{"remote addr no port", "", "", "192.0.2.5", "192.0.2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			req.RemoteAddr = tt.remoteAddr
			assert.Equal(t, tt.want, GetClientIP(req))
		})
	}
}

func TestWithCaller(t *testing.T) {
	authn := NewAuthenticator("election-1", "salt")
	var seen voting.Identity
	handler := authn.WithCaller(func(w http.ResponseWriter, r *http.Request) {
		seen = CallerFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("anonymous", func(t *testing.T) {
		seen = "sentinel"
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest("GET", "/results", nil))
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, Anonymous, seen)
	})

	t.Run("valid key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/votes", nil)
		req.Header.Set(models.HeaderIdentity, "0xalice")
		req.Header.Set(models.HeaderIdentityKey, authn.KeyFor("0xalice"))
		rr := httptest.NewRecorder()
		handler(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, voting.Identity("0xalice"), seen)
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/votes", nil)
		req.Header.Set(models.HeaderIdentity, "0xalice")
		req.Header.Set(models.HeaderIdentityKey, authn.KeyFor("0xbob"))
		rr := httptest.NewRecorder()
		handler(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid identity key", resp.Message)
	})

	t.Run("key from another election", func(t *testing.T) {
		other := NewAuthenticator("election-2", "salt")
		req := httptest.NewRequest("POST", "/votes", nil)
		req.Header.Set(models.HeaderIdentity, "0xalice")
		req.Header.Set(models.HeaderIdentityKey, other.KeyFor("0xalice"))
		rr := httptest.NewRecorder()
		handler(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestCallerFrom_Empty(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, Anonymous, CallerFrom(req.Context()))
	ctx := WithCallerContext(req.Context(), "0xbob")
	assert.Equal(t, voting.Identity("0xbob"), CallerFrom(ctx))
}
