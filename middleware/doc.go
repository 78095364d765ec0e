// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Every request gets an ID (taken from X-Request-ID or freshly generated) that
is echoed in the response and attached to the start and completion log lines.

# Caller Authentication

Callers identify themselves with X-Identity and prove it with X-Identity-Key,
an HMAC of the election ID and identity:

	authn := middleware.NewAuthenticator(electionID, cfg.IdentityKeySalt)
	mux.HandleFunc("POST /votes", middleware.WithLogging(authn.WithCaller(h.CastVote)))

	caller := middleware.CallerFrom(r.Context())

Requests without X-Identity run as Anonymous. A bad key is a 401.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.SubmitProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)
*/
package middleware
