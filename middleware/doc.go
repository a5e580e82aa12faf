// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /glasanje", middleware.WithLogging(handler))

Each request gets a UUID, returned in the X-Request-ID header and
available to handlers through RequestID. Start and completion are logged
with method, path, status and duration_ms. The wrapped writer still
implements http.Flusher so the vote stream works behind it.

# Rate Limiting

Voting is limited per client IP with a token bucket:

	limiter := middleware.NewRateLimiter(10, 20)
	limiter.TrustProxy = cfg.TrustProxy
	mux.HandleFunc("GET /glasanje-glasaj", limiter.Limit(vote, tooMany))

At most 10000 clients are tracked; past that the table starts over.

# CORS

The JSON results API is readable from other origins:

	mux.HandleFunc("GET /api/polls/{id}/results", middleware.CORS(handler))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "poll not found")

# Client IP Extraction

	ip := middleware.GetClientIP(r, trustProxy)

Uses RemoteAddr. With trustProxy it checks X-Forwarded-For, then X-Real-IP
first; only enable that behind a proxy that overwrites those headers.
*/
package middleware
