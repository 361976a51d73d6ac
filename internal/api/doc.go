// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

/*
Package api is the HTTP surface of Indiescout, built on go-chi/chi.

Endpoints:

	GET /api/games/random                  one random game matching the filters
	GET /api/games/{id}                    RAWG game detail, passed through
	GET /api/games/{id}/recommendations    {results, similarityFactors}
	GET /api/genres                        RAWG genres in upstream order
	GET /api/health/live                   liveness
	GET /api/health/ready                  readiness (503 while the RAWG breaker is open)
	GET /metrics                           Prometheus

Middleware, outermost first: request ID (X-Request-ID), RealIP, Recoverer,
CORS (go-chi/cors). The /api routes add per-IP rate limiting
(go-chi/httprate), security headers and Prometheus request metrics.

Errors are JSON:

	{"message": "...", "code": "NO_GAMES_FOUND", "request_id": "..."}

Invalid filters and ids are 400, an exhausted search or unknown game is
404, and every upstream or transport failure is a 500 with a fixed
message. Upstream bodies are logged, never returned.
*/
package api
