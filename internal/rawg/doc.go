// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

/*
Package rawg is the HTTP client for the RAWG video game catalog.

Three endpoints are used:

  - GET /games            ListGames, filtered by a GameQuery
  - GET /games/{id}       GetGame, id is numeric or a slug
  - GET /genres           ListGenres

Every call appends key=<api key>, issues exactly one request and never
retries. Failures come back as one of two types:

  - *UpstreamError: RAWG answered with a non-2xx status (or an undecodable
    body); StatusCode and up to 64KB of Body are kept for logging
  - *TransportError: no response at all (network, timeout, cancellation,
    circuit breaker open)

Outbound calls are paced with golang.org/x/time/rate when configured, and
CircuitBreakerClient adds a sony/gobreaker breaker with Prometheus state
metrics. Both Client and CircuitBreakerClient satisfy discovery.Catalog.

The API key never appears in returned errors.
*/
package rawg
