// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

// Package metrics declares the Prometheus collectors for Indiescout and
// small helpers to record them.
//
// Collectors register with the default registry through promauto and are
// served by the /metrics endpoint.
//
// Families:
//   - api_*: inbound request counts, latency, in-flight gauge, rate limit hits
//   - rawg_*: upstream call outcomes, latency, pacing waits
//   - circuit_breaker_*: breaker state and transitions
//   - discovery_*, independence_*, denylist_*: escalation stages, selection
//     outcomes, developer lookups and classifier verdicts
package metrics
