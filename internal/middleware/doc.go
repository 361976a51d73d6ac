// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

/*
Package middleware provides router-independent HTTP middleware.

  - RequestID: assigns or propagates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge per route

Both use the func(http.Handler) http.Handler shape so they plug straight
into chi:

	r.Use(middleware.RequestID)
	r.With(middleware.PrometheusMetrics).Get("/api/genres", h.Genres)
*/
package middleware
