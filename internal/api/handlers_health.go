// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/indiescout/internal/models"
)

// HealthLive handles GET /api/health/live. It answers 200 while the
// process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.HealthStatus{
		Status:    "alive",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Timestamp: time.Now().UTC(),
	})
}

// HealthReady handles GET /api/health/ready. It answers 503 while the RAWG
// circuit breaker is open, so load balancers stop routing here. It never
// calls RAWG itself.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	status := &models.HealthStatus{
		Status:    "ready",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Timestamp: time.Now().UTC(),
		Checks:    map[string]string{},
	}

	code := http.StatusOK
	if h.breaker != nil {
		state := h.breaker.BreakerState()
		status.Checks["rawg_circuit_breaker"] = state
		if state == "open" {
			status.Status = "not_ready"
			code = http.StatusServiceUnavailable
		}
	}
	respondJSON(w, code, status)
}
