// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// RAWG Upstream Metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rawg_requests_total",
			Help: "Total number of RAWG API requests by outcome",
		},
		[]string{"endpoint", "outcome"}, // outcome: "ok", "status_4xx", "status_5xx", "decode", "transport"
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rawg_request_duration_seconds",
			Help:    "RAWG API request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"endpoint"},
	)

	UpstreamPacingWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rawg_pacing_wait_seconds",
			Help:    "Time spent waiting for the outbound rate limiter",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Discovery Pipeline Metrics
	DiscoveryStageQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_stage_queries_total",
			Help: "Catalog queries issued per escalation stage",
		},
		[]string{"stage", "result"}, // result: "empty", "candidates", "error"
	)

	DiscoveryStageCandidates = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discovery_stage_candidates",
			Help:    "Candidates returned per escalation stage",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
		[]string{"stage"},
	)

	DiscoverySelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_selections_total",
			Help: "Random game selections by verification outcome",
		},
		[]string{"outcome"}, // outcome: "verified", "repaired", "best_effort", "exhausted"
	)

	DiscoveryDetailLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_detail_lookups_total",
			Help: "Per-candidate developer lookups",
		},
		[]string{"result"}, // result: "success", "failure"
	)

	IndependenceVerdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "independence_verdicts_total",
			Help: "Independence classifier verdicts",
		},
		[]string{"verdict"}, // verdict: "independent", "major", "unknown"
	)

	DenylistSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "denylist_publishers",
			Help: "Number of publishers in the active denylist",
		},
	)

	DenylistReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "denylist_reloads_total",
			Help: "Publisher denylist reload attempts",
		},
		[]string{"result"}, // result: "success", "failure"
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a rejected inbound request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordUpstreamRequest records one RAWG call.
func RecordUpstreamRequest(endpoint, outcome string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordPacingWait records time blocked on the outbound limiter.
func RecordPacingWait(wait time.Duration) {
	UpstreamPacingWait.Observe(wait.Seconds())
}

// RecordStageQuery records the result of one escalation stage query.
func RecordStageQuery(stage string, candidates int, err error) {
	switch {
	case err != nil:
		DiscoveryStageQueries.WithLabelValues(stage, "error").Inc()
		return
	case candidates == 0:
		DiscoveryStageQueries.WithLabelValues(stage, "empty").Inc()
	default:
		DiscoveryStageQueries.WithLabelValues(stage, "candidates").Inc()
	}
	DiscoveryStageCandidates.WithLabelValues(stage).Observe(float64(candidates))
}

// RecordSelection records how a random pick ended.
func RecordSelection(outcome string) {
	DiscoverySelections.WithLabelValues(outcome).Inc()
}

// RecordDetailLookup records a per-candidate developer lookup.
func RecordDetailLookup(ok bool) {
	if ok {
		DiscoveryDetailLookups.WithLabelValues("success").Inc()
	} else {
		DiscoveryDetailLookups.WithLabelValues("failure").Inc()
	}
}

// RecordIndependenceVerdict records one classifier verdict.
func RecordIndependenceVerdict(verdict string) {
	IndependenceVerdicts.WithLabelValues(verdict).Inc()
}

// RecordDenylistReload records a publisher list reload and its new size.
func RecordDenylistReload(size int, err error) {
	if err != nil {
		DenylistReloads.WithLabelValues("failure").Inc()
		return
	}
	DenylistReloads.WithLabelValues("success").Inc()
	DenylistSize.Set(float64(size))
}
