// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package rawg

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/indiescout/internal/config"
	"github.com/tomtom215/indiescout/internal/logging"
	"github.com/tomtom215/indiescout/internal/metrics"
	"github.com/tomtom215/indiescout/internal/models"
)

const breakerName = "rawg-api"

// CircuitBreakerClient wraps Client with a circuit breaker. Upstream 4xx
// responses (other than 429) count as successes, so unknown game ids do
// not trip it. Rejected calls surface as *TransportError.
type CircuitBreakerClient struct {
	client *Client
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// NewCircuitBreakerClient creates a breaker-protected client.
//
// Breaker settings:
//   - opens after 5 consecutive failures, or 60% failures over 10+ requests
//   - counts reset every minute while closed
//   - half-opens after 30 seconds and admits 3 probe requests
func NewCircuitBreakerClient(cfg *config.RAWGConfig) *CircuitBreakerClient {
	return newCircuitBreakerClient(NewClient(cfg), 30*time.Second)
}

func newCircuitBreakerClient(client *Client, openTimeout time.Duration) *CircuitBreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.ConsecutiveFailures >= 5 {
				return true
			}
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isClientError(err) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", stateToString(from)).
				Str("to", stateToString(to)).
				Msg("Circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, stateToString(from), stateToString(to)).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{client: client, cb: cb, name: breakerName}
}

// execute runs fn through the breaker. op names the call in the
// TransportError returned when the breaker rejects it.
func (cbc *CircuitBreakerClient) execute(op string, fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
		return result, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
		logging.Warn().Err(err).Str("op", op).Msg("Circuit breaker rejected RAWG request")
		return nil, &TransportError{Op: op, Err: err}
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(cbc.cb.Counts().ConsecutiveFailures))
	return nil, err
}

// castResult type-asserts a breaker result.
func castResult[T any](result interface{}, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// ListGames runs a /games query with circuit breaker protection.
func (cbc *CircuitBreakerClient) ListGames(ctx context.Context, q *GameQuery) (*models.GamePage, error) {
	return castResult[models.GamePage](cbc.execute(opListGames, func() (interface{}, error) {
		return cbc.client.ListGames(ctx, q)
	}))
}

// GetGame fetches a game detail with circuit breaker protection.
func (cbc *CircuitBreakerClient) GetGame(ctx context.Context, id string) (*models.GameDetail, error) {
	return castResult[models.GameDetail](cbc.execute(opGetGame, func() (interface{}, error) {
		return cbc.client.GetGame(ctx, id)
	}))
}

// ListGenres fetches the genre list with circuit breaker protection.
func (cbc *CircuitBreakerClient) ListGenres(ctx context.Context) (*models.GenrePage, error) {
	return castResult[models.GenrePage](cbc.execute(opListGenres, func() (interface{}, error) {
		return cbc.client.ListGenres(ctx)
	}))
}

// BreakerState returns "closed", "half-open" or "open".
func (cbc *CircuitBreakerClient) BreakerState() string {
	return stateToString(cbc.cb.State())
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
