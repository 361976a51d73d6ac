// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package discovery

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFilters matches every *InvalidFiltersError.
	ErrInvalidFilters = errors.New("invalid filters")

	// ErrNoGamesFound means every escalation stage came back empty.
	ErrNoGamesFound = errors.New("no games found matching filters")

	// ErrGameNotFound means RAWG has no game with the requested id.
	ErrGameNotFound = errors.New("game not found")
)

// InvalidFiltersError reports a query string that could not be turned into
// GameFilters. Message is safe to show to the caller.
type InvalidFiltersError struct {
	Message string
	Err     error
}

func (e *InvalidFiltersError) Error() string {
	return fmt.Sprintf("invalid filters: %s", e.Message)
}

func (e *InvalidFiltersError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInvalidFilters) true for any InvalidFiltersError.
func (e *InvalidFiltersError) Is(target error) bool {
	return target == ErrInvalidFilters
}

// RecommendationError wraps any failure while composing recommendations.
type RecommendationError struct {
	GameID string
	Err    error
}

func (e *RecommendationError) Error() string {
	return fmt.Sprintf("recommendations for game %s: %v", e.GameID, e.Err)
}

func (e *RecommendationError) Unwrap() error { return e.Err }
