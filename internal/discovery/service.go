// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package discovery

import (
	"context"
	"fmt"

	"github.com/tomtom215/indiescout/internal/config"
	"github.com/tomtom215/indiescout/internal/logging"
	"github.com/tomtom215/indiescout/internal/models"
	"github.com/tomtom215/indiescout/internal/rawg"
)

// Service is the discovery API consumed by the HTTP handlers.
type Service struct {
	catalog     Catalog
	builder     *QueryBuilder
	selector    *Selector
	recommender *Recommender
}

// NewService wires the discovery pipeline over catalog. denylist is shared
// with whatever reloads it.
func NewService(catalog Catalog, cfg *config.DiscoveryConfig, platformID int, denylist *Denylist) *Service {
	return &Service{
		catalog: catalog,
		builder: NewQueryBuilder(platformID, cfg.DefaultReleaseYear),
		selector: NewSelector(catalog, NewClassifier(denylist), SelectorOptions{
			DetailFanout:      cfg.DetailFanout,
			DetailConcurrency: cfg.DetailConcurrency,
			MinIndieMatches:   cfg.MinIndieMatches,
		}),
		recommender: NewRecommender(catalog, platformID, cfg.Recommend),
	}
}

// RandomGame returns one game satisfying f as closely as the catalog
// allows, or ErrNoGamesFound.
func (s *Service) RandomGame(ctx context.Context, f models.GameFilters) (*models.GameSummary, error) {
	ladder := s.builder.Build(&f)

	event := logging.Ctx(ctx).Info().
		Strs("genres", f.Genres).
		Int("year", ladder.Year).
		Bool("independent_only", f.IndependentOnly)
	if f.MinRating != nil {
		event = event.Int("min_rating", *f.MinRating)
	}
	if f.MinReviews != nil {
		event = event.Int("min_reviews", *f.MinReviews)
	}
	event.Msg("Random game requested")

	sel, err := s.selector.Select(ctx, &f, ladder)
	if err != nil {
		return nil, err
	}
	return &sel.Game, nil
}

// GameDetail fetches one game. An unknown id yields ErrGameNotFound.
func (s *Service) GameDetail(ctx context.Context, id string) (*models.GameDetail, error) {
	game, err := s.catalog.GetGame(ctx, id)
	if err != nil {
		if rawg.IsNotFound(err) {
			return nil, fmt.Errorf("game %s: %w", id, ErrGameNotFound)
		}
		return nil, err
	}
	return game, nil
}

// Recommendations returns games similar to id.
func (s *Service) Recommendations(ctx context.Context, id string) (*models.Recommendations, error) {
	return s.recommender.Recommend(ctx, id)
}

// Genres returns the catalog's genres in upstream order.
func (s *Service) Genres(ctx context.Context) ([]models.Genre, error) {
	page, err := s.catalog.ListGenres(ctx)
	if err != nil {
		return nil, err
	}
	if page.Results == nil {
		return []models.Genre{}, nil
	}
	return page.Results, nil
}
