// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package discovery

import (
	"context"
	"strconv"

	"github.com/tomtom215/indiescout/internal/config"
	"github.com/tomtom215/indiescout/internal/logging"
	"github.com/tomtom215/indiescout/internal/models"
	"github.com/tomtom215/indiescout/internal/rawg"
)

// Recommender finds games similar to a given one by querying RAWG for
// shared genres, tags and developers. It does no ranking of its own.
type Recommender struct {
	catalog    Catalog
	platformID int
	window     config.RecommendConfig
}

// NewRecommender creates a recommender restricted to platformID and the
// release/metacritic window in window.
func NewRecommender(catalog Catalog, platformID int, window config.RecommendConfig) *Recommender {
	return &Recommender{catalog: catalog, platformID: platformID, window: window}
}

// Recommend returns games similar to id and the names they were matched
// on. Every failure is returned as *RecommendationError.
func (r *Recommender) Recommend(ctx context.Context, id string) (*models.Recommendations, error) {
	detail, err := r.catalog.GetGame(ctx, id)
	if err != nil {
		return nil, &RecommendationError{GameID: id, Err: err}
	}

	q, basis := r.similarityQuery(id, detail)
	page, err := r.catalog.ListGames(ctx, q)
	if err != nil {
		return nil, &RecommendationError{GameID: id, Err: err}
	}

	results := page.Results
	if results == nil {
		results = []models.GameSummary{}
	}

	logging.Ctx(ctx).Debug().
		Str("game_id", id).
		Int("genres", len(q.Genres)).
		Int("tags", len(q.Tags)).
		Int("developers", len(q.Developers)).
		Int("results", len(results)).
		Msg("Recommendations composed")

	return &models.Recommendations{Results: results, SimilarityFactors: basis}, nil
}

func (r *Recommender) similarityQuery(id string, detail *models.GameDetail) (*rawg.GameQuery, models.SimilarityBasis) {
	basis := models.SimilarityBasis{
		Genres:     make([]string, 0, len(detail.Genres)),
		Tags:       make([]string, 0, r.window.TopTags),
		Developers: make([]string, 0, len(detail.Developers)),
	}

	exclude := id
	if detail.ID != 0 {
		exclude = strconv.Itoa(detail.ID)
	}
	dates := rawg.YearSpan(r.window.StartYear, r.window.EndYear)
	q := &rawg.GameQuery{
		PageSize:     r.window.PageSize,
		Dates:        &dates,
		Platforms:    []int{r.platformID},
		Ordering:     orderingByRating,
		Metacritic:   &rawg.IntRange{Min: r.window.MinMetacritic, Max: 100},
		ExcludeGames: []string{exclude},
	}

	for _, g := range detail.Genres {
		q.Genres = append(q.Genres, strconv.Itoa(g.ID))
		basis.Genres = append(basis.Genres, g.Name)
	}
	tags := detail.Tags
	if len(tags) > r.window.TopTags {
		tags = tags[:r.window.TopTags]
	}
	for _, t := range tags {
		q.Tags = append(q.Tags, strconv.Itoa(t.ID))
		basis.Tags = append(basis.Tags, t.Name)
	}
	for _, d := range detail.Developers {
		q.Developers = append(q.Developers, strconv.Itoa(d.ID))
		basis.Developers = append(basis.Developers, d.Name)
	}
	return q, basis
}
