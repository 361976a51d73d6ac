// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package discovery

import (
	"github.com/tomtom215/indiescout/internal/models"
	"github.com/tomtom215/indiescout/internal/rawg"
)

// Stage is a step of the escalation ladder.
type Stage int

const (
	StagePrimary Stage = iota
	StageFallbackGeneral
	StageIndieTag
	StageIndieRelaxed
	StageExhausted
)

func (s Stage) String() string {
	switch s {
	case StagePrimary:
		return "primary"
	case StageFallbackGeneral:
		return "fallback_general"
	case StageIndieTag:
		return "indie_tag"
	case StageIndieRelaxed:
		return "indie_relaxed"
	case StageExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Escalation constants. Ratings are on the percent scale.
const (
	primaryPageSize  = 100
	fallbackPageSize = 20
	indiePageSize    = 100

	floorRating  = 2
	floorReviews = 100

	fallbackRatingStep  = 1
	fallbackReviewsStep = 50
	indieRatingStep     = 10
	minRelaxedReviews   = 50

	orderingByRating = "-rating"
	indieTagSlug     = "indie"
)

// StageQuery is one rung of the ladder.
type StageQuery struct {
	Stage Stage
	Query rawg.GameQuery
}

// Ladder is the ordered set of queries for one request, indexed by stage.
// Indie stages are absent when independence filtering is off.
type Ladder struct {
	Year    int
	queries map[Stage]*rawg.GameQuery
	order   []Stage
}

// Query returns the query for stage, or nil when the ladder has none.
func (l *Ladder) Query(stage Stage) *rawg.GameQuery {
	return l.queries[stage]
}

// Stages lists the stages in escalation order.
func (l *Ladder) Stages() []StageQuery {
	out := make([]StageQuery, 0, len(l.order))
	for _, s := range l.order {
		out = append(out, StageQuery{Stage: s, Query: *l.queries[s]})
	}
	return out
}

// QueryBuilder turns GameFilters into a Ladder. It makes no calls.
type QueryBuilder struct {
	platformID  int
	defaultYear int
}

// NewQueryBuilder returns a builder restricted to platformID. defaultYear is
// used when the filters carry no release year.
func NewQueryBuilder(platformID, defaultYear int) *QueryBuilder {
	return &QueryBuilder{platformID: platformID, defaultYear: defaultYear}
}

// EffectiveYear is the release year every stage searches.
func (b *QueryBuilder) EffectiveYear(f *models.GameFilters) int {
	if f.MinReleaseYear != nil {
		return *f.MinReleaseYear
	}
	return b.defaultYear
}

// Build returns the escalation ladder for f.
func (b *QueryBuilder) Build(f *models.GameFilters) *Ladder {
	year := b.EffectiveYear(f)
	rating := floorRating
	if f.MinRating != nil && *f.MinRating > rating {
		rating = *f.MinRating
	}
	reviews := floorReviews
	if f.MinReviews != nil && *f.MinReviews > reviews {
		reviews = *f.MinReviews
	}
	relaxedReviews := max(minRelaxedReviews, reviews-fallbackReviewsStep)

	l := &Ladder{Year: year, queries: make(map[Stage]*rawg.GameQuery, 4)}
	add := func(s Stage, q *rawg.GameQuery) {
		l.queries[s] = q
		l.order = append(l.order, s)
	}

	add(StagePrimary, b.base(year, f.Genres, primaryPageSize, rating, reviews))
	add(StageFallbackGeneral, b.base(year, f.Genres, fallbackPageSize, max(1, rating-fallbackRatingStep), relaxedReviews))

	if f.IndependentOnly {
		tagged := b.base(year, f.Genres, indiePageSize, max(1, rating-indieRatingStep), relaxedReviews)
		tagged.Tags = []string{indieTagSlug}
		add(StageIndieTag, tagged)

		relaxed := b.base(year, f.Genres, indiePageSize, 1, 1)
		relaxed.Tags = []string{indieTagSlug}
		add(StageIndieRelaxed, relaxed)
	}
	return l
}

func (b *QueryBuilder) base(year int, genres []string, pageSize, minMetacritic, minReviews int) *rawg.GameQuery {
	dates := rawg.YearSpan(year, year)
	return &rawg.GameQuery{
		PageSize:     pageSize,
		Dates:        &dates,
		Platforms:    []int{b.platformID},
		Ordering:     orderingByRating,
		Metacritic:   &rawg.IntRange{Min: minMetacritic, Max: 100},
		RatingsCount: minReviews,
		Genres:       append([]string(nil), genres...),
	}
}
