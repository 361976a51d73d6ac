// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package discovery

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/indiescout/internal/logging"
	"github.com/tomtom215/indiescout/internal/metrics"
	"github.com/tomtom215/indiescout/internal/models"
)

// Outcome describes how the final pick relates to the caller's filters.
type Outcome string

const (
	// OutcomeVerified: the first draw satisfied the filters.
	OutcomeVerified Outcome = "verified"
	// OutcomeRepaired: the first draw failed and a matching game was redrawn.
	OutcomeRepaired Outcome = "repaired"
	// OutcomeBestEffort: nothing in the candidate set matched; the first
	// draw is returned anyway.
	OutcomeBestEffort Outcome = "best_effort"
)

// Selection is the result of a successful Select.
type Selection struct {
	Game       models.GameSummary
	Stage      Stage
	Outcome    Outcome
	Candidates int
}

// SelectorOptions tunes the selector. Zero values fall back to defaults.
type SelectorOptions struct {
	// DetailFanout bounds how many general-pool candidates get a detail
	// lookup for the developer check.
	DetailFanout int
	// DetailConcurrency bounds concurrent detail lookups.
	DetailConcurrency int
	// MinIndieMatches is how many filter-satisfying games an indie stage
	// needs before escalation stops.
	MinIndieMatches int
}

// Selector runs the escalation ladder and draws a game.
type Selector struct {
	catalog     Catalog
	classifier  *Classifier
	fanout      int
	concurrency int
	minMatches  int
	intn        func(n int) int
}

// NewSelector creates a selector over catalog.
func NewSelector(catalog Catalog, classifier *Classifier, opts SelectorOptions) *Selector {
	s := &Selector{
		catalog:     catalog,
		classifier:  classifier,
		fanout:      opts.DetailFanout,
		concurrency: opts.DetailConcurrency,
		minMatches:  opts.MinIndieMatches,
		intn:        rand.IntN,
	}
	if s.fanout <= 0 {
		s.fanout = 15
	}
	if s.concurrency <= 0 {
		s.concurrency = 5
	}
	if s.minMatches <= 0 {
		s.minMatches = 1
	}
	return s
}

// Select walks the ladder until a stage yields usable candidates, then
// draws one uniformly and re-verifies it against f. ErrNoGamesFound is
// returned when every stage is empty. Upstream errors abort the walk.
func (s *Selector) Select(ctx context.Context, f *models.GameFilters, ladder *Ladder) (*Selection, error) {
	r := &selectionRun{s: s, filters: f, ladder: ladder}
	independent := ladder.Query(StageIndieTag) != nil

	state := StagePrimary
	for {
		switch state {
		case StagePrimary:
			games, err := r.fetch(ctx, StagePrimary)
			if err != nil {
				return nil, err
			}
			if len(games) == 0 {
				state = r.advance(ctx, state, StageFallbackGeneral, "no results")
				continue
			}
			r.general, r.generalStage = games, StagePrimary
			if !independent {
				return r.pick(ctx, StagePrimary, games), nil
			}
			state = r.advance(ctx, state, StageIndieTag, "independence check")

		case StageFallbackGeneral:
			games, err := r.fetch(ctx, StageFallbackGeneral)
			if err != nil {
				return nil, err
			}
			r.general, r.generalStage = games, StageFallbackGeneral
			switch {
			case independent:
				state = r.advance(ctx, state, StageIndieTag, "independence check")
			case len(games) == 0:
				state = r.advance(ctx, state, StageExhausted, "no results")
			default:
				return r.pick(ctx, StageFallbackGeneral, games), nil
			}

		case StageIndieTag:
			games, err := r.fetch(ctx, StageIndieTag)
			if err != nil {
				return nil, err
			}
			if matched := r.matching(games); r.enough(matched) {
				return r.pick(ctx, StageIndieTag, matched), nil
			}
			r.tagged = games
			state = r.advance(ctx, state, StageIndieRelaxed, "too few matches")

		case StageIndieRelaxed:
			games, err := r.fetch(ctx, StageIndieRelaxed)
			if err != nil {
				return nil, err
			}
			if matched := r.matching(games); r.enough(matched) {
				return r.pick(ctx, StageIndieRelaxed, matched), nil
			}
			sel, err := r.bestEffort(ctx, games)
			if err != nil {
				return nil, err
			}
			if sel != nil {
				return sel, nil
			}
			state = r.advance(ctx, state, StageExhausted, "no candidates")

		default:
			logging.Ctx(ctx).Info().Int("year", ladder.Year).Msg("All discovery stages exhausted")
			return nil, ErrNoGamesFound
		}
	}
}

// selectionRun is the per-request state of one Select call.
type selectionRun struct {
	s       *Selector
	filters *models.GameFilters
	ladder  *Ladder

	general      []models.GameSummary
	generalStage Stage
	tagged       []models.GameSummary
}

func (r *selectionRun) advance(ctx context.Context, from, to Stage, reason string) Stage {
	logging.Ctx(ctx).Debug().
		Str("from", from.String()).
		Str("to", to.String()).
		Str("reason", reason).
		Msg("Discovery stage transition")
	return to
}

func (r *selectionRun) fetch(ctx context.Context, stage Stage) ([]models.GameSummary, error) {
	q := r.ladder.Query(stage)
	if q == nil {
		return nil, fmt.Errorf("%s stage: no query built", stage)
	}
	page, err := r.s.catalog.ListGames(ctx, q)
	if err != nil {
		metrics.RecordStageQuery(stage.String(), 0, err)
		return nil, fmt.Errorf("%s stage: %w", stage, err)
	}
	metrics.RecordStageQuery(stage.String(), len(page.Results), nil)
	logging.Ctx(ctx).Debug().
		Str("stage", stage.String()).
		Str("dates", q.Dates.String()).
		Int("results", len(page.Results)).
		Msg("Discovery stage queried")
	return page.Results, nil
}

func (r *selectionRun) enough(matched []models.GameSummary) bool {
	return len(matched) > 0 && len(matched) >= r.s.minMatches
}

// satisfies checks a game against the caller's original constraints.
func (r *selectionRun) satisfies(g *models.GameSummary) bool {
	if g.ReleaseYear() != r.ladder.Year {
		return false
	}
	if r.filters.MinRating != nil && g.RatingPercent() < *r.filters.MinRating {
		return false
	}
	if r.filters.MinReviews != nil && g.RatingsCount < *r.filters.MinReviews {
		return false
	}
	return true
}

func (r *selectionRun) matching(games []models.GameSummary) []models.GameSummary {
	var out []models.GameSummary
	for i := range games {
		if r.satisfies(&games[i]) {
			out = append(out, games[i])
		}
	}
	return out
}

func (r *selectionRun) sameYear(games []models.GameSummary) []models.GameSummary {
	var out []models.GameSummary
	for i := range games {
		if games[i].ReleaseYear() == r.ladder.Year {
			out = append(out, games[i])
		}
	}
	return out
}

// bestEffort runs once neither indie stage produced enough matches. Any
// matching game from either indie stage wins; otherwise it picks from the
// first non-empty fallback pool. A nil Selection means exhausted.
func (r *selectionRun) bestEffort(ctx context.Context, relaxed []models.GameSummary) (*Selection, error) {
	if matched, stage := r.indieMatches(relaxed); len(matched) > 0 {
		return r.pick(ctx, stage, matched), nil
	}
	if len(r.tagged) > 0 {
		return r.pick(ctx, StageIndieTag, r.tagged), nil
	}
	if year := r.sameYear(relaxed); len(year) > 0 {
		return r.pick(ctx, StageIndieRelaxed, year), nil
	}
	if len(relaxed) > 0 {
		return r.pick(ctx, StageIndieRelaxed, relaxed), nil
	}
	if len(r.general) == 0 {
		return nil, nil
	}

	indie, err := r.s.independentSubset(ctx, r.general)
	if err != nil {
		return nil, err
	}
	if len(indie) > 0 {
		return r.pick(ctx, r.generalStage, indie), nil
	}
	logging.Ctx(ctx).Info().
		Int("candidates", len(r.general)).
		Msg("No independent candidates in general pool; using unfiltered results")
	return r.pick(ctx, r.generalStage, r.general), nil
}

// indieMatches is the union of matching games from both indie stages,
// deduplicated by id. The stage is IndieTag only when every match came
// from the tagged results.
func (r *selectionRun) indieMatches(relaxed []models.GameSummary) ([]models.GameSummary, Stage) {
	out := r.matching(r.tagged)
	stage := StageIndieTag
	seen := make(map[int]bool, len(out))
	for i := range out {
		seen[out[i].ID] = true
	}
	for _, g := range r.matching(relaxed) {
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		out = append(out, g)
		stage = StageIndieRelaxed
	}
	return out, stage
}

// pick draws uniformly from games and repairs a draw that misses the
// caller's filters when a matching game exists in the same set.
func (r *selectionRun) pick(ctx context.Context, stage Stage, games []models.GameSummary) *Selection {
	choice := games[r.s.intn(len(games))]
	outcome := OutcomeVerified

	if !r.satisfies(&choice) {
		if subset := r.matching(games); len(subset) > 0 {
			choice = subset[r.s.intn(len(subset))]
			outcome = OutcomeRepaired
		} else {
			outcome = OutcomeBestEffort
		}
	}

	metrics.RecordSelection(string(outcome))
	logging.Ctx(ctx).Info().
		Str("stage", stage.String()).
		Str("outcome", string(outcome)).
		Int("candidates", len(games)).
		Int("game_id", choice.ID).
		Str("game", choice.Name).
		Int("release_year", choice.ReleaseYear()).
		Int("rating_percent", choice.RatingPercent()).
		Int("ratings_count", choice.RatingsCount).
		Msg("Selected game")

	return &Selection{Game: choice, Stage: stage, Outcome: outcome, Candidates: len(games)}
}

// independentSubset keeps the games classified as independent. Summaries
// carrying the indie tag qualify directly; the remaining games among the
// first fanout get a concurrent detail lookup. A failed lookup drops only
// that game. Input order is preserved.
func (s *Selector) independentSubset(ctx context.Context, pool []models.GameSummary) ([]models.GameSummary, error) {
	keep := make([]bool, len(pool))

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for i := range pool {
		if HasIndieTag(pool[i].Tags) {
			keep[i] = true
			metrics.RecordIndependenceVerdict(VerdictIndependent.String())
			continue
		}
		if i >= s.fanout {
			continue
		}
		id := strconv.Itoa(pool[i].ID)
		g.Go(func() error {
			detail, err := s.catalog.GetGame(ctx, id)
			if err != nil {
				metrics.RecordDetailLookup(false)
				logging.Ctx(ctx).Debug().Err(err).Str("game_id", id).Msg("Detail lookup failed; excluding candidate")
				return nil
			}
			metrics.RecordDetailLookup(true)
			verdict := s.classifier.Classify(detail.Tags, detail.Developers)
			metrics.RecordIndependenceVerdict(verdict.String())
			keep[i] = verdict.Qualifies()
			return nil
		})
	}
	_ = g.Wait() // tasks never fail

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []models.GameSummary
	for i := range pool {
		if keep[i] {
			out = append(out, pool[i])
		}
	}
	return out, nil
}
