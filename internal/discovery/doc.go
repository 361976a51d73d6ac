// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

/*
Package discovery picks a random indie game from the RAWG catalog.

A request flows through four pieces:

	ParseFilters   query string -> models.GameFilters (or *InvalidFiltersError)
	QueryBuilder   GameFilters  -> Ladder of RAWG queries
	Selector       Ladder       -> Selection (runs the queries, draws a game)
	Classifier     tags + developers -> Verdict

# Escalation

The Selector is a small state machine:

	Primary -> FallbackGeneral -> IndieTag -> IndieRelaxed -> Exhausted

FallbackGeneral only runs when Primary is empty. The indie stages run when
independence filtering is on (always, in practice) and stop as soon as
enough of their results satisfy the caller's filters. When neither indie
stage is good enough the selector settles for the best pool it has, in
this order: indie-tag results, relaxed results from the requested year,
relaxed results, general results that pass the developer check, general
results. Exhausted yields ErrNoGamesFound.

# Selection

The draw is uniform. A drawn game is re-checked against the original
filters (release year, rating percent, review count); on a miss the
selector redraws from the games that do match, or keeps the miss when
none do.

# Ratings

RAWG user ratings are 0-5. Everything here uses percent (0-100), converted
by models.GameSummary.RatingPercent.

# Denylist

Denylist holds the major publisher names used by the Classifier. It is safe
for concurrent use and can be replaced at runtime.
*/
package discovery
