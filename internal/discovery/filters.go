// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package discovery

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/indiescout/internal/logging"
	"github.com/tomtom215/indiescout/internal/models"
	"github.com/tomtom215/indiescout/internal/validation"
)

// Query parameter names accepted by /api/games/random.
const (
	ParamGenres          = "genres"
	ParamMinRating       = "minRating"
	ParamMinReviews      = "minReviews"
	ParamMinReleaseYear  = "minReleaseYear"
	ParamIndependentOnly = "independentOnly"
)

// ParseFilters turns /api/games/random query parameters into GameFilters.
// Empty values count as absent. independentOnly is always true in the
// result; an explicit false is accepted and ignored.
func ParseFilters(q url.Values) (models.GameFilters, error) {
	f := models.GameFilters{IndependentOnly: true}

	if raw := strings.TrimSpace(q.Get(ParamGenres)); raw != "" {
		var genres []string
		if err := json.Unmarshal([]byte(raw), &genres); err != nil {
			return f, &InvalidFiltersError{Message: "genres must be a JSON array of strings", Err: err}
		}
		f.Genres = genres
	}

	var err error
	if f.MinRating, err = parseOptionalInt(q, ParamMinRating); err != nil {
		return f, err
	}
	if f.MinReviews, err = parseOptionalInt(q, ParamMinReviews); err != nil {
		return f, err
	}
	if f.MinReleaseYear, err = parseOptionalInt(q, ParamMinReleaseYear); err != nil {
		return f, err
	}

	if raw := strings.TrimSpace(q.Get(ParamIndependentOnly)); raw != "" {
		requested, perr := strconv.ParseBool(raw)
		if perr != nil {
			return f, &InvalidFiltersError{Message: "independentOnly must be true or false", Err: perr}
		}
		if !requested {
			logging.Debug().Msg("independentOnly=false requested; independence filtering stays on")
		}
	}

	if verr := validation.ValidateStruct(&f); verr != nil {
		return f, &InvalidFiltersError{Message: verr.ToAPIError().Message, Err: verr}
	}
	return f, nil
}

func parseOptionalInt(q url.Values, name string) (*int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &InvalidFiltersError{Message: fmt.Sprintf("%s must be an integer", name), Err: err}
	}
	return &n, nil
}
