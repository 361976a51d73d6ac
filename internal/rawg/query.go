// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package rawg

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// IntRange is an inclusive "min,max" filter such as metacritic=70,100.
type IntRange struct {
	Min int
	Max int
}

func (r IntRange) String() string {
	return fmt.Sprintf("%d,%d", r.Min, r.Max)
}

// DateRange is an inclusive "YYYY-MM-DD,YYYY-MM-DD" release window.
type DateRange struct {
	From string
	To   string
}

// YearSpan covers January 1 of from through December 31 of to.
func YearSpan(from, to int) DateRange {
	return DateRange{
		From: fmt.Sprintf("%04d-01-01", from),
		To:   fmt.Sprintf("%04d-12-31", to),
	}
}

func (d DateRange) String() string {
	return d.From + "," + d.To
}

// GameQuery holds the /games filter parameters. Zero values are omitted
// from the encoded query.
type GameQuery struct {
	PageSize     int
	Dates        *DateRange
	Platforms    []int
	Ordering     string
	Metacritic   *IntRange
	RatingsCount int // lower bound on ratings_count
	Genres       []string
	Tags         []string
	Developers   []string
	ExcludeGames []string
}

// Values encodes the query as RAWG request parameters. List parameters
// are comma-joined.
func (q *GameQuery) Values() url.Values {
	v := url.Values{}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.Dates != nil {
		v.Set("dates", q.Dates.String())
	}
	if len(q.Platforms) > 0 {
		ids := make([]string, len(q.Platforms))
		for i, id := range q.Platforms {
			ids[i] = strconv.Itoa(id)
		}
		v.Set("platforms", strings.Join(ids, ","))
	}
	if q.Ordering != "" {
		v.Set("ordering", q.Ordering)
	}
	if q.Metacritic != nil {
		v.Set("metacritic", q.Metacritic.String())
	}
	if q.RatingsCount > 0 {
		v.Set("ratings_count", strconv.Itoa(q.RatingsCount))
	}
	setList(v, "genres", q.Genres)
	setList(v, "tags", q.Tags)
	setList(v, "developers", q.Developers)
	setList(v, "exclude_games", q.ExcludeGames)
	return v
}

func setList(v url.Values, key string, items []string) {
	if len(items) > 0 {
		v.Set(key, strings.Join(items, ","))
	}
}
