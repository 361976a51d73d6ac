// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package rawg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/indiescout/internal/config"
	"github.com/tomtom215/indiescout/internal/logging"
	"github.com/tomtom215/indiescout/internal/metrics"
	"github.com/tomtom215/indiescout/internal/models"
)

// maxErrorBodySize limits how much of an error response body is read.
const maxErrorBodySize = 64 * 1024

const userAgent = "indiescout/1.0 (+https://github.com/tomtom215/indiescout)"

// Operation names used in errors and metric labels.
const (
	opListGames  = "list_games"
	opGetGame    = "get_game"
	opListGenres = "list_genres"
)

// Client is a RAWG API client. Every call is a single GET: there are no
// retries, and failures are returned as *UpstreamError or *TransportError.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a client from cfg. Outbound pacing is enabled when
// cfg.RequestsPerSecond is positive.
func NewClient(cfg *config.RAWGConfig) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}
	return c
}

// ListGames runs a /games query.
func (c *Client) ListGames(ctx context.Context, q *GameQuery) (*models.GamePage, error) {
	var page models.GamePage
	if err := c.get(ctx, opListGames, "/games", q.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetGame fetches /games/{id}. id may be a numeric id or a slug.
func (c *Client) GetGame(ctx context.Context, id string) (*models.GameDetail, error) {
	var game models.GameDetail
	if err := c.get(ctx, opGetGame, "/games/"+url.PathEscape(id), nil, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// ListGenres fetches /genres.
func (c *Client) ListGenres(ctx context.Context) (*models.GenrePage, error) {
	var page models.GenrePage
	if err := c.get(ctx, opListGenres, "/genres", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// get performs one GET against path and decodes a 2xx body into result.
func (c *Client) get(ctx context.Context, op, path string, params url.Values, result interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	if err := c.pace(ctx); err != nil {
		return &TransportError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("failed to create request: %w", redactKey(err))}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(op, "transport", time.Since(start))
		return &TransportError{Op: op, Err: redactKey(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordUpstreamRequest(op, statusOutcome(resp.StatusCode), time.Since(start))
		body := readBodyForError(resp.Body)
		logging.Ctx(ctx).Debug().
			Str("op", op).
			Int("status", resp.StatusCode).
			Msg("RAWG returned non-success status")
		return &UpstreamError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		metrics.RecordUpstreamRequest(op, "decode", time.Since(start))
		return &UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	metrics.RecordUpstreamRequest(op, "ok", time.Since(start))
	return nil
}

// pace blocks until the outbound limiter admits a request.
func (c *Client) pace(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	start := time.Now()
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	metrics.RecordPacingWait(time.Since(start))
	return nil
}

func statusOutcome(code int) string {
	if code >= 500 {
		return "status_5xx"
	}
	return "status_4xx"
}

// readBodyForError reads at most maxErrorBodySize bytes of r.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
