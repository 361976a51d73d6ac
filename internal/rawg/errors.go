// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package rawg

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// maxErrorBodySnippet bounds how much of an upstream body Error() repeats.
const maxErrorBodySnippet = 256

// UpstreamError reports a non-2xx RAWG response, or a 2xx response whose
// body could not be decoded (Err set).
type UpstreamError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rawg %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	body := e.Body
	if len(body) > maxErrorBodySnippet {
		body = body[:maxErrorBodySnippet] + "..."
	}
	return fmt.Sprintf("rawg %s: status %d: %s", e.Op, e.StatusCode, body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// TransportError reports a request that never produced an HTTP response:
// connection failures, timeouts, cancellation or an open circuit breaker.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rawg %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var upErr *UpstreamError
	return errors.As(err, &upErr) && upErr.StatusCode == http.StatusNotFound
}

// isClientError reports upstream 4xx responses other than 429. They say
// nothing about RAWG's health, so the circuit breaker ignores them.
func isClientError(err error) bool {
	var upErr *UpstreamError
	if !errors.As(err, &upErr) || upErr.Err != nil {
		return false
	}
	return upErr.StatusCode >= 400 && upErr.StatusCode < 500 && upErr.StatusCode != http.StatusTooManyRequests
}

// redactKey strips the API key from the URL embedded in *url.Error.
func redactKey(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	if u, perr := url.Parse(urlErr.URL); perr == nil {
		q := u.Query()
		if q.Has("key") {
			q.Set("key", "REDACTED")
			u.RawQuery = q.Encode()
			urlErr.URL = u.String()
		}
	}
	return err
}
