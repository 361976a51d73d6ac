// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package services

import (
	"context"
	"fmt"

	"github.com/tomtom215/indiescout/internal/config"
	"github.com/tomtom215/indiescout/internal/logging"
	"github.com/tomtom215/indiescout/internal/metrics"
)

// NameSetReplacer receives a new publisher list. *discovery.Denylist
// implements it.
type NameSetReplacer interface {
	Replace(names []string)
	Len() int
}

// PublishersWatchService keeps a denylist in sync with a YAML publishers
// file. A file that fails to parse leaves the current list in place.
type PublishersWatchService struct {
	path     string
	denylist NameSetReplacer
}

// NewPublishersWatchService watches path and feeds denylist.
func NewPublishersWatchService(path string, denylist NameSetReplacer) *PublishersWatchService {
	return &PublishersWatchService{path: path, denylist: denylist}
}

// Serve implements suture.Service. The file is loaded once on start; a
// start-up load or watch failure is returned so the supervisor retries.
func (s *PublishersWatchService) Serve(ctx context.Context) error {
	log := logging.WithComponent("publishers-watch")

	names, err := config.LoadPublishersFile(s.path)
	if err != nil {
		metrics.RecordDenylistReload(s.denylist.Len(), err)
		return err
	}
	s.apply(names)

	watcher, err := config.WatchPublishersFile(s.path, s.apply, func(err error) {
		metrics.RecordDenylistReload(s.denylist.Len(), err)
		log.Warn().Err(err).Str("path", s.path).Msg("Publishers file reload failed; keeping previous list")
	})
	if err != nil {
		return fmt.Errorf("publishers watch: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			log.Debug().Err(cerr).Msg("Failed to stop publishers watcher")
		}
	}()

	log.Info().Str("path", s.path).Int("publishers", len(names)).Msg("Watching publishers file")
	<-ctx.Done()
	return ctx.Err()
}

func (s *PublishersWatchService) apply(names []string) {
	s.denylist.Replace(names)
	metrics.RecordDenylistReload(len(names), nil)
	logging.Info().Str("path", s.path).Int("publishers", len(names)).Msg("Publisher denylist loaded")
}

// String names the service in supervisor logs.
func (s *PublishersWatchService) String() string {
	return "publishers-watch"
}
