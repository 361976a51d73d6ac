// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

/*
Package supervisor runs Indiescout's long-lived goroutines under a
thejerf/suture/v4 supervisor tree.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	tree.AddConfigService(services.NewPublishersWatchService(path, denylist))
	errCh := tree.ServeBackground(ctx)

A service that returns an error is restarted with backoff; a service that
returns suture.ErrDoNotRestart stays stopped. Supervisor events (restarts,
backoff, timeouts) are logged through sutureslog.
*/
package supervisor
