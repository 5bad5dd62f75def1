// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the application server.
type Server interface {
	// RunServer starts serving and blocks until a stop signal is received
	// and shutdown has finished.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}

// Runner is a set of background jobs bound to the server's lifetime.
type Runner interface {
	// Run starts the jobs. They stop when ctx is cancelled.
	Run(ctx context.Context)
	// Wait blocks until every started job has returned.
	Wait()
}
