// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs background jobs that live as long as the server,
// such as relaying database change notifications to live feeds.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// gives up.
type Worker interface {
	Run(ctx context.Context)
}

// Listener is a blocking change source, e.g. store.PostgresNoteListener.
type Listener interface {
	Listen(ctx context.Context) error
}
