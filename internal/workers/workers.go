// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers builds the workers enabled in cfg. Postgres change
// notifications are relayed into publisher when Feed.ListenPostgres is set.
func NewWorkers(cfg *config.StructuredConfig, publisher store.ChangePublisher, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.Feed.ListenPostgres && cfg.Storage.DB.DSN != "" {
		listener := store.NewPostgresNoteListener(cfg.Storage.DB.DSN, publisher, logger)
		w.workers = append(w.workers, NewListenerWorker("postgres-notes-listener", listener, logger))
		logger.Info().Msg("postgres notes listener enabled")
	}

	return w
}

// Run starts every worker in its own goroutine.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// Wait blocks until all started workers have returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}

// Len returns the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
