// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// ListenerWorker runs a [Listener] for the lifetime of the server.
type ListenerWorker struct {
	name     string
	listener Listener
	logger   *logger.Logger
}

func NewListenerWorker(name string, listener Listener, logger *logger.Logger) *ListenerWorker {
	return &ListenerWorker{name: name, listener: listener, logger: logger}
}

func (w *ListenerWorker) Run(ctx context.Context) {
	w.logger.Info().Str("worker", w.name).Msg("worker started")

	err := w.listener.Listen(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		w.logger.Err(err).Str("worker", w.name).Msg("worker stopped")
		return
	}

	w.logger.Info().Str("worker", w.name).Msg("worker stopped")
}
