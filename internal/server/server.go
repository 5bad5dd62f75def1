// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	workers    Runner

	cancelWorkers context.CancelFunc

	logger *logger.Logger
}

// NewServer wires the HTTP handler and the background workers. workers may
// be nil.
func NewServer(handlers *handler.Handlers, workers Runner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoHTTPHandler
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

// run serves until ctx is done.
func (s *server) run(ctx context.Context) {
	workersCtx, cancel := context.WithCancel(context.Background())
	s.cancelWorkers = cancel
	if s.workers != nil {
		s.logger.Info().Msg("launching workers")
		s.workers.Run(workersCtx)
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
	case <-stopped:
		// listening failed, no point in keeping the workers
		s.Shutdown()
	}
	<-stopped

	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()

	if s.cancelWorkers != nil {
		s.cancelWorkers()
	}
	if s.workers != nil {
		s.workers.Wait()
	}
}
