// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	pingInterval   time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, serverCfg config.Server, feedCfg config.Feed, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: serverCfg.RequestTimeout,
		pingInterval:   feedCfg.PingInterval,
		logger:         logger,
	}
}
