// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

// Services is the server's business layer.
type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, broker ChangeBroker, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			crypto.NewPasswordHasher(),
			validators.NewUserValidator(),
			cfg.App,
			logger,
		),
		NoteService: NewNoteService(
			storages.NoteRepository,
			validators.NewNoteValidator(),
			utils.NewUUIDGenerator(),
			broker,
			logger,
		),
		AppInfoService: appInfo,
	}, nil
}
