// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var ErrNilDependency = errors.New("client app: nil dependency")

// App ties the signed-in identity to the note store and runs the UI.
type App struct {
	services *service.ClientServices
	store    OwnerSetter
	ui       UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, store OwnerSetter, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil || store == nil || ui == nil {
		return nil, ErrNilDependency
	}

	return &App{
		services: services,
		store:    store,
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run follows sign-in and sign-out with the note store, restores the saved
// session and blocks in the UI until the user quits or the process is
// interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.store.Close()

	a.services.AuthService.OnChange(func(session models.Session) {
		a.logger.Debug().Int64("user_id", session.UserID).Msg("identity changed")
		a.store.SetOwner(ctx, session.UserID)
	})

	restored, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		// start signed out; the user can still sign in
		a.logger.Err(err).Msg("restoring session failed")
	}
	a.logger.Info().Bool("restored", restored).Msg("client started")

	return a.ui.Run(ctx)
}
