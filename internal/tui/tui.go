// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/notes"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Deps are the components the terminal UI renders and drives.
type Deps struct {
	Auth        service.ClientAuthService
	Store       *notes.Store
	Filter      *notes.Filter
	Coordinator *notes.Coordinator
	BuildInfo   models.AppBuildInfo
	// Versions is optional. Without it the about window shows no server
	// version.
	Versions VersionSource
}

type TUI struct {
	deps   Deps
	logger *logger.Logger
}

func New(deps Deps, logger *logger.Logger) (*TUI, error) {
	if deps.Auth == nil || deps.Store == nil || deps.Filter == nil || deps.Coordinator == nil {
		return nil, errors.New("tui: missing dependency")
	}
	return &TUI{deps: deps, logger: logger}, nil
}

// Run shows the UI until the user quits or ctx is cancelled. It starts on
// the notes page when a session is already signed in.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.deps.Auth),
		pageRegister: NewRegisterModel(ctx, t.deps.Auth),
		pageNotes:    NewNotesModel(ctx, t.deps.Auth, t.deps.Store, t.deps.Filter, t.deps.Coordinator),
	}

	start := pageMenu
	if _, ok := t.deps.Auth.Current(); ok {
		start = pageNotes
	}

	root := NewRootModel(pages, start, t.deps.BuildInfo, t.deps.Store.Changed())
	if t.deps.Versions != nil {
		root = root.WithServerVersion(ctx, t.deps.Versions)
	}
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Msg("terminal UI stopped")
		return err
	}

	t.logger.Info().Msg("terminal UI closed")
	return nil
}
