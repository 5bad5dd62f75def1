// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// VersionSource reports the version of the notes server.
type VersionSource interface {
	GetAppVersion(ctx context.Context) (string, error)
}

type serverVersionMsg struct {
	version string
	err     error
}

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages and auth results
// 4) delivers store changes to the notes page whichever page is active
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string

	changes   <-chan struct{}
	buildInfo models.AppBuildInfo

	showBuildInfo bool

	ctx           context.Context
	versions      VersionSource
	serverVersion string
}

// NewRootModel registers all pages and opens startPage. changes is the note
// store's change signal.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, changes <-chan struct{}) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		changes:   changes,
		buildInfo: buildInfo,
	}
}

// WithServerVersion makes the build info window ask src for the server
// version each time it opens.
func (r RootModel) WithServerVersion(ctx context.Context, src VersionSource) RootModel {
	r.ctx = ctx
	r.versions = src
	return r
}

func (r RootModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if page, ok := r.pages[r.current]; ok {
		cmds = append(cmds, page.Init())
	}
	cmds = append(cmds, listenForChanges(r.changes))
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "v":
			if r.current == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				if r.showBuildInfo {
					return r, r.fetchServerVersion()
				}
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return r, r.broadcast(msg)

	case serverVersionMsg:
		r.serverVersion = msg.version
		if msg.err != nil {
			r.serverVersion = "unavailable"
		}
		return r, nil

	case storeChangedMsg:
		cmd := r.updatePage(pageNotes, msg)
		return r, tea.Batch(cmd, listenForChanges(r.changes))

	case NavigateTo:
		return r, r.navigate(msg)

	case LoginResult:
		cmd := r.updatePage(r.current, msg)
		if msg.Err != nil {
			return r, cmd
		}
		return r, tea.Batch(cmd, r.navigate(NavigateTo{Page: pageNotes, Payload: signedInMsg{Login: msg.Login}}))

	case RegisterResult:
		cmd := r.updatePage(r.current, msg)
		if msg.Err != nil {
			return r, cmd
		}
		return r, tea.Batch(cmd, r.navigate(NavigateTo{Page: pageNotes, Payload: signedInMsg{Login: msg.Login}}))

	case LogoutResult:
		cmd := r.updatePage(pageNotes, msg)
		return r, cmd
	}

	return r, r.updatePage(r.current, msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("NOTES", "", "")
	}
	return page.View()
}

// navigate switches pages. Unknown pages are ignored.
func (r *RootModel) navigate(nav NavigateTo) tea.Cmd {
	next, ok := r.pages[nav.Page]
	if !ok {
		return nil
	}

	r.showBuildInfo = false
	r.current = nav.Page

	if nav.Payload != nil {
		payload := nav.Payload
		return tea.Batch(next.Init(), func() tea.Msg { return payload })
	}
	return next.Init()
}

func (r *RootModel) updatePage(name string, msg tea.Msg) tea.Cmd {
	page, ok := r.pages[name]
	if !ok {
		return nil
	}
	updated, cmd := page.Update(msg)
	r.pages[name] = updated
	return cmd
}

func (r *RootModel) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for name := range r.pages {
		cmds = append(cmds, r.updatePage(name, msg))
	}
	return tea.Batch(cmds...)
}

func (r *RootModel) fetchServerVersion() tea.Cmd {
	if r.versions == nil {
		return nil
	}
	r.serverVersion = ""
	ctx, src := r.ctx, r.versions
	if ctx == nil {
		ctx = context.Background()
	}
	return func() tea.Msg {
		v, err := src.GetAppVersion(ctx)
		return serverVersionMsg{version: v, err: err}
	}
}

// listenForChanges waits for the next store change signal.
func listenForChanges(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}
