// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import tea "github.com/charmbracelet/bubbletea"

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageNotes    = "notes"
)

// NavigateTo asks [RootModel] to switch the active page. A non-nil Payload
// is delivered to the new page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login screen once the sign-in request
// returns.
type LoginResult struct {
	Err   error
	Login string
}

// RegisterResult is produced by the registration screen. A successful
// registration is also a sign-in.
type RegisterResult struct {
	Err   error
	Login string
}

// LogoutResult is produced once the session is cleared.
type LogoutResult struct {
	Err   error
	Login string
}

// signedInMsg is delivered to the notes page after a sign-in.
type signedInMsg struct {
	Login string
}

// signedOutNotice is delivered to the menu after a logout.
type signedOutNotice struct {
	Login string
}

// storeChangedMsg fires whenever the note store publishes a new state.
type storeChangedMsg struct{}

type noteSavedMsg struct {
	err error
}

type noteDeletedMsg struct {
	err error
}

type favoriteToggledMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
