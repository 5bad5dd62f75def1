// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the notes server (accounts,
// notes, app info) and the identity service of the client.
package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and signs in users and issues their tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService manages the notes of a single owner and tells live
// subscribers when they change.
type NoteService interface {
	// CreateNote stores a new note and returns its server-assigned id.
	CreateNote(ctx context.Context, userID int64, fields models.NoteFields) (string, error)
	UpdateNote(ctx context.Context, userID int64, noteID string, update models.NoteUpdate) error
	DeleteNote(ctx context.Context, userID int64, noteID string) error
	// ListNotes returns the owner's notes, most recently updated first.
	ListNotes(ctx context.Context, userID int64) ([]models.NoteRecord, error)

	// Subscribe returns a channel signalled after every change of userID's
	// notes, and a function releasing it.
	Subscribe(userID int64) (<-chan struct{}, func())
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ClientAuthService is the client's identity: who is signed in, and the
// transitions between signed-in and signed-out.
type ClientAuthService interface {
	// Register creates an account and signs it in. password and confirm
	// must match.
	Register(ctx context.Context, login, password, confirm string) error
	Login(ctx context.Context, login, password string) error
	Logout(ctx context.Context) error

	// RestoreSession signs in with the locally saved session, if there is
	// one that hasn't expired. It reports whether a session was restored.
	RestoreSession(ctx context.Context) (bool, error)

	// Current returns the signed-in session; ok is false when signed out.
	Current() (session models.Session, ok bool)

	// OnChange registers fn to be called after every sign-in and sign-out.
	// On sign-out fn receives the zero Session.
	OnChange(fn func(models.Session))
}
