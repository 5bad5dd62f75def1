// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A taken login yields ErrLoginAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns ErrUserNotFound when no account matches.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// NoteRepository stores notes. Every method is scoped to the owner, so a
// user can never read or touch somebody else's note.
type NoteRepository interface {
	CreateNote(ctx context.Context, userID int64, noteID string, fields models.NoteFields) error
	UpdateNote(ctx context.Context, userID int64, noteID string, update models.NoteUpdate) error
	DeleteNote(ctx context.Context, userID int64, noteID string) error

	// ListNotes returns the owner's notes, most recently updated first.
	ListNotes(ctx context.Context, userID int64) ([]models.NoteRecord, error)
}

// SessionRepository keeps the client's single signed-in session.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	// LoadSession returns ErrLocalSessionNotFound when nobody is signed in.
	LoadSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}
