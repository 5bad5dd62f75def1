// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's transport to the notes server.
//
// [ServerAdapter] covers the REST API (auth, version, note writes) and the
// websocket live feed, and satisfies both [notes.Feed] and [notes.Mutator].
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go, so callers match them with [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/notes"
	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the notes server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all authenticated
	// requests. An empty token signs the adapter out.
	SetToken(token string)
	Token() string

	// Register creates an account. On success the bearer token from the
	// Authorization response header is stored and returned with the user id
	// read from its subject.
	Register(ctx context.Context, user models.User) (models.Token, error)
	// Login behaves like Register for an existing account.
	Login(ctx context.Context, user models.User) (models.Token, error)

	GetAppVersion(ctx context.Context) (string, error)

	// CreateNote returns the id the server assigned. ownerID must be the
	// user the token was issued to.
	CreateNote(ctx context.Context, ownerID int64, fields models.NoteFields) (string, error)
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate) error
	DeleteNote(ctx context.Context, id string) error

	// Subscribe opens the live feed of ownerID's notes.
	Subscribe(ctx context.Context, ownerID int64) (notes.Subscription, error)
}
