// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_mock.go -package=mock

// Subscription is a live query over one owner's notes.
type Subscription interface {
	// Snapshots delivers the complete, ordered set of notes every time it
	// changes. The channel is closed when the subscription ends.
	Snapshots() <-chan []models.NoteRecord

	// Err reports why Snapshots was closed. It is nil after Close.
	Err() error

	Close() error
}

// Feed opens live subscriptions.
type Feed interface {
	Subscribe(ctx context.Context, ownerID int64) (Subscription, error)
}

// Mutator writes single notes to the backend.
type Mutator interface {
	CreateNote(ctx context.Context, ownerID int64, fields models.NoteFields) (string, error)
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate) error
	DeleteNote(ctx context.Context, id string) error
}
