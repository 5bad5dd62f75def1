// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import (
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

var (
	// ErrEmptyTitleOrContent is returned by SaveNote when the trimmed title
	// or content is empty.
	ErrEmptyTitleOrContent = validators.ErrEmptyTitleOrContent

	ErrNoDialog       = errors.New("no dialog is open")
	ErrSaveInProgress = errors.New("note is already being saved")
	ErrNoOwner        = errors.New("no signed-in user")

	ErrSyncUnavailable = errors.New("sync unavailable")
	ErrFeedClosed      = errors.New("live feed closed")
)
