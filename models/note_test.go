// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoteRecord_ToNote_DefaultsAbsentFields(t *testing.T) {
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := NoteRecord{ID: "n1", UserID: 7, Title: "Shopping", Content: "milk", CreatedAt: ts, UpdatedAt: ts}

	n := rec.ToNote()

	assert.Equal(t, "n1", n.ID)
	assert.Equal(t, int64(7), n.UserID)
	assert.Equal(t, []string{}, n.Categories)
	assert.Equal(t, []string{}, n.Tags)
	assert.False(t, n.IsFavorite)
	assert.Equal(t, ts, n.UpdatedAt)
}

func TestNoteRecord_ToNote_CopiesSlices(t *testing.T) {
	fav := true
	rec := NoteRecord{Categories: []string{"home"}, Tags: []string{"urgent"}, IsFavorite: &fav}

	n := rec.ToNote()
	rec.Categories[0] = "work"

	assert.Equal(t, []string{"home"}, n.Categories)
	assert.Equal(t, []string{"urgent"}, n.Tags)
	assert.True(t, n.IsFavorite)
}

func TestNoteUpdate_HasChanges(t *testing.T) {
	title := "x"

	assert.False(t, NoteUpdate{UpdatedAt: time.Now()}.HasChanges())
	assert.True(t, NoteUpdate{Title: &title}.HasChanges())
}
