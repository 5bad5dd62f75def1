// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Note is a single user note as the client presents it.
//
// Categories and Tags are ordered and may contain duplicates. UpdatedAt is
// the presentation sort key and is refreshed on every mutation, including a
// favorite toggle.
type Note struct {
	// ID is assigned by the server on creation and never changes.
	ID string `json:"id"`

	// UserID is the owner of the note. Set once at creation.
	UserID int64 `json:"user_id"`

	Title   string `json:"title"`
	Content string `json:"content"`

	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`

	IsFavorite bool `json:"is_favorite"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteRecord is the raw stored shape of a note as delivered by the live feed.
//
// Notes written before categories, tags and favorites existed have those
// fields absent; they are left nil here and defaulted by [NoteRecord.ToNote].
type NoteRecord struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"user_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Categories []string  `json:"categories,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	IsFavorite *bool     `json:"is_favorite,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToNote maps a raw record to a [Note], defaulting absent categories and tags
// to empty slices and an absent favorite flag to false.
func (r NoteRecord) ToNote() Note {
	n := Note{
		ID:         r.ID,
		UserID:     r.UserID,
		Title:      r.Title,
		Content:    r.Content,
		Categories: []string{},
		Tags:       []string{},
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.Categories != nil {
		n.Categories = slices.Clone(r.Categories)
	}
	if r.Tags != nil {
		n.Tags = slices.Clone(r.Tags)
	}
	if r.IsFavorite != nil {
		n.IsFavorite = *r.IsFavorite
	}

	return n
}

// NoteFields is the payload of a create request. Timestamps are stamped by
// the caller at the moment the note is saved.
type NoteFields struct {
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Categories []string  `json:"categories"`
	Tags       []string  `json:"tags"`
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NoteUpdate is a partial update of a single note.
// Only non-nil fields are written; UpdatedAt is always written.
type NoteUpdate struct {
	Title      *string   `json:"title,omitempty"`
	Content    *string   `json:"content,omitempty"`
	Categories *[]string `json:"categories,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	IsFavorite *bool     `json:"is_favorite,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HasChanges reports whether at least one content field is set.
func (u NoteUpdate) HasChanges() bool {
	return u.Title != nil || u.Content != nil || u.Categories != nil || u.Tags != nil || u.IsFavorite != nil
}

// CreateNoteResponse is returned by the server after a note was created.
type CreateNoteResponse struct {
	ID string `json:"id"`
}
