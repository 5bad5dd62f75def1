// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

var ts = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

// ── CreateNote ────────────────────────────────────────────────────────────────

func TestNoteRepository_CreateNote(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	fields := models.NoteFields{
		Title:      "Shopping",
		Content:    "Buy milk",
		Categories: []string{"home"},
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notes (id,user_id,title,content,categories,tags,is_favorite,created_at,updated_at)")).
		WithArgs("n1", int64(5), "Shopping", "Buy milk", `["home"]`, `[]`, false, ts, ts).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateNote(context.Background(), 5, "n1", fields))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_CreateNote_Duplicate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO notes").WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.CreateNote(context.Background(), 5, "n1", models.NoteFields{})
	assert.ErrorIs(t, err, ErrNoteAlreadyExists)
}

// ── UpdateNote ────────────────────────────────────────────────────────────────

func TestNoteRepository_UpdateNote(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	update := models.NoteUpdate{IsFavorite: ptr(true), UpdatedAt: ts}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notes SET is_favorite = $1, updated_at = $2 WHERE id = $3 AND user_id = $4")).
		WithArgs(true, ts, "n1", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateNote(context.Background(), 5, "n1", update))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_UpdateNote_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE notes").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateNote(context.Background(), 5, "other-users-note", models.NoteUpdate{Title: ptr("x"), UpdatedAt: ts})
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

// ── DeleteNote ────────────────────────────────────────────────────────────────

func TestNoteRepository_DeleteNote(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notes WHERE id = $1 AND user_id = $2")).
		WithArgs("n1", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteNote(context.Background(), 5, "n1"))

	mock.ExpectExec("DELETE FROM notes").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteNote(context.Background(), 5, "n1"), ErrNoteNotFound)

	mock.ExpectExec("DELETE FROM notes").WillReturnError(errors.New("boom"))
	assert.ErrorIs(t, repo.DeleteNote(context.Background(), 5, "n1"), ErrExecutingQuery)
}

// ── ListNotes ─────────────────────────────────────────────────────────────────

func TestNoteRepository_ListNotes(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	rows := sqlmock.NewRows(noteColumns).
		AddRow("n2", 5, "Work plan", "Q3", []byte(`["work"]`), []byte(`["q3","urgent"]`), true, ts, ts.Add(time.Hour)).
		AddRow("n1", 5, "Legacy", "old note", nil, nil, nil, ts, ts)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, title, content, categories, tags, is_favorite, created_at, updated_at FROM notes WHERE user_id = $1 ORDER BY updated_at DESC, id")).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	notes, err := repo.ListNotes(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, notes, 2)

	assert.Equal(t, "n2", notes[0].ID)
	assert.Equal(t, []string{"work"}, notes[0].Categories)
	assert.Equal(t, []string{"q3", "urgent"}, notes[0].Tags)
	require.NotNil(t, notes[0].IsFavorite)
	assert.True(t, *notes[0].IsFavorite)

	// legacy rows keep absent fields absent
	assert.Nil(t, notes[1].Categories)
	assert.Nil(t, notes[1].Tags)
	assert.Nil(t, notes[1].IsFavorite)
}

func TestNoteRepository_ListNotes_BadJSON(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(noteColumns).
		AddRow("n1", 5, "t", "c", []byte(`{`), nil, nil, ts, ts))

	_, err := repo.ListNotes(context.Background(), 5)
	assert.ErrorIs(t, err, ErrDecodingColumn)
}

func TestNoteRepository_ListNotes_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(noteColumns))

	notes, err := repo.ListNotes(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}
