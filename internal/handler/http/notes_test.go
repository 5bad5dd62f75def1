// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// signedIn makes the auth middleware accept testToken as user 7.
func signedIn(m serviceMocks) {
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: 7}, nil).AnyTimes()
}

// ── listNotes ───────────────────────────────────────────────────────────────

func TestListNotes_ReturnsOwnerNotes(t *testing.T) {
	h, m := newTestHandler(t)
	signedIn(m)

	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.notes.EXPECT().ListNotes(gomock.Any(), int64(7)).Return([]models.NoteRecord{
		{ID: "n2", UserID: 7, Title: "Groceries", Content: "milk", UpdatedAt: updated},
		{ID: "n1", UserID: 7, Title: "Ideas", Content: "…", UpdatedAt: updated.Add(-time.Hour)},
	}, nil)

	rr := do(t, h, http.MethodGet, "/api/notes/", "", bearer(testToken))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got []models.NoteRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "n2", got[0].ID)
	assert.Equal(t, "n1", got[1].ID)
}

func TestListNotes_EmptyIsArray(t *testing.T) {
	h, m := newTestHandler(t)
	signedIn(m)
	m.notes.EXPECT().ListNotes(gomock.Any(), int64(7)).Return(nil, nil)

	rr := do(t, h, http.MethodGet, "/api/notes/", "", bearer(testToken))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListNotes_StoreFailureHidesDetails(t *testing.T) {
	h, m := newTestHandler(t)
	signedIn(m)
	m.notes.EXPECT().ListNotes(gomock.Any(), int64(7)).
		Return(nil, fmt.Errorf("%w: relation notes does not exist", store.ErrExecutingQuery))

	rr := do(t, h, http.MethodGet, "/api/notes/", "", bearer(testToken))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, app.MsgInternalServerError, bodyText(rr))
}

func TestNotesRoutes_RequireToken(t *testing.T) {
	routes := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/notes/"},
		{http.MethodPost, "/api/notes/"},
		{http.MethodPatch, "/api/notes/n1"},
		{http.MethodDelete, "/api/notes/n1"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.target, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rr := do(t, h, rt.method, rt.target, "", nil)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

// ── createNote ──────────────────────────────────────────────────────────────

func TestCreateNote_Created(t *testing.T) {
	h, m := newTestHandler(t)
	signedIn(m)

	m.notes.EXPECT().
		CreateNote(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, fields models.NoteFields) (string, error) {
			assert.Equal(t, "Groceries", fields.Title)
			assert.Equal(t, []string{"home"}, fields.Categories)
			assert.True(t, fields.IsFavorite)
			return "n42", nil
		})

	body := `{"title":"Groceries","content":"milk","categories":["home"],"tags":[],"is_favorite":true}`
	rr := do(t, h, http.MethodPost, "/api/notes/", body, bearer(testToken))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":"n42"}`, rr.Body.String())
}

func TestCreateNote_ValidationMessage(t *testing.T) {
	h, m := newTestHandler(t)
	signedIn(m)
	m.notes.EXPECT().CreateNote(gomock.Any(), int64(7), gomock.Any()).
		Return("", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyTitleOrContent))

	rr := do(t, h, http.MethodPost, "/api/notes/", `{"title":" ","content":""}`, bearer(testToken))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgEmptyTitleOrContent, bodyText(rr))
}

func TestCreateNote_InvalidJSON(t *testing.T) {
	h, m := newTestHandler(t)
	signedIn(m)

	rr := do(t, h, http.MethodPost, "/api/notes/", `{"title":`, bearer(testToken))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidJSON, bodyText(rr))
}

// ── updateNote ──────────────────────────────────────────────────────────────

func TestUpdateNote_NoContent(t *testing.T) {
	h, m := newTestHandler(t)
	signedIn(m)

	m.notes.EXPECT().
		UpdateNote(gomock.Any(), int64(7), "n1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ string, update models.NoteUpdate) error {
			require.NotNil(t, update.IsFavorite)
			assert.True(t, *update.IsFavorite)
			assert.Nil(t, update.Title)
			return nil
		})

	rr := do(t, h, http.MethodPatch, "/api/notes/n1", `{"is_favorite":true}`, bearer(testToken))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestUpdateNote_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing note",
			serviceErr: fmt.Errorf("update note: %w", store.ErrNoteNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   app.MsgNoteNotFound,
		},
		{
			name:       "nothing to update",
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNoFieldsToUpdate),
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgNoFieldsToUpdate,
		},
		{
			name:       "title too long",
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrTitleTooLong),
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgTitleTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			signedIn(m)
			m.notes.EXPECT().UpdateNote(gomock.Any(), int64(7), "n1", gomock.Any()).Return(tt.serviceErr)

			rr := do(t, h, http.MethodPatch, "/api/notes/n1", `{"title":"x"}`, bearer(testToken))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, bodyText(rr))
		})
	}
}

// ── deleteNote ──────────────────────────────────────────────────────────────

func TestDeleteNote_NoContent(t *testing.T) {
	h, m := newTestHandler(t)
	signedIn(m)
	m.notes.EXPECT().DeleteNote(gomock.Any(), int64(7), "n1").Return(nil)

	rr := do(t, h, http.MethodDelete, "/api/notes/n1", "", bearer(testToken))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestDeleteNote_NotFound(t *testing.T) {
	h, m := newTestHandler(t)
	signedIn(m)
	m.notes.EXPECT().DeleteNote(gomock.Any(), int64(7), "gone").Return(store.ErrNoteNotFound)

	rr := do(t, h, http.MethodDelete, "/api/notes/gone", "", bearer(testToken))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgNoteNotFound, bodyText(rr))
}

// ── handlers without the auth middleware ────────────────────────────────────

func TestNoteHandlers_NoUserInContext(t *testing.T) {
	h, _ := newTestHandler(t)

	for name, fn := range map[string]http.HandlerFunc{
		"list":   h.listNotes,
		"create": h.createNote,
		"update": h.updateNote,
		"delete": h.deleteNote,
	} {
		t.Run(name, func(t *testing.T) {
			rr := httptestRecord(fn, http.MethodPost, "/")
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}
