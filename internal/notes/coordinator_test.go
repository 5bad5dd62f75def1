// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/notes"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var callTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestCoordinator(t *testing.T, opts ...notes.Option) (*notes.Coordinator, *mock.MockMutator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mutator := mock.NewMockMutator(ctrl)

	opts = append([]notes.Option{notes.WithClock(func() time.Time { return callTime })}, opts...)
	return notes.NewCoordinator(mutator, logger.Nop(), opts...), mutator
}

func dialogState(t *testing.T, c *notes.Coordinator) notes.DialogOpen {
	t.Helper()
	d, ok := c.State().(notes.DialogOpen)
	require.True(t, ok, "expected an open dialog, got %T", c.State())
	return d
}

var existing = models.Note{
	ID:         "n1",
	UserID:     7,
	Title:      "Shopping",
	Content:    "milk",
	Categories: []string{"home"},
	Tags:       []string{"urgent"},
	IsFavorite: true,
	CreatedAt:  callTime.Add(-48 * time.Hour),
	UpdatedAt:  callTime.Add(-time.Hour),
}

// ── state machine ───────────────────────────────────────────────────────────

func TestCoordinator_StartsIdle(t *testing.T) {
	c, _ := newTestCoordinator(t)

	assert.Equal(t, notes.Idle{}, c.State())
}

func TestCoordinator_MenuAndDialogAreExclusive(t *testing.T) {
	c, _ := newTestCoordinator(t)

	c.OpenMenu(3, existing)
	menu, ok := c.State().(notes.MenuOpen)
	require.True(t, ok)
	assert.Equal(t, 3, menu.Anchor)
	assert.Equal(t, "n1", menu.Note.ID)

	// opening a dialog closes the menu
	c.OpenEditDialog(menu.Note)
	d := dialogState(t, c)
	assert.Equal(t, notes.DialogEdit, d.Mode)

	// opening the menu closes the dialog
	c.SetTitle("unsaved")
	c.OpenMenu(1, existing)
	menu, ok = c.State().(notes.MenuOpen)
	require.True(t, ok)
	assert.Equal(t, 1, menu.Anchor)

	// the discarded draft does not come back
	c.CloseMenu()
	c.OpenCreateDialog()
	assert.Empty(t, dialogState(t, c).Draft.Title)
}

func TestCoordinator_CloseMenu(t *testing.T) {
	c, _ := newTestCoordinator(t)

	c.OpenMenu(0, existing)
	c.CloseMenu()
	assert.Equal(t, notes.Idle{}, c.State())

	// closing the menu leaves an open dialog alone
	c.OpenCreateDialog()
	c.CloseMenu()
	dialogState(t, c)
}

func TestCoordinator_OpenCreateDialogResetsFields(t *testing.T) {
	c, _ := newTestCoordinator(t)

	c.OpenEditDialog(existing)
	c.OpenCreateDialog()

	d := dialogState(t, c)
	assert.Equal(t, notes.DialogCreate, d.Mode)
	assert.Equal(t, models.Note{}, d.Editing)
	assert.Equal(t, "", d.Draft.Title)
	assert.Equal(t, []string{}, d.Draft.Categories)
	assert.Equal(t, []string{}, d.Draft.Tags)
	assert.False(t, d.Draft.IsFavorite)
}

func TestCoordinator_EditDialogPrefills(t *testing.T) {
	c, _ := newTestCoordinator(t)

	c.OpenEditDialog(existing)
	d := dialogState(t, c)

	assert.Equal(t, notes.Draft{
		Title:      "Shopping",
		Content:    "milk",
		Categories: []string{"home"},
		Tags:       []string{"urgent"},
		IsFavorite: true,
	}, d.Draft)

	// editing the draft never touches the source note
	c.SetCategories([]string{"work"})
	assert.Equal(t, []string{"home"}, existing.Categories)
}

func TestCoordinator_DraftSettersNeedDialog(t *testing.T) {
	c, _ := newTestCoordinator(t)

	c.SetTitle("ignored")
	assert.Equal(t, notes.Idle{}, c.State())

	c.OpenCreateDialog()
	c.SetTitle("T")
	c.SetContent("C")
	c.SetTags([]string{"x"})
	c.SetFavorite(true)

	d := dialogState(t, c)
	assert.Equal(t, "T", d.Draft.Title)
	assert.Equal(t, "C", d.Draft.Content)
	assert.Equal(t, []string{"x"}, d.Draft.Tags)
	assert.True(t, d.Draft.IsFavorite)
}

// ── SaveNote ────────────────────────────────────────────────────────────────

func TestSaveNote_WhitespaceTitleFailsWithoutBackendCall(t *testing.T) {
	c, _ := newTestCoordinator(t)

	c.OpenCreateDialog()
	c.SetTitle("   ")
	c.SetContent("anything")

	err := c.SaveNote(context.Background(), 7)

	assert.ErrorIs(t, err, notes.ErrEmptyTitleOrContent)
	d := dialogState(t, c)
	assert.Equal(t, notes.ErrEmptyTitleOrContent.Error(), d.Err)
	assert.Equal(t, "   ", d.Draft.Title)
	assert.False(t, d.Saving)
}

func TestSaveNote_EmptyContentFails(t *testing.T) {
	c, _ := newTestCoordinator(t)

	c.OpenEditDialog(existing)
	c.SetContent("\n\t ")

	err := c.SaveNote(context.Background(), 7)

	assert.ErrorIs(t, err, notes.ErrEmptyTitleOrContent)
}

func TestSaveNote_CreateSendsTrimmedFields(t *testing.T) {
	c, mutator := newTestCoordinator(t)

	mutator.EXPECT().CreateNote(gomock.Any(), int64(7), models.NoteFields{
		Title:      "A",
		Content:    "B",
		Categories: []string{},
		Tags:       []string{},
		IsFavorite: false,
		CreatedAt:  callTime,
		UpdatedAt:  callTime,
	}).Return("new-id", nil)

	c.OpenCreateDialog()
	c.SetTitle("  A ")
	c.SetContent("B\n")

	require.NoError(t, c.SaveNote(context.Background(), 7))
	assert.Equal(t, notes.Idle{}, c.State())
}

func TestSaveNote_CreateWithoutOwner(t *testing.T) {
	c, _ := newTestCoordinator(t)

	c.OpenCreateDialog()
	c.SetTitle("A")
	c.SetContent("B")

	err := c.SaveNote(context.Background(), 0)

	assert.ErrorIs(t, err, notes.ErrNoOwner)
	dialogState(t, c)
}

func TestSaveNote_EditSendsFullUpdate(t *testing.T) {
	c, mutator := newTestCoordinator(t)

	mutator.EXPECT().UpdateNote(gomock.Any(), "n1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, u models.NoteUpdate) error {
			require.NotNil(t, u.Title)
			require.NotNil(t, u.Content)
			require.NotNil(t, u.Categories)
			require.NotNil(t, u.Tags)
			require.NotNil(t, u.IsFavorite)
			assert.Equal(t, "Groceries", *u.Title)
			assert.Equal(t, "milk, eggs", *u.Content)
			assert.Equal(t, []string{"home", "weekly"}, *u.Categories)
			assert.Equal(t, []string{"urgent"}, *u.Tags)
			assert.True(t, *u.IsFavorite)
			assert.Equal(t, callTime, u.UpdatedAt)
			return nil
		})

	c.OpenEditDialog(existing)
	c.SetTitle(" Groceries ")
	c.SetContent("milk, eggs")
	c.SetCategories([]string{"home", "weekly"})

	require.NoError(t, c.SaveNote(context.Background(), 7))
	assert.Equal(t, notes.Idle{}, c.State())
}

func TestSaveNote_BackendFailureKeepsDialog(t *testing.T) {
	c, mutator := newTestCoordinator(t)
	backendErr := errors.New("permission denied")

	mutator.EXPECT().CreateNote(gomock.Any(), int64(7), gomock.Any()).Return("", backendErr)

	c.OpenCreateDialog()
	c.SetTitle("A")
	c.SetContent("B")
	c.SetTags([]string{"t"})

	err := c.SaveNote(context.Background(), 7)

	assert.ErrorIs(t, err, backendErr)
	d := dialogState(t, c)
	assert.False(t, d.Saving)
	assert.Contains(t, d.Err, "permission denied")
	assert.Equal(t, "A", d.Draft.Title)
	assert.Equal(t, []string{"t"}, d.Draft.Tags)

	c.DismissError()
	assert.Empty(t, dialogState(t, c).Err)
}

func TestSaveNote_RetryAfterFailure(t *testing.T) {
	c, mutator := newTestCoordinator(t)

	gomock.InOrder(
		mutator.EXPECT().CreateNote(gomock.Any(), int64(7), gomock.Any()).Return("", errors.New("offline")),
		mutator.EXPECT().CreateNote(gomock.Any(), int64(7), gomock.Any()).Return("id", nil),
	)

	c.OpenCreateDialog()
	c.SetTitle("A")
	c.SetContent("B")

	require.Error(t, c.SaveNote(context.Background(), 7))
	require.NoError(t, c.SaveNote(context.Background(), 7))
	assert.Equal(t, notes.Idle{}, c.State())
}

func TestSaveNote_SavingFlagAndSecondSave(t *testing.T) {
	c, mutator := newTestCoordinator(t)

	mutator.EXPECT().CreateNote(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, _ models.NoteFields) (string, error) {
			d := dialogState(t, c)
			assert.True(t, d.Saving)

			// edits and a second save are refused while writing
			c.SetTitle("changed")
			assert.Equal(t, "A", dialogState(t, c).Draft.Title)
			assert.ErrorIs(t, c.SaveNote(ctx, 7), notes.ErrSaveInProgress)
			return "id", nil
		})

	c.OpenCreateDialog()
	c.SetTitle("A")
	c.SetContent("B")

	require.NoError(t, c.SaveNote(context.Background(), 7))
}

func TestSaveNote_DialogReplacedWhileSaving(t *testing.T) {
	c, mutator := newTestCoordinator(t)

	mutator.EXPECT().CreateNote(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(context.Context, int64, models.NoteFields) (string, error) {
			c.OpenEditDialog(existing)
			return "id", nil
		})

	c.OpenCreateDialog()
	c.SetTitle("A")
	c.SetContent("B")

	require.NoError(t, c.SaveNote(context.Background(), 7))

	d := dialogState(t, c)
	assert.Equal(t, notes.DialogEdit, d.Mode)
	assert.Equal(t, "n1", d.Editing.ID)
}

func TestSaveNote_MenuOpenedWhileSaving(t *testing.T) {
	c, mutator := newTestCoordinator(t)

	mutator.EXPECT().CreateNote(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(context.Context, int64, models.NoteFields) (string, error) {
			c.OpenMenu(2, existing)
			return "", errors.New("unavailable")
		})

	c.OpenCreateDialog()
	c.SetTitle("A")
	c.SetContent("B")

	require.Error(t, c.SaveNote(context.Background(), 7))

	menu, ok := c.State().(notes.MenuOpen)
	require.True(t, ok)
	assert.Equal(t, 2, menu.Anchor)
}

func TestSaveNote_NoDialog(t *testing.T) {
	c, _ := newTestCoordinator(t)

	assert.ErrorIs(t, c.SaveNote(context.Background(), 7), notes.ErrNoDialog)
}

// ── DeleteNote ──────────────────────────────────────────────────────────────

func TestDeleteNote_ClosesMenu(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "success", err: nil},
		{name: "failure", err: errors.New("not allowed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mutator := newTestCoordinator(t)
			mutator.EXPECT().DeleteNote(gomock.Any(), "n1").Return(tt.err)

			c.OpenMenu(0, existing)
			err := c.DeleteNote(context.Background(), "n1")

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, notes.Idle{}, c.State())
			assert.Empty(t, c.Notice())
		})
	}
}

func TestDeleteNote_NoticeWhenConfigured(t *testing.T) {
	c, mutator := newTestCoordinator(t, notes.WithNoticeOnFailure(true))
	mutator.EXPECT().DeleteNote(gomock.Any(), "n1").Return(errors.New("offline"))

	require.Error(t, c.DeleteNote(context.Background(), "n1"))

	assert.Equal(t, "Could not delete the note.", c.Notice())
	c.DismissNotice()
	assert.Empty(t, c.Notice())
}

// ── ToggleFavorite ──────────────────────────────────────────────────────────

func TestToggleFavorite_FlipsAndRefreshesUpdatedAt(t *testing.T) {
	c, mutator := newTestCoordinator(t)

	note := existing
	note.IsFavorite = false

	mutator.EXPECT().UpdateNote(gomock.Any(), "n1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, u models.NoteUpdate) error {
			require.NotNil(t, u.IsFavorite)
			assert.True(t, *u.IsFavorite)
			assert.True(t, u.UpdatedAt.After(note.UpdatedAt))
			assert.Nil(t, u.Title)
			assert.Nil(t, u.Content)
			return nil
		}).Times(1)

	require.NoError(t, c.ToggleFavorite(context.Background(), note))
}

func TestToggleFavorite_TwiceRestoresOriginal(t *testing.T) {
	c, mutator := newTestCoordinator(t)

	// the backend copy the feed would push back
	stored := existing
	mutator.EXPECT().UpdateNote(gomock.Any(), "n1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, u models.NoteUpdate) error {
			stored.IsFavorite = *u.IsFavorite
			stored.UpdatedAt = u.UpdatedAt
			return nil
		}).Times(2)

	require.NoError(t, c.ToggleFavorite(context.Background(), stored))
	assert.False(t, stored.IsFavorite)
	require.NoError(t, c.ToggleFavorite(context.Background(), stored))
	assert.Equal(t, existing.IsFavorite, stored.IsFavorite)
}

func TestToggleFavorite_Failure(t *testing.T) {
	tests := []struct {
		name       string
		notice     bool
		wantNotice string
	}{
		{name: "silent", notice: false, wantNotice: ""},
		{name: "with notice", notice: true, wantNotice: "Could not update the favorite."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mutator := newTestCoordinator(t, notes.WithNoticeOnFailure(tt.notice))
			mutator.EXPECT().UpdateNote(gomock.Any(), "n1", gomock.Any()).Return(errors.New("offline"))

			err := c.ToggleFavorite(context.Background(), existing)

			assert.Error(t, err)
			assert.Equal(t, tt.wantNotice, c.Notice())
		})
	}
}
