// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// UIState is the transient interaction state. Exactly one of [Idle],
// [MenuOpen] or [DialogOpen] is current, so a menu and a dialog can never
// be open together.
type UIState interface {
	isUIState()
}

type Idle struct{}

// MenuOpen is the per-note action menu.
type MenuOpen struct {
	Note models.Note
	// Anchor is the position of the card the menu was opened from.
	Anchor int
}

type DialogMode int

const (
	DialogCreate DialogMode = iota
	DialogEdit
)

func (m DialogMode) String() string {
	if m == DialogEdit {
		return "edit"
	}
	return "create"
}

// Draft is the form content of an open dialog.
type Draft struct {
	Title      string
	Content    string
	Categories []string
	Tags       []string
	IsFavorite bool
}

// DialogOpen is the create/edit note dialog.
type DialogOpen struct {
	Mode DialogMode
	// Editing is the note being edited; zero in create mode.
	Editing models.Note
	Draft   Draft

	// Err is the message of the last failed save, shown in the dialog.
	Err    string
	Saving bool
}

func (Idle) isUIState()       {}
func (MenuOpen) isUIState()   {}
func (DialogOpen) isUIState() {}

type Option func(*Coordinator)

// WithClock replaces time.Now as the source of note timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

// WithNoticeOnFailure makes failed deletes and favorite toggles set a
// notice in addition to being logged.
func WithNoticeOnFailure(on bool) Option {
	return func(c *Coordinator) {
		c.noticeOnFailure = on
	}
}

// Coordinator owns the menu and dialog state and issues note writes.
// It is safe for concurrent use.
type Coordinator struct {
	mutator   Mutator
	validator validators.Validator
	now       func() time.Time

	noticeOnFailure bool

	logger *logger.Logger

	mu     sync.Mutex
	state  UIState
	seq    uint64 // bumped whenever a dialog is opened or closed
	notice string
}

func NewCoordinator(mutator Mutator, logger *logger.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		mutator:   mutator,
		validator: validators.NewNoteValidator(),
		now:       time.Now,
		logger:    logger,
		state:     Idle{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) State() UIState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d, ok := c.state.(DialogOpen); ok {
		d.Draft = cloneDraft(d.Draft)
		return d
	}
	return c.state
}

// OpenCreateDialog opens an empty dialog, replacing any open menu.
func (c *Coordinator) OpenCreateDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.state = DialogOpen{
		Mode:  DialogCreate,
		Draft: Draft{Categories: []string{}, Tags: []string{}},
	}
}

// OpenEditDialog opens a dialog filled from note, replacing any open menu.
func (c *Coordinator) OpenEditDialog(note models.Note) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.state = DialogOpen{
		Mode:    DialogEdit,
		Editing: note,
		Draft: cloneDraft(Draft{
			Title:      note.Title,
			Content:    note.Content,
			Categories: note.Categories,
			Tags:       note.Tags,
			IsFavorite: note.IsFavorite,
		}),
	}
}

// CloseDialog discards the draft.
func (c *Coordinator) CloseDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.state.(DialogOpen); ok {
		c.seq++
		c.state = Idle{}
	}
}

func (c *Coordinator) SetTitle(title string) {
	c.editDraft(func(d *Draft) { d.Title = title })
}

func (c *Coordinator) SetContent(content string) {
	c.editDraft(func(d *Draft) { d.Content = content })
}

func (c *Coordinator) SetCategories(categories []string) {
	c.editDraft(func(d *Draft) { d.Categories = slices.Clone(categories) })
}

func (c *Coordinator) SetTags(tags []string) {
	c.editDraft(func(d *Draft) { d.Tags = slices.Clone(tags) })
}

func (c *Coordinator) SetFavorite(favorite bool) {
	c.editDraft(func(d *Draft) { d.IsFavorite = favorite })
}

// DismissError clears the dialog's error message.
func (c *Coordinator) DismissError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d, ok := c.state.(DialogOpen); ok {
		d.Err = ""
		c.state = d
	}
}

// OpenMenu opens the action menu of note. An open dialog is closed and its
// draft discarded.
func (c *Coordinator) OpenMenu(anchor int, note models.Note) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.state.(DialogOpen); ok {
		c.seq++
	}
	c.state = MenuOpen{Note: note, Anchor: anchor}
}

func (c *Coordinator) CloseMenu() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.state.(MenuOpen); ok {
		c.state = Idle{}
	}
}

// SaveNote writes the open dialog's draft for ownerID. Invalid drafts are
// rejected without a backend call. On success the dialog closes; on failure
// it stays open with the draft intact and the error message set.
func (c *Coordinator) SaveNote(ctx context.Context, ownerID int64) error {
	c.mu.Lock()
	dialog, ok := c.state.(DialogOpen)
	if !ok {
		c.mu.Unlock()
		return ErrNoDialog
	}
	if dialog.Saving {
		c.mu.Unlock()
		return ErrSaveInProgress
	}

	draft := trimDraft(dialog.Draft)
	fields := models.NoteFields{
		Title:      draft.Title,
		Content:    draft.Content,
		Categories: draft.Categories,
		Tags:       draft.Tags,
		IsFavorite: draft.IsFavorite,
	}
	if err := c.validator.Validate(ctx, fields); err != nil {
		dialog.Err = err.Error()
		c.state = dialog
		c.mu.Unlock()
		return err
	}
	if dialog.Mode == DialogCreate && ownerID == 0 {
		dialog.Err = ErrNoOwner.Error()
		c.state = dialog
		c.mu.Unlock()
		return ErrNoOwner
	}

	dialog.Saving = true
	dialog.Err = ""
	c.state = dialog
	seq := c.seq
	c.mu.Unlock()

	now := c.now()
	log := c.logger.WithOwner(ownerID)

	var err error
	if dialog.Mode == DialogEdit {
		err = c.mutator.UpdateNote(ctx, dialog.Editing.ID, models.NoteUpdate{
			Title:      &fields.Title,
			Content:    &fields.Content,
			Categories: &fields.Categories,
			Tags:       &fields.Tags,
			IsFavorite: &fields.IsFavorite,
			UpdatedAt:  now,
		})
	} else {
		fields.CreatedAt = now
		fields.UpdatedAt = now
		var id string
		id, err = c.mutator.CreateNote(ctx, ownerID, fields)
		if err == nil {
			log.Debug().Str("note_id", id).Msg("note created")
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		log.Err(err).Str("mode", dialog.Mode.String()).Msg("saving note failed")
		err = fmt.Errorf("error saving note: %w", err)
	}

	// the dialog may have been closed or replaced while saving
	if seq != c.seq {
		return err
	}
	current, ok := c.state.(DialogOpen)
	if !ok {
		return err
	}

	if err != nil {
		current.Saving = false
		current.Err = err.Error()
		c.state = current
		return err
	}

	c.seq++
	c.state = Idle{}
	return nil
}

// DeleteNote permanently deletes the note with id and closes the menu
// whatever the outcome. A failure is logged and, when configured, set as
// the notice.
func (c *Coordinator) DeleteNote(ctx context.Context, id string) error {
	c.CloseMenu()

	if err := c.mutator.DeleteNote(ctx, id); err != nil {
		c.logger.Err(err).Str("note_id", id).Msg("deleting note failed")
		c.backgroundFailure("Could not delete the note.")
		return err
	}

	return nil
}

// ToggleFavorite flips the favorite flag of note and refreshes its
// UpdatedAt. A failure is logged and, when configured, set as the notice.
func (c *Coordinator) ToggleFavorite(ctx context.Context, note models.Note) error {
	favorite := !note.IsFavorite

	err := c.mutator.UpdateNote(ctx, note.ID, models.NoteUpdate{
		IsFavorite: &favorite,
		UpdatedAt:  c.now(),
	})
	if err != nil {
		c.logger.Err(err).Str("note_id", note.ID).Msg("toggling favorite failed")
		c.backgroundFailure("Could not update the favorite.")
		return err
	}

	return nil
}

// Notice returns the pending background failure message, if any.
func (c *Coordinator) Notice() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

func (c *Coordinator) DismissNotice() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = ""
}

func (c *Coordinator) backgroundFailure(msg string) {
	if !c.noticeOnFailure {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = msg
}

func (c *Coordinator) editDraft(fn func(*Draft)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.state.(DialogOpen)
	if !ok || d.Saving {
		return
	}
	d.Draft = cloneDraft(d.Draft)
	fn(&d.Draft)
	c.state = d
}

func cloneDraft(d Draft) Draft {
	d.Categories = slices.Clone(d.Categories)
	d.Tags = slices.Clone(d.Tags)
	if d.Categories == nil {
		d.Categories = []string{}
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return d
}

func trimDraft(d Draft) Draft {
	d = cloneDraft(d)
	d.Title = strings.TrimSpace(d.Title)
	d.Content = strings.TrimSpace(d.Content)
	return d
}
