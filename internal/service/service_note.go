// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// ChangeBroker fans change signals out to live subscribers.
type ChangeBroker interface {
	Subscribe(userID int64) (<-chan struct{}, func())
	Publish(userID int64)
}

// IDGenerator hands out note ids.
type IDGenerator interface {
	Generate() string
}

type noteService struct {
	repo      store.NoteRepository
	validator validators.Validator
	ids       IDGenerator
	broker    ChangeBroker
	now       func() time.Time

	logger *logger.Logger
}

func NewNoteService(repo store.NoteRepository, validator validators.Validator, ids IDGenerator, broker ChangeBroker, logger *logger.Logger) NoteService {
	return &noteService{
		repo:      repo,
		validator: validator,
		ids:       ids,
		broker:    broker,
		now:       time.Now,
		logger:    logger,
	}
}

// CreateNote trims title and content, stamps missing timestamps with the
// server clock and stores the note under a fresh UUIDv7.
func (s *noteService) CreateNote(ctx context.Context, userID int64, fields models.NoteFields) (string, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return "", ErrInvalidDataProvided
	}

	fields.Title = strings.TrimSpace(fields.Title)
	fields.Content = strings.TrimSpace(fields.Content)
	if err := s.validator.Validate(ctx, fields); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("invalid note")
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := s.now().UTC()
	if fields.CreatedAt.IsZero() {
		fields.CreatedAt = now
	}
	if fields.UpdatedAt.IsZero() {
		fields.UpdatedAt = fields.CreatedAt
	}

	id := s.ids.Generate()
	if err := s.repo.CreateNote(ctx, userID, id, fields); err != nil {
		return "", fmt.Errorf("note creation failed: %w", err)
	}

	s.broker.Publish(userID)
	log.Debug().Int64("user_id", userID).Str("note_id", id).Msg("note created")

	return id, nil
}

func (s *noteService) UpdateNote(ctx context.Context, userID int64, noteID string, update models.NoteUpdate) error {
	log := logger.FromContext(ctx)

	if userID <= 0 || strings.TrimSpace(noteID) == "" {
		return ErrInvalidDataProvided
	}

	if update.Title != nil {
		t := strings.TrimSpace(*update.Title)
		update.Title = &t
	}
	if update.Content != nil {
		c := strings.TrimSpace(*update.Content)
		update.Content = &c
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		log.Err(err).Int64("user_id", userID).Str("note_id", noteID).Msg("invalid note update")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if update.UpdatedAt.IsZero() {
		update.UpdatedAt = s.now().UTC()
	}

	if err := s.repo.UpdateNote(ctx, userID, noteID, update); err != nil {
		return fmt.Errorf("note update failed: %w", err)
	}

	s.broker.Publish(userID)
	return nil
}

func (s *noteService) DeleteNote(ctx context.Context, userID int64, noteID string) error {
	if userID <= 0 || strings.TrimSpace(noteID) == "" {
		return ErrInvalidDataProvided
	}

	if err := s.repo.DeleteNote(ctx, userID, noteID); err != nil {
		return fmt.Errorf("note deletion failed: %w", err)
	}

	s.broker.Publish(userID)
	return nil
}

func (s *noteService) ListNotes(ctx context.Context, userID int64) ([]models.NoteRecord, error) {
	if userID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	notes, err := s.repo.ListNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}
	return notes, nil
}

func (s *noteService) Subscribe(userID int64) (<-chan struct{}, func()) {
	return s.broker.Subscribe(userID)
}
