// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/jackc/pgerrcode"
)

// noteRepository is the PostgreSQL implementation of [NoteRepository].
// Categories and tags live in JSONB columns; categories, tags and
// is_favorite may be NULL for notes written before those fields existed.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *noteRepository) CreateNote(ctx context.Context, userID int64, noteID string, fields models.NoteFields) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(ctx, userID, noteID, fields)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Int64("user_id", userID).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("user_id", userID).
			Str("note_id", noteID).
			Msg("failed to insert note")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrNoteAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *noteRepository) UpdateNote(ctx context.Context, userID int64, noteID string, update models.NoteUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(ctx, userID, noteID, update)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Int64("user_id", userID).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Int64("user_id", userID).
			Str("note_id", noteID).
			Msg("failed to update note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return requireAffected(res)
}

func (r *noteRepository) DeleteNote(ctx context.Context, userID int64, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Int64("user_id", userID).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("user_id", userID).
			Str("note_id", noteID).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return requireAffected(res)
}

func (r *noteRepository) ListNotes(ctx context.Context, userID int64) ([]models.NoteRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Int64("user_id", userID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Int64("user_id", userID).Msg("failed to select notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.NoteRecord, 0, 32)
	for rows.Next() {
		note, scanErr := scanNoteRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "noteRepository.ListNotes").Int64("user_id", userID).Msg("failed to scan note row")
			return nil, scanErr
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func scanNoteRecord(rows *sql.Rows) (models.NoteRecord, error) {
	var (
		note       models.NoteRecord
		categories []byte
		tags       []byte
		favorite   sql.NullBool
	)

	err := rows.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&categories,
		&tags,
		&favorite,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return models.NoteRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if note.Categories, err = decodeStringList(categories); err != nil {
		return models.NoteRecord{}, err
	}
	if note.Tags, err = decodeStringList(tags); err != nil {
		return models.NoteRecord{}, err
	}
	if favorite.Valid {
		note.IsFavorite = &favorite.Bool
	}

	return note, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n == 0 {
		return ErrNoteNotFound
	}
	return nil
}
