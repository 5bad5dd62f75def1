// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	createUser = `INSERT INTO users (login, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, login, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`
)

const (
	saveSession = `INSERT INTO session (id, user_id, login, token, created_at)
    VALUES (1, ?, ?, ?, ?)
    ON CONFLICT (id) DO UPDATE SET
        user_id = excluded.user_id,
        login = excluded.login,
        token = excluded.token,
        created_at = excluded.created_at;`

	loadSession = `SELECT user_id, login, token, created_at FROM session WHERE id = 1;`

	clearSession = `DELETE FROM session;`
)

const notesTable = "notes"

var noteColumns = []string{
	"id", "user_id", "title", "content", "categories", "tags", "is_favorite", "created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildInsertNoteQuery(ctx context.Context, userID int64, noteID string, fields models.NoteFields) (string, []any, error) {
	categories, err := encodeStringList(fields.Categories)
	if err != nil {
		return "", nil, err
	}
	tags, err := encodeStringList(fields.Tags)
	if err != nil {
		return "", nil, err
	}

	return psql.Insert(notesTable).
		Columns(noteColumns...).
		Values(noteID, userID, fields.Title, fields.Content, categories, tags, fields.IsFavorite, fields.CreatedAt, fields.UpdatedAt).
		ToSql()
}

// buildUpdateNoteQuery sets only the non-nil fields of update; updated_at
// is always written.
func buildUpdateNoteQuery(ctx context.Context, userID int64, noteID string, update models.NoteUpdate) (string, []any, error) {
	b := psql.Update(notesTable)

	if update.Title != nil {
		b = b.Set("title", *update.Title)
	}
	if update.Content != nil {
		b = b.Set("content", *update.Content)
	}
	if update.Categories != nil {
		v, err := encodeStringList(*update.Categories)
		if err != nil {
			return "", nil, err
		}
		b = b.Set("categories", v)
	}
	if update.Tags != nil {
		v, err := encodeStringList(*update.Tags)
		if err != nil {
			return "", nil, err
		}
		b = b.Set("tags", v)
	}
	if update.IsFavorite != nil {
		b = b.Set("is_favorite", *update.IsFavorite)
	}

	return b.Set("updated_at", update.UpdatedAt).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

func buildDeleteNoteQuery(ctx context.Context, userID int64, noteID string) (string, []any, error) {
	return psql.Delete(notesTable).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

func buildListNotesQuery(ctx context.Context, userID int64) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC", "id").
		ToSql()
}

// encodeStringList renders a list as a JSON array for a JSONB column.
// A nil list is stored as [] since it was provided explicitly.
func encodeStringList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}

	b, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(b), nil
}

// decodeStringList parses a JSONB column. NULL stays nil so the client can
// tell a missing field from an empty one.
func decodeStringList(raw []byte) ([]string, error) {
	if raw == nil {
		return nil, nil
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingColumn, err)
	}
	return values, nil
}
