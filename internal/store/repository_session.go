// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// sessionRepository keeps the client session in a one-row SQLite table.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := r.DB.ExecContext(ctx, saveSession, session.UserID, session.Login, session.Token, session.CreatedAt)
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.SaveSession").Int64("user_id", session.UserID).Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var s models.Session
	err := r.DB.QueryRowContext(ctx, loadSession).Scan(&s.UserID, &s.Login, &s.Token, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.LoadSession").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return s, nil
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, clearSession); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.ClearSession").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
