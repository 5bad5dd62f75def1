// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/jackc/pgx/v5"
)

// NotesChangedChannel is the NOTIFY channel fed by the notes table trigger.
// The payload is the owner's user id.
const NotesChangedChannel = "notes_changed"

const defaultListenerRetryDelay = 5 * time.Second

// ChangePublisher receives the id of every user whose notes changed.
type ChangePublisher interface {
	Publish(userID int64)
}

// PostgresNoteListener relays notes_changed notifications into a
// ChangePublisher, so writes made outside this process (another server
// replica, manual SQL) still reach live subscribers.
type PostgresNoteListener struct {
	dsn        string
	publisher  ChangePublisher
	logger     *logger.Logger
	retryDelay time.Duration
}

func NewPostgresNoteListener(dsn string, publisher ChangePublisher, logger *logger.Logger) *PostgresNoteListener {
	return &PostgresNoteListener{
		dsn:        dsn,
		publisher:  publisher,
		logger:     logger,
		retryDelay: defaultListenerRetryDelay,
	}
}

// Listen blocks until ctx is cancelled, reconnecting after connection loss.
func (l *PostgresNoteListener) Listen(ctx context.Context) error {
	for {
		err := l.listenOnce(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		l.logger.Err(err).Str("func", "PostgresNoteListener.Listen").Dur("retry_in", l.retryDelay).Msg("notes listener dropped")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.retryDelay):
		}
	}
}

func (l *PostgresNoteListener) listenOnce(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("error connecting listener: %w", err)
	}
	defer conn.Close(context.WithoutCancel(ctx))

	if _, err = conn.Exec(ctx, "LISTEN "+NotesChangedChannel); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	l.logger.Info().Str("func", "PostgresNoteListener.listenOnce").Msg("listening for note changes")

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		userID, err := parseNotesChangedPayload(n.Payload)
		if err != nil {
			l.logger.Warn().Err(err).Str("payload", n.Payload).Msg("ignoring malformed notification")
			continue
		}
		l.publisher.Publish(userID)
	}
}

var errBadPayload = errors.New("bad notes_changed payload")

func parseNotesChangedPayload(payload string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(payload), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errBadPayload, payload)
	}
	return id, nil
}
