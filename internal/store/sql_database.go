// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds persistence for the notes app: PostgreSQL user and
// note repositories plus the change listener on the server, and the SQLite
// session repository on the client.
package store

import (
	"database/sql"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// ErrorClassificator decides whether a database error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a *sql.DB with the logger and error classifier of its backend.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// IsRetryable reports whether err is a transient failure of this database.
func (db *DB) IsRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
