// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds and applies the goose schema migrations of the
// server (PostgreSQL) and the client session store (SQLite).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// ErrNilDB is returned when a migration is requested without a connection.
var ErrNilDB = errors.New("migration error: db is nil")

//go:embed postgres/*.sql
var postgresMigrations embed.FS

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

// MigratePostgres brings the server schema up to date.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, postgresMigrations, "postgres", "pgx")
}

// MigrateSQLite brings the client session schema up to date.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, sqliteMigrations, "sqlite", "sqlite3")
}

func migrate(db *sql.DB, fsys fs.FS, dir, dialect string) error {
	if db == nil {
		return ErrNilDB
	}

	goose.SetBaseFS(fsys)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
