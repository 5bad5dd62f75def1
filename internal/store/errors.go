// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	ErrLoginAlreadyExists = errors.New("login already exists")

	ErrUserNotFound = errors.New("user was not found")

	ErrNoteNotFound = errors.New("note was not found")

	ErrNoteAlreadyExists = errors.New("note already exists")

	ErrLocalSessionNotFound = errors.New("local session not found")
)

var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrScanningRow = errors.New("failed to scan note row")

	ErrScanningRows = errors.New("failed to scan note rows")

	ErrEncodingColumn = errors.New("failed to encode column value")

	ErrDecodingColumn = errors.New("failed to decode column value")
)
