// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitleOrContent = errors.New("title and content are required")
	ErrTitleTooLong        = errors.New("title is too long")
	ErrContentTooLong      = errors.New("content is too long")
	ErrTooManyCategories   = errors.New("too many categories")
	ErrTooManyTags         = errors.New("too many tags")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
	ErrMissingTimestamp    = errors.New("timestamp is required")

	ErrEmptyLogin       = errors.New("login is required")
	ErrInvalidLogin     = errors.New("login must be an email address")
	ErrPasswordTooShort = errors.New("password is too short")
)
