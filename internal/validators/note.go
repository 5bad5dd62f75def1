// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Practical limits on a note. Lengths count characters, not bytes.
const (
	MaxTitleLength   = 100
	MaxContentLength = 5000
	MaxCategories    = 15
	MaxTags          = 15
)

const (
	FieldTitle      = "title"
	FieldContent    = "content"
	FieldCategories = "categories"
	FieldTags       = "tags"
	FieldUpdatedAt  = "updated_at"
	FieldChanges    = "changes"
)

type NoteValidator struct{}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteFields:
		return v.validateFields(value, fields...)
	case *models.NoteFields:
		return v.validateFields(*value, fields...)

	case models.NoteUpdate:
		return v.validateUpdate(value, fields...)
	case *models.NoteUpdate:
		return v.validateUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateFields(n models.NoteFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldCategories, FieldTags}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTitle:
			err = checkTitle(n.Title)
		case FieldContent:
			err = checkContent(n.Content)
		case FieldCategories:
			err = checkCount(n.Categories, MaxCategories, ErrTooManyCategories)
		case FieldTags:
			err = checkCount(n.Tags, MaxTags, ErrTooManyTags)
		case FieldUpdatedAt:
			if n.CreatedAt.IsZero() || n.UpdatedAt.IsZero() {
				err = ErrMissingTimestamp
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateUpdate checks only the fields the update actually sets.
func (v *NoteValidator) validateUpdate(u models.NoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChanges, FieldTitle, FieldContent, FieldCategories, FieldTags}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldChanges:
			if !u.HasChanges() {
				err = ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if u.Title != nil {
				err = checkTitle(*u.Title)
			}
		case FieldContent:
			if u.Content != nil {
				err = checkContent(*u.Content)
			}
		case FieldCategories:
			if u.Categories != nil {
				err = checkCount(*u.Categories, MaxCategories, ErrTooManyCategories)
			}
		case FieldTags:
			if u.Tags != nil {
				err = checkCount(*u.Tags, MaxTags, ErrTooManyTags)
			}
		case FieldUpdatedAt:
			if u.UpdatedAt.IsZero() {
				err = ErrMissingTimestamp
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func checkTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitleOrContent
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func checkContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyTitleOrContent
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}

func checkCount(values []string, limit int, tooMany error) error {
	if len(values) > limit {
		return tooMany
	}
	return nil
}
