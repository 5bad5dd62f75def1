// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// MinPasswordLength is the shortest password accepted on registration.
const MinPasswordLength = 6

const (
	FieldLogin    = "login"
	FieldPassword = "password"
)

type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var user models.User
	switch value := obj.(type) {
	case models.User:
		user = value
	case *models.User:
		user = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			login := strings.TrimSpace(user.Login)
			if login == "" {
				return ErrEmptyLogin
			}
			if _, err := mail.ParseAddress(login); err != nil {
				return ErrInvalidLogin
			}
		case FieldPassword:
			if len(user.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
