// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/app"
)

// mapAdapterError turns transport errors into messages fit for the auth
// screens.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	body := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrConflict):
		return ErrLoginAlreadyExists
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrInvalidCredentials
	case errors.Is(err, adapter.ErrBadRequest):
		switch body {
		case app.MsgInvalidLogin:
			return ErrInvalidEmail
		case app.MsgPasswordTooShort:
			return ErrPasswordTooShort
		case app.MsgInvalidLoginPassword:
			return ErrInvalidCredentials
		default:
			return fmt.Errorf("%w: %s", ErrInvalidDataProvided, body)
		}
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// extractBody returns the server message following the sentinel prefix.
func extractBody(err error) string {
	msg := err.Error()
	idx := strings.Index(msg, ": ")
	if idx == -1 {
		return ""
	}
	return strings.TrimSpace(msg[idx+2:])
}
