// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"conflict", fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgLoginAlreadyExists), ErrLoginAlreadyExists},
		{"unauthorized", fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidLoginPassword), ErrInvalidCredentials},
		{"bad email", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidLogin), ErrInvalidEmail},
		{"short password", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgPasswordTooShort), ErrPasswordTooShort},
		{"other bad request", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidJSON), ErrInvalidDataProvided},
		{"server error", fmt.Errorf("%w: boom", adapter.ErrInternalServerError), ErrServerUnavailable},
		{"bad gateway", fmt.Errorf("%w: ", adapter.ErrBadGateway), ErrServerUnavailable},
		{"connection refused", fmt.Errorf("auth request: %w", &url.Error{Op: "Post", URL: "http://x", Err: errors.New("refused")}), ErrServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapAdapterError(tt.in), tt.want)
		})
	}
}

func TestMapAdapterError_PassThrough(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))

	other := errors.New("something else")
	assert.Equal(t, other, mapAdapterError(other))
}

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "title is too long", extractBody(fmt.Errorf("%w: title is too long", adapter.ErrBadRequest)))
	assert.Equal(t, "", extractBody(errors.New("plain")))
}
