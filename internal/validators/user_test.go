// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestUserValidator(t *testing.T) {
	tests := []struct {
		name    string
		user    any
		fields  []string
		wantErr error
	}{
		{name: "valid", user: models.User{Login: "ann@example.com", Password: "secret"}},
		{name: "pointer", user: &models.User{Login: "ann@example.com", Password: "secret"}},
		{name: "empty login", user: models.User{Login: "  ", Password: "secret"}, wantErr: ErrEmptyLogin},
		{name: "not an email", user: models.User{Login: "ann", Password: "secret"}, wantErr: ErrInvalidLogin},
		{name: "short password", user: models.User{Login: "ann@example.com", Password: "12345"}, wantErr: ErrPasswordTooShort},
		{name: "login only", user: models.User{Login: "ann@example.com"}, fields: []string{FieldLogin}},
		{name: "unknown field", user: models.User{}, fields: []string{"age"}, wantErr: ErrUnknownField},
		{name: "unsupported", user: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUserValidator().Validate(context.Background(), tt.user, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
