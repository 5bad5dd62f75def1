// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestClientAuth builds a clientAuthService over mocks.
func newTestClientAuth(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	storages := &store.ClientStorages{SessionRepository: mockSessions}
	svc := NewClientAuthService(storages, mockAdapter, logger.Nop()).(*clientAuthService)
	svc.now = func() time.Time { return fixedNow }

	return svc, mockAdapter, mockSessions
}

func testToken(t *testing.T, userID int64, ttl time.Duration) models.Token {
	t.Helper()
	token, err := utils.GenerateJWTToken("notes-test", userID, ttl, "key")
	require.NoError(t, err)
	return token
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestClientAuth(t, ctrl)
	ctx := context.Background()

	token := testToken(t, 8, time.Hour)

	var notified []models.Session
	svc.OnChange(func(s models.Session) { notified = append(notified, s) })

	gomock.InOrder(
		mockAdapter.EXPECT().Register(ctx, models.User{Login: "alice@example.com", Password: "secret1"}).Return(token, nil),
		mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				assert.Equal(t, int64(8), s.UserID)
				assert.Equal(t, "alice@example.com", s.Login)
				assert.Equal(t, token.SignedString, s.Token)
				return nil
			},
		),
	)

	err := svc.Register(ctx, " alice@example.com ", "secret1", "secret1")
	require.NoError(t, err)

	session, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, int64(8), session.UserID)
	require.Len(t, notified, 1)
	assert.Equal(t, "alice@example.com", notified[0].Login)
}

func TestClientAuthService_Register_FormChecks(t *testing.T) {
	tests := []struct {
		name                     string
		login, password, confirm string
		want                     error
	}{
		{"missing confirm", "a@example.com", "secret1", "", ErrFillAllFields},
		{"missing login", "  ", "secret1", "secret1", ErrFillAllFields},
		{"bad email", "alice", "secret1", "secret1", ErrInvalidEmail},
		{"short password", "a@example.com", "12345", "12345", ErrPasswordTooShort},
		{"mismatch", "a@example.com", "secret1", "secret2", ErrPasswordsDoNotMatch},
		{"short mismatched pair", "a@example.com", "123", "456", ErrPasswordsDoNotMatch},
		{"invalid email mismatched pair", "not-an-email", "secret1", "secret2", ErrPasswordsDoNotMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestClientAuth(t, ctrl)

			err := svc.Register(context.Background(), tt.login, tt.password, tt.confirm)

			assert.ErrorIs(t, err, tt.want)
			_, ok := svc.Current()
			assert.False(t, ok)
		})
	}
}

func TestClientAuthService_Register_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestClientAuth(t, ctrl)

	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.Token{}, fmt.Errorf("%w: login already exists", adapter.ErrConflict))

	err := svc.Register(context.Background(), "alice@example.com", "secret1", "secret1")

	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestClientAuthService_Register_SaveFailureStillSignsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestClientAuth(t, ctrl)

	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(testToken(t, 8, time.Hour), nil)
	mockSessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	require.NoError(t, svc.Register(context.Background(), "alice@example.com", "secret1", "secret1"))

	_, ok := svc.Current()
	assert.True(t, ok)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestClientAuth(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), models.User{Login: "bob@example.com", Password: "pw"}).Return(testToken(t, 4, time.Hour), nil)
	mockSessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, svc.Login(context.Background(), "bob@example.com", "pw"))

	session, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, int64(4), session.UserID)
	assert.Equal(t, fixedNow, session.CreatedAt)
}

func TestClientAuthService_Login_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestClientAuth(t, ctrl)

	assert.ErrorIs(t, svc.Login(context.Background(), "", "pw"), ErrFillAllFields)
	assert.ErrorIs(t, svc.Login(context.Background(), "bob@example.com", ""), ErrFillAllFields)
}

func TestClientAuthService_Login_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestClientAuth(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.Token{}, fmt.Errorf("%w: invalid login/password", adapter.ErrUnauthorized))

	err := svc.Login(context.Background(), "bob@example.com", "pw")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestClientAuth(t, ctrl)
	svc.setSession(models.Session{UserID: 4, Login: "bob@example.com"})

	var notified []models.Session
	svc.OnChange(func(s models.Session) { notified = append(notified, s) })

	mockAdapter.EXPECT().SetToken("")
	mockSessions.EXPECT().ClearSession(gomock.Any()).Return(nil)

	require.NoError(t, svc.Logout(context.Background()))

	_, ok := svc.Current()
	assert.False(t, ok)
	require.Len(t, notified, 1)
	assert.Equal(t, models.Session{}, notified[0])
}

// ── RestoreSession ───────────────────────────────────────────────────────────

func TestClientAuthService_RestoreSession_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestClientAuth(t, ctrl)
	svc.now = time.Now

	token := testToken(t, 4, time.Hour)
	saved := models.Session{UserID: 4, Login: "bob@example.com", Token: token.SignedString}

	mockSessions.EXPECT().LoadSession(gomock.Any()).Return(saved, nil)
	mockAdapter.EXPECT().SetToken(token.SignedString)

	restored, err := svc.RestoreSession(context.Background())

	require.NoError(t, err)
	assert.True(t, restored)
	session, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, saved, session)
}

func TestClientAuthService_RestoreSession_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSessions := newTestClientAuth(t, ctrl)
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	token := testToken(t, 4, time.Hour)
	mockSessions.EXPECT().LoadSession(gomock.Any()).Return(models.Session{UserID: 4, Token: token.SignedString}, nil)
	mockSessions.EXPECT().ClearSession(gomock.Any()).Return(nil)

	restored, err := svc.RestoreSession(context.Background())

	require.NoError(t, err)
	assert.False(t, restored)
	_, ok := svc.Current()
	assert.False(t, ok)
}

func TestClientAuthService_RestoreSession_None(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSessions := newTestClientAuth(t, ctrl)

	mockSessions.EXPECT().LoadSession(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound)

	restored, err := svc.RestoreSession(context.Background())

	require.NoError(t, err)
	assert.False(t, restored)
}

func TestClientAuthService_RestoreSession_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockSessions := newTestClientAuth(t, ctrl)

	mockSessions.EXPECT().LoadSession(gomock.Any()).Return(models.Session{}, store.ErrScanningRow)

	_, err := svc.RestoreSession(context.Background())

	assert.ErrorIs(t, err, store.ErrScanningRow)
}
