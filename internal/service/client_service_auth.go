// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	sessions  store.SessionRepository
	validator validators.Validator
	now       func() time.Time

	mu        sync.RWMutex
	session   models.Session
	signedIn  bool
	listeners []func(models.Session)

	logger *logger.Logger
}

func NewClientAuthService(storages *store.ClientStorages, adapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   adapter,
		sessions:  storages.SessionRepository,
		validator: validators.NewUserValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *clientAuthService) Register(ctx context.Context, login, password, confirm string) error {
	login = strings.TrimSpace(login)
	if login == "" || password == "" || confirm == "" {
		return ErrFillAllFields
	}
	if password != confirm {
		return ErrPasswordsDoNotMatch
	}

	err := s.validator.Validate(ctx, models.User{Login: login, Password: password})
	switch {
	case errors.Is(err, validators.ErrInvalidLogin):
		return ErrInvalidEmail
	case errors.Is(err, validators.ErrPasswordTooShort):
		return ErrPasswordTooShort
	case err != nil:
		return err
	}

	token, err := s.adapter.Register(ctx, models.User{Login: login, Password: password})
	if err != nil {
		s.logger.Err(err).Str("login", login).Msg("registration failed")
		return mapAdapterError(err)
	}

	s.signIn(ctx, login, token)
	return nil
}

func (s *clientAuthService) Login(ctx context.Context, login, password string) error {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return ErrFillAllFields
	}

	token, err := s.adapter.Login(ctx, models.User{Login: login, Password: password})
	if err != nil {
		s.logger.Err(err).Str("login", login).Msg("sign-in failed")
		return mapAdapterError(err)
	}

	s.signIn(ctx, login, token)
	return nil
}

// Logout forgets the session locally. The server keeps no session state,
// so there is nothing to revoke remotely.
func (s *clientAuthService) Logout(ctx context.Context) error {
	s.adapter.SetToken("")

	s.mu.Lock()
	s.session = models.Session{}
	s.signedIn = false
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(models.Session{})
	}

	if err := s.sessions.ClearSession(ctx); err != nil {
		s.logger.Err(err).Msg("clearing saved session failed")
		return fmt.Errorf("error clearing saved session: %w", err)
	}
	return nil
}

func (s *clientAuthService) RestoreSession(ctx context.Context) (bool, error) {
	session, err := s.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error loading saved session: %w", err)
	}

	token, err := utils.ParseUnverifiedToken(session.Token)
	if err != nil || token.ExpiresAt == nil || !token.ExpiresAt.After(s.now()) || token.UserID != session.UserID {
		s.logger.Info().Int64("user_id", session.UserID).Msg("saved session expired")
		if err = s.sessions.ClearSession(ctx); err != nil {
			s.logger.Err(err).Msg("clearing expired session failed")
		}
		return false, nil
	}

	s.adapter.SetToken(session.Token)
	s.setSession(session)
	s.logger.Info().Int64("user_id", session.UserID).Msg("session restored")

	return true, nil
}

func (s *clientAuthService) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.signedIn
}

func (s *clientAuthService) OnChange(fn func(models.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *clientAuthService) signIn(ctx context.Context, login string, token models.Token) {
	session := models.Session{
		UserID:    token.UserID,
		Login:     login,
		Token:     token.SignedString,
		CreatedAt: s.now().UTC(),
	}

	// a session that can't be saved still works until the client exits
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		s.logger.Err(err).Int64("user_id", session.UserID).Msg("saving session failed")
	}

	s.setSession(session)
	s.logger.Info().Int64("user_id", session.UserID).Msg("signed in")
}

func (s *clientAuthService) setSession(session models.Session) {
	s.mu.Lock()
	s.session = session
	s.signedIn = true
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(session)
	}
}
