// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	timeout time.Duration

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST and websocket implementation of
// [ServerAdapter]. adapterCfg.HTTPAddress may be "host:port" or a full URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseURL: baseURL,
		timeout: adapterCfg.RequestTimeout,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: user.Login, Password: user.Password}).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	signed, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("auth parse bearer token: %w", err)
	}

	token, err := utils.ParseUnverifiedToken(signed)
	if err != nil {
		return models.Token{}, fmt.Errorf("auth parse token claims: %w", err)
	}

	h.SetToken(signed)
	return token, nil
}

func (h *httpServerAdapter) GetAppVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, ownerID int64, fields models.NoteFields) (string, error) {
	if err := h.checkOwner(ownerID); err != nil {
		return "", err
	}

	var created models.CreateNoteResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		SetResult(&created).
		Post("/api/notes/")
	if err != nil {
		return "", fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return created.ID, nil
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, id string, update models.NoteUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(update).
		Patch("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("update note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// checkOwner rejects writes on behalf of anyone but the token's user.
func (h *httpServerAdapter) checkOwner(ownerID int64) error {
	token := h.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}
	if userID != ownerID {
		return fmt.Errorf("%w: owner %d does not match signed-in user", ErrForbidden, ownerID)
	}

	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
