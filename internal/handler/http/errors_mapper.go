// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoteAlreadyExists:  http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrNoteNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
	store.ErrEncodingColumn:   http.StatusInternalServerError,
	store.ErrDecodingColumn:   http.StatusInternalServerError,
}

// errorMessages is checked in order, so more specific errors come first.
var errorMessages = []struct {
	err error
	msg string
}{
	{validators.ErrEmptyLogin, app.MsgInvalidLogin},
	{validators.ErrInvalidLogin, app.MsgInvalidLogin},
	{validators.ErrPasswordTooShort, app.MsgPasswordTooShort},
	{validators.ErrEmptyTitleOrContent, app.MsgEmptyTitleOrContent},
	{validators.ErrTitleTooLong, app.MsgTitleTooLong},
	{validators.ErrContentTooLong, app.MsgContentTooLong},
	{validators.ErrTooManyCategories, app.MsgTooManyCategories},
	{validators.ErrTooManyTags, app.MsgTooManyTags},
	{validators.ErrNoFieldsToUpdate, app.MsgNoFieldsToUpdate},
	{service.ErrInvalidDataProvided, app.MsgInvalidDataProvided},
	{service.ErrWrongPassword, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, app.MsgTokenIsExpiredOrInvalid},
	{store.ErrLoginAlreadyExists, app.MsgLoginAlreadyExists},
	{store.ErrNoteAlreadyExists, app.MsgNoteAlreadyExists},
	{store.ErrNoteNotFound, app.MsgNoteNotFound},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and replies with its status and message. Internal
// details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	msg := app.MsgInternalServerError
	if status < http.StatusInternalServerError {
		msg = messageFromError(err)
	}
	http.Error(w, msg, status)
}
