// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the plain-text error bodies the server writes with
// http.Error. The client matches on them to turn a status code back into a
// precise error, so both sides must share these exact strings.
package app

const (
	MsgInvalidJSON         = "invalid JSON was passed"
	MsgInvalidDataProvided = "invalid data provided"
	MsgInternalServerError = "internal server error"

	MsgInvalidLoginPassword    = "invalid login/password"
	MsgInvalidLogin            = "login must be an email address"
	MsgPasswordTooShort        = "password is too short"
	MsgLoginAlreadyExists      = "login already exists"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgEmptyTitleOrContent = "title and content are required"
	MsgTitleTooLong        = "title is too long"
	MsgContentTooLong      = "content is too long"
	MsgTooManyCategories   = "too many categories"
	MsgTooManyTags         = "too many tags"
	MsgNoFieldsToUpdate    = "nothing to update"

	MsgNoteNotFound      = "note not found"
	MsgNoteAlreadyExists = "note already exists"
)
