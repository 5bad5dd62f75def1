// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// client side
var (
	ErrFillAllFields       = errors.New("please fill in all fields")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrInvalidEmail        = errors.New("please enter a valid email")
	ErrLoginAlreadyExists  = errors.New("an account with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrServerUnavailable   = errors.New("server is unavailable")
)
