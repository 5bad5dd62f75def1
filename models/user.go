// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id,omitempty"`

	// Login is the unique user login, an email address.
	Login string `json:"login"`

	// Password is the plain password sent by the client on sign-in and
	// registration. It is never stored.
	Password string `json:"password,omitempty"`

	// PasswordHash is the argon2id hash kept by the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
