// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto hashes and verifies account passwords.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing hashes and
// checks candidates against them. The server stores only the hash.
type PasswordHasher interface {
	// Hash returns an encoded Argon2id hash of password with a fresh salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed encoded
	// value is an error; a plain mismatch is (false, nil).
	Verify(password, encoded string) (bool, error)
}
