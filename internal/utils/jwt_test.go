// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "go-notes-keeper"
	testSignKey = "secret-key"
)

// ── GenerateJWTToken ──────────────────────────────────────────────────────────

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 123, time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(123), token.UserID)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Hour, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

// ── ValidateAndParseJWTToken ──────────────────────────────────────────────────

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	gen, err := GenerateJWTToken(testIssuer, 456, 5*time.Minute, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(gen.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(456), parsed.UserID)
	assert.Equal(t, gen.SignedString, parsed.String())
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, 1, time.Hour, testSignKey)
	require.NoError(t, err)
	expired, err := GenerateJWTToken(testIssuer, 1, time.Nanosecond, testSignKey)
	require.NoError(t, err)
	time.Sleep(time.Second)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: testIssuer},
		{name: "wrong issuer", token: valid.SignedString, key: testSignKey, issuer: "other"},
		{name: "expired", token: expired.SignedString, key: testSignKey, issuer: testIssuer},
		{name: "garbage", token: "not.a.token", key: testSignKey, issuer: testIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

// ── ParseBearerToken ──────────────────────────────────────────────────────────

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "  bearer   abc  ", want: "abc"},
		{header: "Bearer", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── ParseUserIDFromJWT ────────────────────────────────────────────────────────

func TestParseUserIDFromJWT(t *testing.T) {
	gen, err := GenerateJWTToken(testIssuer, 789, time.Hour, testSignKey)
	require.NoError(t, err)

	id, err := ParseUserIDFromJWT(gen.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(789), id)

	_, err = ParseUserIDFromJWT("garbage")
	assert.Error(t, err)
}

// ── ParseUnverifiedToken ──────────────────────────────────────────────────────

func TestParseUnverifiedToken(t *testing.T) {
	gen, err := GenerateJWTToken(testIssuer, 12, time.Hour, testSignKey)
	require.NoError(t, err)

	token, err := ParseUnverifiedToken(gen.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(12), token.UserID)
	assert.Equal(t, gen.SignedString, token.SignedString)
	require.NotNil(t, token.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt.Time, time.Minute)

	_, err = ParseUnverifiedToken("not-a-token")
	assert.Error(t, err)
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
