// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams        = errors.New("invalid params for generating JWT token")
	ErrInvalidAuthorizationValue = errors.New("invalid authorization header")
	ErrEmptySubject              = errors.New("empty subject in token")
)

// GenerateJWTToken signs an HS256 token for userID valid for tokenDuration.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: signed, UserID: userID}, nil
}

// ValidateAndParseJWTToken checks the signature, expiry and issuer of
// tokenString and returns it with UserID filled from the subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error validating and parsing token: %w", err)
	}

	userID, err := subjectToUserID(token.Claims)
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>" value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationValue
	}
	return parts[1], nil
}

// ParseUserIDFromJWT reads the subject without verifying the signature.
// The client uses it to recover the user id of a stored session; the
// server still verifies the token on every request.
func ParseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	return subjectToUserID(token.Claims)
}

// ParseUnverifiedToken decodes the claims of signed without checking the
// signature, filling UserID from the subject and keeping ExpiresAt.
func ParseUnverifiedToken(signed string) (models.Token, error) {
	token := models.Token{SignedString: signed}

	parsed, _, err := jwt.NewParser().ParseUnverified(signed, &token)
	if err != nil {
		return models.Token{}, fmt.Errorf("error parsing token: %w", err)
	}
	token.Token = parsed

	userID, err := subjectToUserID(&token.RegisteredClaims)
	if err != nil {
		return models.Token{}, err
	}
	token.UserID = userID

	return token, nil
}

func subjectToUserID(claims jwt.Claims) (int64, error) {
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error getting subject from token: %w", err)
	}
	if sub == "" {
		return 0, ErrEmptySubject
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting subject to user id: %w", err)
	}
	return userID, nil
}
