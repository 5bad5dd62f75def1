// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient("http://localhost:8080", 3*time.Second)
	require.NotNil(t, c)
	require.NotNil(t, c.Client)

	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, 3*time.Second, c.GetClient().Timeout)
}

func TestNewHTTPClient_UsesBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, 0).R().Get("/api/version/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}
