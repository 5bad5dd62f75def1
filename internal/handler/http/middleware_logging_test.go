// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, body: `{"id":"n1"}`, wantLevel: "info"},
		{name: "client error", status: http.StatusBadRequest, body: "bad", wantLevel: "info"},
		{name: "server error", status: http.StatusInternalServerError, body: "internal", wantLevel: "error"},
		{name: "no content", status: http.StatusNoContent, wantLevel: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			var buf bytes.Buffer
			req := httptest.NewRequest(http.MethodPatch, "/api/notes/n1?x=1", nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, req)

			entry := logEntry(t, &buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "/api/notes/n1?x=1", entry["uri"])
			assert.Equal(t, http.MethodPatch, entry["method"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, len(tt.body), entry["size"])
			assert.Equal(t, false, entry["hijacked"])
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	h, _ := newTestHandler(t)

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.EqualValues(t, http.StatusOK, logEntry(t, &buf)["status"])
}
