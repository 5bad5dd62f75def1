// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildUpdateNoteQuery(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		update     models.NoteUpdate
		wantSets   []string
		wantNoSets []string
		wantArgs   int
	}{
		{
			name:       "favorite only",
			update:     models.NoteUpdate{IsFavorite: ptr(false), UpdatedAt: ts},
			wantSets:   []string{"is_favorite = $1", "updated_at = $2"},
			wantNoSets: []string{"title", "content", "categories", "tags ="},
			wantArgs:   4,
		},
		{
			name: "all fields",
			update: models.NoteUpdate{
				Title:      ptr("t"),
				Content:    ptr("c"),
				Categories: ptr([]string{"a"}),
				Tags:       ptr([]string{}),
				IsFavorite: ptr(true),
				UpdatedAt:  ts,
			},
			wantSets: []string{"title = $1", "content = $2", "categories = $3", "tags = $4", "is_favorite = $5", "updated_at = $6"},
			wantArgs: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateNoteQuery(ctx, 42, "n1", tt.update)
			require.NoError(t, err)

			for _, s := range tt.wantSets {
				assert.Contains(t, query, s)
			}
			setPart := query[:strings.Index(query, "WHERE")]
			for _, s := range tt.wantNoSets {
				assert.NotContains(t, setPart, s)
			}
			require.Len(t, args, tt.wantArgs)
			assert.Equal(t, "n1", args[len(args)-2])
			assert.Equal(t, int64(42), args[len(args)-1])
		})
	}
}

func Test_buildUpdateNoteQuery_EncodesLists(t *testing.T) {
	_, args, err := buildUpdateNoteQuery(context.Background(), 1, "n1", models.NoteUpdate{
		Categories: ptr([]string{"a", "b"}),
		Tags:       ptr([]string(nil)),
		UpdatedAt:  ts,
	})
	require.NoError(t, err)

	assert.Equal(t, `["a","b"]`, args[0])
	assert.Equal(t, `[]`, args[1])
}

func Test_buildListNotesQuery(t *testing.T) {
	query, args, err := buildListNotesQuery(context.Background(), 42)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from notes")
	assert.Contains(t, q, "where user_id = $1")
	assert.Contains(t, q, "order by updated_at desc")
	assert.Equal(t, []any{int64(42)}, args)
}

func Test_decodeStringList(t *testing.T) {
	v, err := decodeStringList(nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = decodeStringList([]byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, []string{}, v)

	v, err = decodeStringList([]byte(`["x","x"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x"}, v)
}
