// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

// ── previewText ─────────────────────────────────────────────────────────────

func TestPreviewText_ShortContentUnchanged(t *testing.T) {
	assert.Equal(t, "buy milk", previewText("buy milk"))
}

func TestPreviewText_FlattensWhitespace(t *testing.T) {
	assert.Equal(t, "line one line two", previewText("line one\n\n  line two\t"))
}

func TestPreviewText_TruncatesAtHundredCharacters(t *testing.T) {
	content := strings.Repeat("я", 150)

	got := previewText(content)

	assert.True(t, strings.HasSuffix(got, ellipsis))
	assert.Equal(t, previewLength+1, utf8.RuneCountInString(got))
}

func TestPreviewText_ExactlyHundredCharacters(t *testing.T) {
	content := strings.Repeat("a", previewLength)

	assert.Equal(t, content, previewText(content))
}

// ── fitText ─────────────────────────────────────────────────────────────────

func TestFitText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "hello", width: 10, want: "hello"},
		{name: "cut", in: "hello world", width: 6, want: "hello…"},
		{name: "no limit", in: "hello", width: 0, want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.width))
		})
	}
}

func TestFitText_WideRunesRespectCellWidth(t *testing.T) {
	got := fitText("日本語のノート", 7)

	assert.LessOrEqual(t, runewidth.StringWidth(got), 7)
	assert.True(t, strings.HasSuffix(got, ellipsis))
}

// ── renderPage ──────────────────────────────────────────────────────────────

func TestRenderPage_ContainsTitleDataAndHotKeys(t *testing.T) {
	out := renderPage("NOTES", "first\nsecond", "n: new")

	assert.Contains(t, out, "NOTES")
	assert.Contains(t, out, "  first\n")
	assert.Contains(t, out, "  second\n")
	assert.Contains(t, out, "n: new")
	assert.Contains(t, out, "ctrl+c: quit")
}

func TestRenderPage_EmptyDataShowsDash(t *testing.T) {
	out := renderPage("NOTES", "  ", "")

	assert.Contains(t, out, "  -\n")
}

// ── small helpers ───────────────────────────────────────────────────────────

func TestFormatUpdated_Zero(t *testing.T) {
	assert.Equal(t, "-", formatUpdated(time.Time{}))
}

func TestFormatUpdated_Local(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 30, 0, 0, time.Local)

	assert.Equal(t, "2026-03-01 12:30", formatUpdated(ts))
}

func TestJoinChips(t *testing.T) {
	assert.Equal(t, "", joinChips("#", nil))
	assert.Equal(t, "#a #b", joinChips("#", []string{"a", "b"}))
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(" "))
	assert.Equal(t, "x", valueOrDash("x"))
}
