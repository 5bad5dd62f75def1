// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// detailHeader renders the metadata block above the note content.
func detailHeader(n models.Note) string {
	var b strings.Builder

	if n.IsFavorite {
		b.WriteString(favoriteStyle.Render("★ favorite"))
		b.WriteString("\n")
	}
	b.WriteString("Categories: ")
	b.WriteString(valueOrDash(strings.Join(n.Categories, ", ")))
	b.WriteString("\nTags:       ")
	b.WriteString(valueOrDash(strings.Join(n.Tags, ", ")))
	b.WriteString("\nCreated:    ")
	b.WriteString(formatUpdated(n.CreatedAt))
	b.WriteString("\nUpdated:    ")
	b.WriteString(formatUpdated(n.UpdatedAt))

	return b.String()
}

func detailBody(n models.Note, width int) string {
	return renderMarkdown(n.Content, width)
}
