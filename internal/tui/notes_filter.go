// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/notes"
)

func renderFilterBar(c notes.Criteria, searchView string, searching bool, shown, total int) string {
	search := valueOrDash(c.Search)
	if searching {
		search = searchView
	}

	favorites := "off"
	if c.FavoritesOnly {
		favorites = "on"
	}

	var b strings.Builder
	b.WriteString("Search: ")
	b.WriteString(search)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Category: %s │ Tag: %s │ Favorites only: %s",
		anyIfEmpty(c.Category), anyIfEmpty(c.Tag), favorites))
	if c.IsZero() {
		b.WriteString(fmt.Sprintf(" │ %d notes", total))
	} else {
		b.WriteString(fmt.Sprintf(" │ %d of %d notes", shown, total))
	}
	return b.String()
}

func anyIfEmpty(v string) string {
	if v == "" {
		return "any"
	}
	return v
}
