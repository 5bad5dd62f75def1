// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

type menuAction int

const (
	actionEdit menuAction = iota
	actionToggleFavorite
	actionCopy
	actionDelete
)

var menuActions = []menuAction{actionEdit, actionToggleFavorite, actionCopy, actionDelete}

func (a menuAction) label(n models.Note) string {
	switch a {
	case actionEdit:
		return "Edit"
	case actionToggleFavorite:
		if n.IsFavorite {
			return "Remove from favorites"
		}
		return "Add to favorites"
	case actionCopy:
		return "Copy content"
	case actionDelete:
		return "Delete"
	default:
		return "?"
	}
}

func renderMenu(n models.Note, idx, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fitText(n.Title, width-8)))
	b.WriteString("\n\n")
	for i, a := range menuActions {
		if i == idx {
			b.WriteString("> ")
			b.WriteString(selectedStyle.Render(a.label(n)))
		} else {
			b.WriteString("  ")
			b.WriteString(a.label(n))
		}
		if i < len(menuActions)-1 {
			b.WriteString("\n")
		}
	}
	return overlayStyle.Render(b.String())
}
