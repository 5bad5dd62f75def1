// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/mattn/go-runewidth"
)

const (
	defaultWidth  = 80
	cardHeight    = 4 // three lines and a gap
	reservedLines = 16
)

const (
	emptyNoNotes    = "No notes yet. Press n to create one."
	emptyNoMatches  = "No notes match the filters. Press x to clear them."
	loadingNotesMsg = "Loading notes..."
)

// renderCard renders one note as a three-line card.
func renderCard(n models.Note, selected bool, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	marker := "  "
	if selected {
		marker = "> "
	}
	star := "  "
	if n.IsFavorite {
		star = favoriteStyle.Render("★") + " "
	}

	updated := "updated " + formatUpdated(n.UpdatedAt)
	titleWidth := width - runewidth.StringWidth(updated) - 6
	if titleWidth < 10 {
		titleWidth = 10
	}
	title := padRight(fitText(n.Title, titleWidth), titleWidth)
	if selected {
		title = selectedStyle.Render(title)
	}

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(star)
	b.WriteString(title)
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(updated))
	b.WriteString("\n    ")
	b.WriteString(fitText(previewText(n.Content), width-4))

	chips := strings.TrimSpace(joinChips("@", n.Categories) + " " + joinChips("#", n.Tags))
	b.WriteString("\n    ")
	if chips != "" {
		b.WriteString(chipStyle.Render(fitText(chips, width-4)))
	}

	return b.String()
}

// cardsPerPage is the number of cards that fit in height lines.
func cardsPerPage(height int) int {
	if height <= 0 {
		return 5
	}
	n := (height - reservedLines) / cardHeight
	if n < 1 {
		return 1
	}
	return n
}

// visibleWindow returns the [start, end) range of cards to render so that
// cursor stays on screen.
func visibleWindow(cursor, total, perPage int) (start, end int) {
	if total <= perPage {
		return 0, total
	}
	start = cursor - perPage + 1
	if start < 0 {
		start = 0
	}
	end = start + perPage
	if end > total {
		end = total
		start = end - perPage
	}
	return start, end
}

func clampCursor(cursor, total int) int {
	if total == 0 || cursor < 0 {
		return 0
	}
	if cursor >= total {
		return total - 1
	}
	return cursor
}

// cycleValue steps through "" and then each of values in order, wrapping
// back to "". A current value no longer in values restarts the cycle.
func cycleValue(values []string, current string) string {
	if len(values) == 0 {
		return ""
	}
	if current == "" {
		return values[0]
	}
	idx := slices.Index(values, current)
	if idx == -1 || idx == len(values)-1 {
		return ""
	}
	return values[idx+1]
}

// emptyStateText picks the message shown when no card is rendered.
func emptyStateText(loading bool, total, visible int) string {
	switch {
	case loading:
		return loadingNotesMsg
	case total == 0:
		return emptyNoNotes
	case visible == 0:
		return emptyNoMatches
	default:
		return ""
	}
}

func findNote(list []models.Note, id string) (models.Note, bool) {
	for _, n := range list {
		if n.ID == id {
			return n, true
		}
	}
	return models.Note{}, false
}
