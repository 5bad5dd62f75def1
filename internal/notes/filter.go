// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import (
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Criteria narrows a list of notes. All set criteria must hold; an empty
// string or false means the criterion is not applied.
type Criteria struct {
	// Search is matched case-insensitively against title and content.
	Search   string
	Category string
	Tag      string

	FavoritesOnly bool
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Matches reports whether n satisfies every criterion.
func (c Criteria) Matches(n models.Note) bool {
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(n.Title), q) && !strings.Contains(strings.ToLower(n.Content), q) {
			return false
		}
	}
	if c.Category != "" && !slices.Contains(n.Categories, c.Category) {
		return false
	}
	if c.Tag != "" && !slices.Contains(n.Tags, c.Tag) {
		return false
	}
	if c.FavoritesOnly && !n.IsFavorite {
		return false
	}

	return true
}

// Filter holds the criteria the user picked in the filter bar.
type Filter struct {
	mu       sync.RWMutex
	criteria Criteria
}

func NewFilter() *Filter {
	return &Filter{}
}

func (f *Filter) Criteria() Criteria {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.criteria
}

func (f *Filter) SetSearch(search string) {
	f.update(func(c *Criteria) { c.Search = search })
}

func (f *Filter) SetCategory(category string) {
	f.update(func(c *Criteria) { c.Category = category })
}

func (f *Filter) SetTag(tag string) {
	f.update(func(c *Criteria) { c.Tag = tag })
}

func (f *Filter) SetFavoritesOnly(on bool) {
	f.update(func(c *Criteria) { c.FavoritesOnly = on })
}

// Clear resets all criteria at once.
func (f *Filter) Clear() {
	f.update(func(c *Criteria) { *c = Criteria{} })
}

// Apply returns the notes matching the current criteria. The input order
// is kept.
func (f *Filter) Apply(notes []models.Note) []models.Note {
	c := f.Criteria()

	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if c.Matches(n) {
			out = append(out, n)
		}
	}
	return out
}

func (f *Filter) update(fn func(*Criteria)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.criteria)
}
