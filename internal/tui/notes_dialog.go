// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/notes"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldContent
	fieldCategories
	fieldTags
	fieldFavorite
	fieldCount
)

const maxSuggestions = 5

// dialogForm holds the input widgets of the create/edit dialog. The
// coordinator owns the draft; the form pushes its values there after every
// edit.
type dialogForm struct {
	title      textinput.Model
	content    textarea.Model
	categories textinput.Model
	tags       textinput.Model
	favorite   bool
	focus      int

	categoryVocab []string
	tagVocab      []string
}

func newDialogForm(d notes.DialogOpen, categoryVocab, tagVocab []string, width int) *dialogForm {
	if width <= 0 {
		width = defaultWidth
	}
	inputWidth := width - 20
	if inputWidth < 20 {
		inputWidth = 20
	}

	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = validators.MaxTitleLength
	title.Width = inputWidth
	title.SetValue(d.Draft.Title)
	title.CursorEnd()

	content := textarea.New()
	content.Placeholder = "content (markdown)"
	content.CharLimit = validators.MaxContentLength
	content.ShowLineNumbers = false
	content.SetWidth(inputWidth)
	content.SetHeight(8)
	content.SetValue(d.Draft.Content)

	categories := textinput.New()
	categories.Placeholder = "comma separated"
	categories.Width = inputWidth
	categories.SetValue(strings.Join(d.Draft.Categories, ", "))
	categories.CursorEnd()

	tags := textinput.New()
	tags.Placeholder = "comma separated"
	tags.Width = inputWidth
	tags.SetValue(strings.Join(d.Draft.Tags, ", "))
	tags.CursorEnd()

	f := &dialogForm{
		title:         title,
		content:       content,
		categories:    categories,
		tags:          tags,
		favorite:      d.Draft.IsFavorite,
		categoryVocab: categoryVocab,
		tagVocab:      tagVocab,
	}
	f.setFocus(fieldTitle)
	return f
}

// draft returns the form values as a coordinator draft.
func (f *dialogForm) draft() notes.Draft {
	return notes.Draft{
		Title:      f.title.Value(),
		Content:    f.content.Value(),
		Categories: splitList(f.categories.Value()),
		Tags:       splitList(f.tags.Value()),
		IsFavorite: f.favorite,
	}
}

func (f *dialogForm) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.setFocus((f.focus + 1) % fieldCount)
			return nil
		case key.Matches(keyMsg, keys.backtab):
			f.setFocus((f.focus - 1 + fieldCount) % fieldCount)
			return nil
		case key.Matches(keyMsg, keys.complete):
			switch f.focus {
			case fieldCategories:
				f.categories.SetValue(completeToken(f.categories.Value(), f.categoryVocab))
				f.categories.CursorEnd()
			case fieldTags:
				f.tags.SetValue(completeToken(f.tags.Value(), f.tagVocab))
				f.tags.CursorEnd()
			}
			return nil
		case key.Matches(keyMsg, keys.enter) && f.focus == fieldTitle:
			f.setFocus(fieldContent)
			return nil
		case key.Matches(keyMsg, keys.toggle) && f.focus == fieldFavorite:
			f.favorite = !f.favorite
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldContent:
		f.content, cmd = f.content.Update(msg)
	case fieldCategories:
		f.categories, cmd = f.categories.Update(msg)
	case fieldTags:
		f.tags, cmd = f.tags.Update(msg)
	}
	return cmd
}

func (f *dialogForm) setFocus(field int) {
	f.title.Blur()
	f.content.Blur()
	f.categories.Blur()
	f.tags.Blur()

	f.focus = field
	switch field {
	case fieldTitle:
		f.title.Focus()
	case fieldContent:
		f.content.Focus()
	case fieldCategories:
		f.categories.Focus()
	case fieldTags:
		f.tags.Focus()
	}
}

func (f *dialogForm) view(d notes.DialogOpen, spinnerView string) string {
	var b strings.Builder

	b.WriteString("Title      │ ")
	b.WriteString(f.title.View())
	b.WriteString("\nContent\n")
	b.WriteString(f.content.View())
	b.WriteString("\nCategories │ ")
	b.WriteString(f.categories.View())
	if f.focus == fieldCategories {
		b.WriteString(renderSuggestions(suggestions(f.categories.Value(), f.categoryVocab)))
	}
	b.WriteString("\nTags       │ ")
	b.WriteString(f.tags.View())
	if f.focus == fieldTags {
		b.WriteString(renderSuggestions(suggestions(f.tags.Value(), f.tagVocab)))
	}

	check := "[ ]"
	if f.favorite {
		check = "[x]"
	}
	if f.focus == fieldFavorite {
		check = selectedStyle.Render(check)
	}
	b.WriteString("\nFavorite   │ ")
	b.WriteString(check)

	if d.Saving {
		b.WriteString("\n\n")
		b.WriteString(spinnerView)
		b.WriteString(" Saving...")
	}
	if d.Err != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + d.Err))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc: dismiss"))
	}

	return b.String()
}

func renderSuggestions(values []string) string {
	if len(values) == 0 {
		return ""
	}
	if len(values) > maxSuggestions {
		values = values[:maxSuggestions]
	}
	return "\n           " + helpStyle.Render("known: "+strings.Join(values, ", ")+"  (ctrl+f: complete)")
}

// splitList parses a comma separated input. Empty entries are dropped;
// duplicates and order are kept.
func splitList(v string) []string {
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// suggestions returns the vocabulary entries that start with the last,
// unfinished entry of value and are not already listed.
func suggestions(value string, vocab []string) []string {
	done, partial := splitPartial(value)
	partial = strings.ToLower(partial)

	out := []string{}
	for _, v := range vocab {
		if slices.Contains(done, v) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(v), partial) {
			out = append(out, v)
		}
	}
	return out
}

// completeToken replaces the unfinished entry of value with its first
// suggestion. value is returned unchanged when there is none.
func completeToken(value string, vocab []string) string {
	candidates := suggestions(value, vocab)
	if len(candidates) == 0 {
		return value
	}
	done, _ := splitPartial(value)
	return strings.Join(append(done, candidates[0]), ", ") + ", "
}

func splitPartial(value string) (done []string, partial string) {
	idx := strings.LastIndex(value, ",")
	if idx == -1 {
		return []string{}, strings.TrimSpace(value)
	}
	return splitList(value[:idx]), strings.TrimSpace(value[idx+1:])
}
