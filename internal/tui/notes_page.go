// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/notes"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

var clipboardWriteAll = clipboard.WriteAll

// NotesModel is the main screen of a signed-in user: the filtered card
// list with its filter bar, the per-note action menu, the create/edit
// dialog and the note detail view.
//
// Notes come from [notes.Store] and are never patched locally; every write
// goes through [notes.Coordinator] and shows up once the live feed pushes
// the next snapshot.
type NotesModel struct {
	ctx    context.Context
	auth   service.ClientAuthService
	store  *notes.Store
	filter *notes.Filter
	coord  *notes.Coordinator

	width  int
	height int

	cursor    int
	searching bool
	search    textinput.Model
	spinner   spinner.Model

	menuIdx int
	form    *dialogForm

	detailID string
	viewport viewport.Model

	status    string
	statusErr bool
	statusSeq int
}

func NewNotesModel(ctx context.Context, auth service.ClientAuthService, store *notes.Store, filter *notes.Filter, coord *notes.Coordinator) *NotesModel {
	search := textinput.New()
	search.Placeholder = "title or content"
	search.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &NotesModel{
		ctx:      ctx,
		auth:     auth,
		store:    store,
		filter:   filter,
		coord:    coord,
		search:   search,
		spinner:  s,
		viewport: viewport.New(defaultWidth, 20),
	}
}

func (m *NotesModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = max(msg.Height-reservedLines, 5)
		m.refreshDetail()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case signedInMsg:
		m.resetView()
		return m, m.flash("Signed in as "+msg.Login, false)

	case storeChangedMsg:
		m.cursor = clampCursor(m.cursor, len(m.visibleNotes()))
		m.refreshDetail()
		return m, nil

	case noteSavedMsg:
		m.syncForm()
		if msg.err == nil && m.form == nil {
			return m, m.flash("Note saved", false)
		}
		return m, nil

	case noteDeletedMsg:
		if msg.err != nil {
			return m, m.noticeTimer()
		}
		return m, m.flash("Note deleted", false)

	case favoriteToggledMsg:
		if msg.err != nil {
			return m, m.noticeTimer()
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m, m.flash("Could not copy: "+msg.err.Error(), true)
		}
		return m, m.flash("Copied to clipboard", false)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.coord.DismissNotice()
		}
		return m, nil

	case LogoutResult:
		// the session is gone from memory even when clearing the saved copy failed
		m.resetView()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: signedOutNotice{Login: msg.Login}}
		}

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	// blink and other widget messages
	switch {
	case m.form != nil:
		return m, m.form.update(msg)
	case m.searching:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *NotesModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.syncForm()

	switch state := m.coord.State().(type) {
	case notes.DialogOpen:
		return m.updateDialog(msg, state)
	case notes.MenuOpen:
		return m.updateMenu(msg, state)
	}

	if m.detailID != "" {
		return m.updateDetail(msg)
	}
	if m.searching {
		return m.updateSearch(msg)
	}
	return m.updateList(msg)
}

func (m *NotesModel) updateList(msg tea.KeyMsg) tea.Cmd {
	visible := m.visibleNotes()
	current, hasCurrent := noteAt(visible, m.cursor)
	st := m.store.State()
	criteria := m.filter.Criteria()

	switch {
	case key.Matches(msg, keys.quit):
		return tea.Quit
	case key.Matches(msg, keys.logout):
		return m.cmdLogout()
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.newNote):
		m.coord.OpenCreateDialog()
		return m.openForm()
	case key.Matches(msg, keys.enter):
		if hasCurrent {
			m.detailID = current.ID
			m.viewport.GotoTop()
			m.refreshDetail()
		}
	case key.Matches(msg, keys.edit):
		if hasCurrent {
			m.coord.OpenEditDialog(current)
			return m.openForm()
		}
	case key.Matches(msg, keys.menu):
		if hasCurrent {
			m.menuIdx = 0
			m.coord.OpenMenu(m.cursor, current)
		}
	case key.Matches(msg, keys.favorite):
		if hasCurrent {
			return m.cmdToggleFavorite(current)
		}
	case key.Matches(msg, keys.search):
		m.searching = true
		m.search.SetValue(criteria.Search)
		m.search.CursorEnd()
		return m.search.Focus()
	case key.Matches(msg, keys.category):
		m.filter.SetCategory(cycleValue(st.Categories, criteria.Category))
		m.cursor = 0
	case key.Matches(msg, keys.tag):
		m.filter.SetTag(cycleValue(st.Tags, criteria.Tag))
		m.cursor = 0
	case key.Matches(msg, keys.favoritesOnly):
		m.filter.SetFavoritesOnly(!criteria.FavoritesOnly)
		m.cursor = 0
	case key.Matches(msg, keys.clearFilters):
		m.filter.Clear()
		m.search.Reset()
		m.cursor = 0
	case key.Matches(msg, keys.esc):
		m.status = ""
		m.coord.DismissNotice()
	}
	return nil
}

func (m *NotesModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.enter):
		m.searching = false
		m.search.Blur()
		return nil
	case key.Matches(msg, keys.esc):
		m.searching = false
		m.search.Blur()
		m.search.Reset()
		m.filter.SetSearch("")
		m.cursor = 0
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.filter.SetSearch(m.search.Value())
	m.cursor = 0
	return cmd
}

func (m *NotesModel) updateMenu(msg tea.KeyMsg, menu notes.MenuOpen) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.menu):
		m.coord.CloseMenu()
	case key.Matches(msg, keys.up):
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case key.Matches(msg, keys.down):
		if m.menuIdx < len(menuActions)-1 {
			m.menuIdx++
		}
	case key.Matches(msg, keys.enter):
		return m.runMenuAction(menuActions[m.menuIdx], menu.Note)
	}
	return nil
}

func (m *NotesModel) runMenuAction(action menuAction, note models.Note) tea.Cmd {
	switch action {
	case actionEdit:
		m.coord.OpenEditDialog(note)
		return m.openForm()
	case actionToggleFavorite:
		m.coord.CloseMenu()
		return m.cmdToggleFavorite(note)
	case actionCopy:
		m.coord.CloseMenu()
		return cmdCopy(note.Content)
	case actionDelete:
		m.coord.CloseMenu()
		if m.detailID == note.ID {
			m.detailID = ""
		}
		return m.cmdDelete(note.ID)
	}
	return nil
}

func (m *NotesModel) updateDialog(msg tea.KeyMsg, dialog notes.DialogOpen) tea.Cmd {
	if m.form == nil {
		m.form = newDialogForm(dialog, m.store.State().Categories, m.store.State().Tags, m.width)
	}
	if dialog.Saving {
		return nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		if dialog.Err != "" {
			m.coord.DismissError()
			return nil
		}
		m.coord.CloseDialog()
		m.form = nil
		return nil
	case key.Matches(msg, keys.save):
		m.pushDraft()
		return tea.Batch(m.cmdSave(), m.spinner.Tick)
	}

	cmd := m.form.update(msg)
	m.pushDraft()
	return cmd
}

func (m *NotesModel) updateDetail(msg tea.KeyMsg) tea.Cmd {
	note, ok := findNote(m.store.State().Notes, m.detailID)
	if !ok {
		m.detailID = ""
		return nil
	}

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.detailID = ""
		return nil
	case key.Matches(msg, keys.edit):
		m.coord.OpenEditDialog(note)
		return m.openForm()
	case key.Matches(msg, keys.favorite):
		return m.cmdToggleFavorite(note)
	case key.Matches(msg, keys.menu):
		m.menuIdx = 0
		m.coord.OpenMenu(m.cursor, note)
		return nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// openForm builds the dialog widgets from the coordinator's freshly
// opened dialog.
func (m *NotesModel) openForm() tea.Cmd {
	dialog, ok := m.coord.State().(notes.DialogOpen)
	if !ok {
		m.form = nil
		return nil
	}
	st := m.store.State()
	m.form = newDialogForm(dialog, st.Categories, st.Tags, m.width)
	return textinput.Blink
}

// syncForm drops the widgets once the coordinator has closed the dialog.
func (m *NotesModel) syncForm() {
	if _, ok := m.coord.State().(notes.DialogOpen); !ok {
		m.form = nil
	}
}

func (m *NotesModel) pushDraft() {
	d := m.form.draft()
	m.coord.SetTitle(d.Title)
	m.coord.SetContent(d.Content)
	m.coord.SetCategories(d.Categories)
	m.coord.SetTags(d.Tags)
	m.coord.SetFavorite(d.IsFavorite)
}

func (m *NotesModel) visibleNotes() []models.Note {
	return m.filter.Apply(m.store.State().Notes)
}

func (m *NotesModel) refreshDetail() {
	if m.detailID == "" {
		return
	}
	note, ok := findNote(m.store.State().Notes, m.detailID)
	if !ok {
		m.detailID = ""
		return
	}
	m.viewport.SetContent(detailBody(note, m.viewport.Width))
}

func (m *NotesModel) resetView() {
	m.cursor = 0
	m.menuIdx = 0
	m.detailID = ""
	m.searching = false
	m.search.Blur()
	m.search.Reset()
	m.filter.Clear()
	m.coord.CloseDialog()
	m.coord.CloseMenu()
	m.coord.DismissNotice()
	m.form = nil
	m.status = ""
}

func (m *NotesModel) flash(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// noticeTimer schedules the removal of a background failure notice.
func (m *NotesModel) noticeTimer() tea.Cmd {
	if m.coord.Notice() == "" {
		return nil
	}
	m.statusSeq++
	m.status = ""
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m *NotesModel) ownerID() int64 {
	if s, ok := m.auth.Current(); ok {
		return s.UserID
	}
	return 0
}

func (m *NotesModel) cmdSave() tea.Cmd {
	ctx, coord, ownerID := m.ctx, m.coord, m.ownerID()
	return func() tea.Msg {
		return noteSavedMsg{err: coord.SaveNote(ctx, ownerID)}
	}
}

func (m *NotesModel) cmdDelete(id string) tea.Cmd {
	ctx, coord := m.ctx, m.coord
	return func() tea.Msg {
		return noteDeletedMsg{err: coord.DeleteNote(ctx, id)}
	}
}

func (m *NotesModel) cmdToggleFavorite(note models.Note) tea.Cmd {
	ctx, coord := m.ctx, m.coord
	return func() tea.Msg {
		return favoriteToggledMsg{err: coord.ToggleFavorite(ctx, note)}
	}
}

func (m *NotesModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	login := ""
	if s, ok := auth.Current(); ok {
		login = s.Login
	}
	return func() tea.Msg {
		return LogoutResult{Err: auth.Logout(ctx), Login: login}
	}
}

func cmdCopy(content string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboardWriteAll(content)}
	}
}

func noteAt(list []models.Note, idx int) (models.Note, bool) {
	if idx < 0 || idx >= len(list) {
		return models.Note{}, false
	}
	return list[idx], true
}

func (m *NotesModel) View() string {
	if dialog, ok := m.coord.State().(notes.DialogOpen); ok && m.form != nil {
		title := "NEW NOTE"
		if dialog.Mode == notes.DialogEdit {
			title = "EDIT NOTE"
		}
		return renderPage(title, m.form.view(dialog, m.spinner.View()),
			"tab: next field │ ctrl+f: complete │ space: toggle favorite │ ctrl+s: save │ esc: cancel")
	}

	st := m.store.State()

	if m.detailID != "" {
		if note, ok := findNote(st.Notes, m.detailID); ok {
			return m.viewDetail(st, note)
		}
	}

	return m.viewList(st)
}

func (m *NotesModel) viewList(st notes.State) string {
	visible := m.filter.Apply(st.Notes)
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(m.viewTop(st))
	b.WriteString(renderFilterBar(m.filter.Criteria(), m.search.View(), m.searching, len(visible), len(st.Notes)))
	b.WriteString("\n\n")

	if empty := emptyStateText(st.Loading, len(st.Notes), len(visible)); empty != "" {
		if st.Loading {
			b.WriteString(m.spinner.View())
			b.WriteString(" ")
		}
		b.WriteString(empty)
		b.WriteString("\n")
	} else {
		start, end := visibleWindow(m.cursor, len(visible), cardsPerPage(m.height))
		for i := start; i < end; i++ {
			b.WriteString(renderCard(visible[i], i == m.cursor, width))
			b.WriteString("\n\n")
		}
	}

	if menu, ok := m.coord.State().(notes.MenuOpen); ok {
		b.WriteString(renderMenu(menu.Note, m.menuIdx, width))
		b.WriteString("\n")
	}

	b.WriteString(m.viewToast())

	hotKeys := "n: new │ enter: open │ e: edit │ m: menu │ f: favorite │ /: search │ c: category │ t: tag │ *: favorites │ x: clear │ l: log out │ q: quit"
	if m.searching {
		hotKeys = "enter: apply │ esc: clear search"
	} else if _, ok := m.coord.State().(notes.MenuOpen); ok {
		hotKeys = "↑/↓: choose │ enter: run │ esc: close"
	}
	return renderPage("NOTES", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *NotesModel) viewDetail(st notes.State, note models.Note) string {
	var b strings.Builder
	b.WriteString(m.viewTop(st))
	b.WriteString(titleStyle.Render(note.Title))
	b.WriteString("\n")
	b.WriteString(detailHeader(note))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if menu, ok := m.coord.State().(notes.MenuOpen); ok {
		b.WriteString(renderMenu(menu.Note, m.menuIdx, m.contentWidth()))
		b.WriteString("\n")
	}
	b.WriteString(m.viewToast())

	return renderPage("NOTE", strings.TrimRight(b.String(), "\n"), "↑/↓: scroll │ e: edit │ f: favorite │ m: menu │ esc: back")
}

// viewTop renders the signed-in user line and the sync banner.
func (m *NotesModel) viewTop(st notes.State) string {
	var b strings.Builder
	if s, ok := m.auth.Current(); ok {
		b.WriteString("Signed in as ")
		b.WriteString(s.Login)
	}
	if st.Loading {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n")

	if st.SyncErr != nil {
		b.WriteString(bannerStyle.Render("Sync unavailable. Showing the last received notes."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m *NotesModel) viewToast() string {
	var b strings.Builder
	if notice := m.coord.Notice(); notice != "" {
		b.WriteString(toastStyle.Render(notice))
		b.WriteString("\n")
	}
	if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *NotesModel) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width - 4
}
