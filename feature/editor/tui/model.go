package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"locale-manager/core/reconcile"
	"locale-manager/feature/editor"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	headerHeight  = 4
	footerHeight  = 3
	defaultHeight = 24
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeEdit
)

// loadedMsg reports the end of a load started by the model.
type loadedMsg struct {
	language string
	err      error
}

// exportedMsg reports the end of an export.
type exportedMsg struct {
	target   string
	location string
	err      error
}

// Model is the bubbletea model of the editor.
type Model struct {
	ctx     context.Context
	svc     *editor.Service
	session *reconcile.Session

	keys   KeyMap
	help   help.Model
	search textinput.Model
	input  textinput.Model

	mode     mode
	editing  string
	original string

	cursor int
	offset int
	width  int
	height int

	loading  string
	notice   string
	err      error
	quitting bool
}

// New creates the model. lang is loaded by Init; pass "" to start empty.
func New(ctx context.Context, svc *editor.Service, lang string) Model {
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search keys and texts"
	search.CharLimit = 256

	input := textinput.New()
	input.Prompt = "› "

	return Model{
		ctx:     ctx,
		svc:     svc,
		session: svc.Session(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		search:  search,
		input:   input,
		loading: lang,
	}
}

// Run starts the editor on the terminal and blocks until the user quits.
func Run(ctx context.Context, svc *editor.Service, lang string, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(ctx, svc, lang), opts...).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.loading == "" {
		return nil
	}
	return m.load(m.loading)
}

func (m Model) load(lang string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		return loadedMsg{language: lang, err: svc.Load(ctx, lang)}
	}
}

func (m Model) export(target string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		location, err := svc.Export(ctx, target)
		return exportedMsg{target: target, location: location, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-8, 10)
		m.scroll()
		return m, nil

	case loadedMsg:
		if errors.Is(msg.err, reconcile.ErrLoadSuperseded) {
			return m, nil
		}
		if msg.language == m.loading {
			m.loading = ""
		}
		m.err = msg.err
		m.notice = ""
		if msg.err == nil {
			// the session resets its filter on a language switch
			m.mode = modeBrowse
			m.editing = ""
			m.search.SetValue("")
			m.search.Blur()
			m.input.Blur()
			m.cursor, m.offset = 0, 0
		}
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.notice = ""
			return m, nil
		}
		m.err = nil
		switch msg.target {
		case editor.TargetClipboard:
			m.notice = "Copied to clipboard"
		case editor.TargetFile:
			m.notice = "Exported: " + msg.location
		default:
			m.notice = fmt.Sprintf("Exported to %s: %s", msg.target, msg.location)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.SaveFile):
			return m, m.export(editor.TargetFile)
		case key.Matches(msg, m.keys.Clipboard):
			return m, m.export(editor.TargetClipboard)
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeSearch:
		m.search, cmd = m.search.Update(msg)
	case modeEdit:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.scroll()

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.session.VisibleCount()-1 {
			m.cursor++
		}
		m.scroll()

	case key.Matches(msg, m.keys.Search):
		if m.session.State() != reconcile.StateReady {
			return m, nil
		}
		m.mode = modeSearch
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.MissingOnly):
		on := !m.session.Filter().MissingOnly
		m.setFilter(reconcile.FilterUpdate{MissingOnly: &on})

	case key.Matches(msg, m.keys.SameOnly):
		on := !m.session.Filter().SameOnly
		m.setFilter(reconcile.FilterUpdate{SameOnly: &on})

	case key.Matches(msg, m.keys.Edit):
		rows := m.session.VisibleRows()
		if len(rows) == 0 {
			return m, nil
		}
		row := rows[min(m.cursor, len(rows)-1)]
		if err := m.session.Focus(row.Key); err != nil {
			m.err = err
			return m, nil
		}
		m.mode = modeEdit
		m.editing = row.Key
		m.original = row.Target
		m.input.SetValue(row.Target)
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.NextLang):
		next := m.svc.NextLanguage()
		if next == "" {
			return m, nil
		}
		m.loading = next
		m.notice = ""
		return m, m.load(next)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.search.SetValue("")
		query := ""
		m.setFilter(reconcile.FilterUpdate{Query: &query})
		fallthrough
	case key.Matches(msg, m.keys.Done):
		m.search.Blur()
		m.mode = modeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if query := m.search.Value(); query != before {
		m.setFilter(reconcile.FilterUpdate{Query: &query})
		m.cursor, m.offset = 0, 0
	}
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.input.Value() != m.original {
			m.edit(m.original)
		}
		fallthrough
	case key.Matches(msg, m.keys.Done):
		m.session.Blur()
		m.input.Blur()
		m.mode = modeBrowse
		m.follow(m.editing)
		m.editing = ""
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.edit(value)
	}
	return m, cmd
}

func (m *Model) edit(value string) {
	if err := m.session.Edit(m.editing, value); err != nil {
		m.err = err
	}
}

func (m *Model) setFilter(u reconcile.FilterUpdate) {
	if err := m.session.SetFilter(u); err != nil {
		m.err = err
		return
	}
	m.clamp()
}

// follow moves the cursor to the row of k when it is still visible.
func (m *Model) follow(k string) {
	for i, row := range m.session.VisibleRows() {
		if row.Key == k {
			m.cursor = i
			m.scroll()
			return
		}
	}
	m.clamp()
}

func (m *Model) clamp() {
	if n := m.session.VisibleCount(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	m.scroll()
}

func (m *Model) listHeight() int {
	h := m.height
	if h == 0 {
		h = defaultHeight
	}
	return max(h-headerHeight-footerHeight, 1)
}

func (m *Model) scroll() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	status := m.session.Status()

	title := "Locale editor"
	if status.Language != "" {
		title = fmt.Sprintf("Locale editor · %s → %s", m.session.BaseLanguage(), status.Language)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(statsStyle.Render(fmt.Sprintf("%s · Showing: %d", m.session.Stats(), m.session.VisibleCount())))
	b.WriteString("\n")
	b.WriteString(m.filterLine())
	b.WriteString("\n\n")

	rows := m.session.VisibleRows()
	end := min(m.offset+m.listHeight(), len(rows))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(rows[i], i == m.cursor))
		b.WriteString("\n")
	}
	if len(rows) == 0 && status.State == reconcile.StateReady {
		b.WriteString(statsStyle.Render("No keys match the current filter"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine(status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) filterLine() string {
	toggle := func(label string, on bool) string {
		if on {
			return toggleOnStyle.Render("[x] " + label)
		}
		return "[ ] " + label
	}

	f := m.session.Filter()
	search := m.search.View()
	if m.mode != modeSearch && f.Query == "" {
		search = statsStyle.Render("/ to search")
	}
	return strings.Join([]string{
		search,
		toggle("Empty only", f.MissingOnly),
		toggle("Same as base", f.SameOnly),
	}, "   ")
}

func (m Model) renderRow(row reconcile.RowView, selected bool) string {
	marker := "  "
	if selected {
		marker = cursorStyle.Render("› ")
	}

	var target string
	switch {
	case row.Active && m.mode == modeEdit:
		target = m.input.View()
	case row.Missing:
		target = missingStyle.Render("(empty)")
	case !row.Changed:
		target = sameStyle.Render(row.Target)
	default:
		target = row.Target
	}

	line := fmt.Sprintf("%s%s  %s  %s", marker, keyStyle.Render(row.Key), baseStyle.Render(row.Base), target)
	if row.Active {
		line = activeStyle.Render(line)
	}
	return line
}

func (m Model) statusLine(status reconcile.Status) string {
	switch {
	case m.loading != "":
		return statsStyle.Render(fmt.Sprintf("Loading translations... (%s)", m.loading))
	case m.err != nil:
		return errorStyle.Render("Error: " + m.err.Error())
	case m.notice != "":
		return noticeStyle.Render(m.notice)
	case status.Error != "":
		return errorStyle.Render(status.Message)
	default:
		return status.Message
	}
}
