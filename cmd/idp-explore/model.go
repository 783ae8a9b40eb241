package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KULeuven-KRR/idp-core/registry"
)

// model walks a registry.Namespace tree read-only: a breadcrumb stack of
// namespaces visited so far, the entries listed at the current one, and
// either a cursor over that list or a detail pane for a selected leaf
// (vocabulary/structure/theory). Modeled on cmd/crud-tui's
// view/selectedIdx/currentView shape, with the drill-down target being
// namespace children instead of posts/comments/replies.
type model struct {
	path    []*registry.Namespace // path[0] is the root
	entries []entry
	cursor  int

	showingDetail bool
	vp            viewport.Model

	width, height int
	err           error
}

func newModel(root *registry.Namespace) model {
	return model{
		path:    []*registry.Namespace{root},
		entries: listEntries(root),
		vp:      viewport.New(0, 0),
	}
}

func (m model) current() *registry.Namespace {
	return m.path[len(m.path)-1]
}

func (m model) Init() tea.Cmd {
	return nil
}

const detailChromeHeight = 6 // title + breadcrumb + blank lines + help line

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - detailChromeHeight

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "backspace", "h", "esc":
		switch {
		case m.showingDetail:
			m.showingDetail = false
		case len(m.path) > 1:
			m.path = m.path[:len(m.path)-1]
			m.entries = listEntries(m.current())
			m.cursor = 0
		}
		return m, nil
	}

	if m.showingDetail {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case "enter", "l":
		if len(m.entries) == 0 {
			return m, nil
		}
		e := m.entries[m.cursor]
		if e.kind == entrySubspace {
			sub := m.current().Subspaces[e.name]
			m.path = append(m.path, sub)
			m.entries = listEntries(sub)
			m.cursor = 0
		} else {
			m.vp.SetContent(renderDetail(m.current(), e))
			m.vp.GotoTop()
			m.showingDetail = true
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(" idp-explore "))
	b.WriteString("\n")
	b.WriteString(breadcrumbStyle.Render(m.breadcrumb()))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if m.showingDetail {
		b.WriteString(borderStyle.Render(m.vp.View()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/k ↓/j scroll · esc/h back · q quit"))
	} else {
		b.WriteString(m.renderList())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/k ↓/j move · enter/l open · esc/h back · q quit"))
	}
	return b.String()
}

func (m model) breadcrumb() string {
	names := make([]string, len(m.path))
	for i, ns := range m.path {
		if ns.Name == "" {
			names[i] = "/"
		} else {
			names[i] = ns.Name
		}
	}
	return strings.Join(names, " / ")
}

func (m model) renderList() string {
	if len(m.entries) == 0 {
		return dimStyle.Render("(empty)")
	}
	var b strings.Builder
	for i, e := range m.entries {
		line := fmt.Sprintf("%s %s", kindStyle.Render(e.kind.label()), e.name)
		if i == m.cursor {
			line = selectedStyle.Render("▸ " + line)
		} else {
			line = normalStyle.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
