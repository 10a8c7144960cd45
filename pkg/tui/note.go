package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

func (m *Model) openNote(id string) tea.Cmd {
	n, err := m.svc.Note(m.ctx, id)
	if err != nil {
		return m.fail(err)
	}
	m.current = n
	m.rendered = m.renderMarkdown(fmt.Sprintf("# %s\n\n%s\n", n.Title, n.Text))
	m.screen = screenNote
	return nil
}

// renderMarkdown falls back to the raw source when glamour fails.
func (m *Model) renderMarkdown(src string) string {
	wrap := 80
	if m.width > 8 {
		wrap = m.width - 8
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.mdStyle),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.logger.Debug("markdown renderer unavailable", "error", err)
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		m.logger.Debug("markdown render failed", "error", err)
		return src
	}
	return out
}

func (m *Model) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenList
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Edit):
		return m, m.openForm(m.current.ID, m.current.Data())
	}
	return m, nil
}

func (m *Model) viewNote() string {
	out := m.rendered
	if len(m.current.Tags) > 0 {
		chips := ""
		for _, t := range m.current.Tags {
			chips += chipStyle.Render(t.Label) + " "
		}
		out += "\n" + chips + "\n"
	}
	return out + "\n" + helpStyle.Render(helpLine(m.keys.Back, m.keys.Edit, m.keys.Quit))
}
