package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateTags(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tags := m.reg.Tags()

	if m.renaming {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.renaming = false
			m.rename.Blur()
			return m, nil
		case key.Matches(msg, m.keys.Confirm):
			m.renaming = false
			m.rename.Blur()
			if m.tagEditCursor >= len(tags) {
				return m, nil
			}
			t := tags[m.tagEditCursor]
			if err := m.list.RenameTag(t.ID, m.rename.Value()); err != nil {
				return m, m.fail(err)
			}
			m.status = fmt.Sprintf("Renamed %q to %q", t.Label, m.rename.Value())
			return m, m.load()
		}
		var cmd tea.Cmd
		m.rename, cmd = m.rename.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Tags):
		m.list.CloseTagEditor()
		m.screen = screenList
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.tagEditCursor > 0 {
			m.tagEditCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.tagEditCursor < len(tags)-1 {
			m.tagEditCursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.tagEditCursor < len(tags) {
			m.list.ToggleTag(tags[m.tagEditCursor])
			m.refresh()
		}
	case key.Matches(msg, m.keys.Rename):
		if m.tagEditCursor < len(tags) {
			m.renaming = true
			m.rename.SetValue(tags[m.tagEditCursor].Label)
			return m, m.rename.Focus()
		}
	case key.Matches(msg, m.keys.Delete):
		if m.tagEditCursor < len(tags) {
			t := tags[m.tagEditCursor]
			if err := m.list.DeleteTag(t.ID); err != nil {
				return m, m.fail(err)
			}
			m.status = fmt.Sprintf("Deleted tag %q", t.Label)
			return m, m.load()
		}
	}
	return m, nil
}

func (m *Model) viewTags() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tags"))
	b.WriteString("\n\n")

	tags := m.reg.Tags()
	if len(tags) == 0 {
		b.WriteString(emptyStyle.Render("No tags registered."))
		b.WriteString("\n")
	}
	for i, t := range tags {
		cursor := "  "
		if i == m.tagEditCursor {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if m.list.IsSelected(t.ID) {
			check = "[x]"
		}
		label := t.Label
		if m.renaming && i == m.tagEditCursor {
			label = m.rename.View()
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, check, label)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine(m.keys.Toggle, m.keys.Rename, m.keys.Delete, m.keys.Back)))
	return modalStyle.Render(b.String())
}
