package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/tagnote/pkg/core"
	"github.com/aretw0/tagnote/pkg/form"
)

type field int

const (
	fieldTitle field = iota
	fieldBody
	fieldTags
	fieldNewTag
	fieldCount
)

// openForm starts editing id, or a new note when id is empty.
func (m *Model) openForm(id string, initial core.NoteData) tea.Cmd {
	m.formID = id
	m.form = form.New(m.reg, initial, form.Hooks{
		OnSubmit: m.svc.Callbacks(m.ctx, id).OnSubmit,
		OnAddTag: m.cb.OnAddTag,
	})

	m.title.Placeholder = "Title"
	m.title.SetValue(initial.Title)
	m.title.CursorEnd()
	m.body.Placeholder = "Write Markdown..."
	m.body.SetValue(initial.Text)
	m.newTag.Placeholder = "New tag label"
	m.newTag.SetValue("")
	m.tagCursor = 0
	m.status = ""
	m.screen = screenForm
	return m.setFocus(fieldTitle)
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.body.Blur()
	m.newTag.Blur()
	switch f {
	case fieldTitle:
		return m.title.Focus()
	case fieldBody:
		return m.body.Focus()
	case fieldNewTag:
		return m.newTag.Focus()
	}
	return nil
}

func (m *Model) closeForm() {
	m.form = nil
	m.screen = screenList
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeForm()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m, m.submitForm()
	case key.Matches(msg, m.keys.Color):
		m.form.CycleColor()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % fieldCount)
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldBody:
		m.body, cmd = m.body.Update(msg)
	case fieldTags:
		opts := m.form.Options()
		switch {
		case key.Matches(msg, m.keys.Left):
			if m.tagCursor > 0 {
				m.tagCursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.tagCursor < len(opts)-1 {
				m.tagCursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if m.tagCursor < len(opts) {
				m.form.Toggle(opts[m.tagCursor].Tag())
			}
		}
	case fieldNewTag:
		if key.Matches(msg, m.keys.Confirm) {
			return m, m.createTag()
		}
		m.newTag, cmd = m.newTag.Update(msg)
	}
	return m, cmd
}

func (m *Model) createTag() tea.Cmd {
	t, err := m.form.CreateOption(m.newTag.Value())
	if err != nil {
		m.err = err
		return nil
	}
	m.newTag.SetValue("")
	m.status = fmt.Sprintf("Tag %q created", t.Label)
	return m.load()
}

func (m *Model) submitForm() tea.Cmd {
	m.form.SetTitle(m.title.Value())
	m.form.SetText(m.body.Value())
	if err := m.form.Submit(); err != nil {
		if errors.Is(err, form.ErrIncomplete) {
			m.status = "Title and text are required."
			return nil
		}
		return m.fail(err)
	}
	if m.formID == "" {
		m.status = "Note created"
	} else {
		m.status = "Note saved"
	}
	m.closeForm()
	return m.load()
}

func (m *Model) viewForm() string {
	var b strings.Builder
	heading := "New note"
	if m.formID != "" {
		heading = "Edit note"
	}
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(m.body.View())
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(fieldTags, "Tags"))
	b.WriteString(m.tagPicker())
	b.WriteString("\n")
	b.WriteString(m.newTag.View())
	b.WriteString("\n\n")

	swatch := lipgloss.NewStyle().Background(lipgloss.Color(m.form.Color())).Render("    ")
	b.WriteString(labelStyle.Render("Color ") + swatch + " " + m.form.Color())
	b.WriteString("\n")

	submit := "[ Save ]"
	if strings.TrimSpace(m.title.Value()) == "" || strings.TrimSpace(m.body.Value()) == "" {
		submit = helpStyle.Render(submit)
	}
	b.WriteString("\n" + submit + "\n\n")
	b.WriteString(helpStyle.Render(helpLine(m.keys.Next, m.keys.Toggle, m.keys.Color, m.keys.Submit, m.keys.Back)))
	return b.String()
}

func (m *Model) fieldLabel(f field, label string) string {
	if m.focus == f {
		return cursorStyle.Render("> "+label) + " "
	}
	return labelStyle.Render("  "+label) + " "
}

func (m *Model) tagPicker() string {
	opts := m.form.Options()
	if len(opts) == 0 {
		return emptyStyle.Render("no tags yet")
	}
	selected := make(map[string]bool)
	for _, o := range m.form.Selected() {
		selected[o.Value] = true
	}
	chips := make([]string, 0, len(opts))
	for i, o := range opts {
		style := chipStyle
		if selected[o.Value] {
			style = activeChipStyle
		}
		label := o.Label
		if m.focus == fieldTags && i == m.tagCursor {
			label = "›" + label
		}
		chips = append(chips, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}
