package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/tagnote/pkg/core"
	"github.com/aretw0/tagnote/pkg/listing"
)

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Confirm):
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.list.SetQuery(m.search.Value())
		m.refresh()
		return m, cmd
	}

	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.cards)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if c, ok := m.selectedCard(); ok {
			return m, m.openNote(c.ID)
		}
	case key.Matches(msg, m.keys.New):
		return m, m.openForm("", core.NoteData{BackgroundColor: m.defaultColor})
	case key.Matches(msg, m.keys.Edit):
		if c, ok := m.selectedCard(); ok {
			return m, m.openForm(c.ID, cardData(c))
		}
	case key.Matches(msg, m.keys.Delete):
		if c, ok := m.selectedCard(); ok {
			if err := m.cb.OnDelete(c.ID); err != nil {
				return m, m.fail(err)
			}
			m.status = fmt.Sprintf("Deleted %q", c.Title)
			return m, m.load()
		}
	case key.Matches(msg, m.keys.Tags):
		m.list.OpenTagEditor()
		m.screen = screenTags
	case key.Matches(msg, m.keys.Clear):
		m.list.ClearFilters()
		m.search.SetValue("")
		m.refresh()
	}
	return m, nil
}

func (m *Model) selectedCard() (listing.Card, bool) {
	if m.cursor < 0 || m.cursor >= len(m.cards) {
		return listing.Card{}, false
	}
	return m.cards[m.cursor], true
}

func cardData(c listing.Card) core.NoteData {
	return core.NoteData{
		Title:           c.Title,
		Text:            c.Text,
		Tags:            append([]core.Tag(nil), c.Tags...),
		BackgroundColor: c.BackgroundColor,
	}
}

func (m *Model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tagnote"))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")

	if chips := m.filterChips(); chips != "" {
		b.WriteString(chips)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.cards) == 0 {
		b.WriteString(emptyStyle.Render(listing.EmptyMessage))
		b.WriteString("\n")
	}
	for i, c := range m.cards {
		b.WriteString(m.renderCard(c, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine(m.keys.Search, m.keys.Open, m.keys.New, m.keys.Edit,
		m.keys.Delete, m.keys.Tags, m.keys.Clear, m.keys.Quit)))
	return b.String()
}

func (m *Model) filterChips() string {
	selected := m.list.Selected()
	if len(selected) == 0 {
		return ""
	}
	chips := make([]string, 0, len(selected))
	for _, o := range selected {
		chips = append(chips, activeChipStyle.Render(o.Label))
	}
	return "tags: " + lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m *Model) renderCard(c listing.Card, selected bool) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	if c.BackgroundColor != "" {
		style = style.Background(lipgloss.Color(c.BackgroundColor))
	}
	if m.width > 8 {
		style = style.Width(m.width - 8)
	}

	content := labelStyle.Render(c.Title)
	if len(c.Tags) > 0 {
		chips := make([]string, 0, len(c.Tags))
		for _, t := range c.Tags {
			chips = append(chips, chipStyle.Render(t.Label))
		}
		content += "\n" + lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	}
	return style.Render(content)
}
