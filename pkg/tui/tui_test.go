package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tagnote/pkg/adapters/memory"
	"github.com/aretw0/tagnote/pkg/core"
	"github.com/aretw0/tagnote/pkg/listing"
)

var (
	home = core.Tag{ID: "t1", Label: "home"}
	work = core.Tag{ID: "t2", Label: "work"}
)

func newTestModel(t *testing.T) (*Model, *core.Service) {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewRepository()
	require.NoError(t, repo.SaveTags(ctx, []core.Tag{home, work}))
	require.NoError(t, repo.Save(ctx, core.Note{ID: "1", Title: "Groceries", Text: "milk", Tags: []core.Tag{home}}))
	require.NoError(t, repo.Save(ctx, core.Note{ID: "2", Title: "Taxes", Text: "due", Tags: []core.Tag{work}}))

	svc := core.NewService(repo, nil)
	m := New(ctx, svc, WithMarkdownStyle("notty"))
	reload(m)
	return m, svc
}

func reload(m *Model) {
	m.Update(m.load()())
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	save  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func send(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func visibleIDs(m *Model) []string {
	ids := make([]string, 0, len(m.cards))
	for _, c := range m.cards {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestModel_Search(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, []string{"1", "2"}, visibleIDs(m))

	send(m, runes("/"), runes("tax"))
	assert.True(t, m.searching)
	assert.Equal(t, []string{"2"}, visibleIDs(m))

	// "q" while searching is text, not quit.
	send(m, runes("q"))
	assert.Empty(t, m.cards)
	assert.Contains(t, m.View(), listing.EmptyMessage)

	send(m, enter, runes("c"))
	assert.False(t, m.searching)
	assert.Equal(t, []string{"1", "2"}, visibleIDs(m))
}

func TestModel_TagFilterAndEditor(t *testing.T) {
	m, svc := newTestModel(t)

	send(m, runes("t"))
	require.Equal(t, screenTags, m.screen)
	assert.True(t, m.list.TagEditorOpen())

	send(m, space)
	assert.Equal(t, []string{"1"}, visibleIDs(m))

	// Rename keeps the filter matching.
	send(m, runes("r"))
	require.True(t, m.renaming)
	m.rename.SetValue("house")
	send(m, enter)
	reload(m)
	assert.Equal(t, []string{"1"}, visibleIDs(m))
	assert.Equal(t, "house", m.cards[0].Tags[0].Label)

	// Delete detaches the tag everywhere and clears it from the filter.
	send(m, runes("d"))
	reload(m)
	assert.Equal(t, []string{"1", "2"}, visibleIDs(m))
	assert.Empty(t, m.cards[0].Tags)

	reg, err := svc.Registry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())

	send(m, esc)
	assert.Equal(t, screenList, m.screen)
	assert.False(t, m.list.TagEditorOpen())
}

func TestModel_CreateNote(t *testing.T) {
	m, svc := newTestModel(t)

	send(m, runes("n"))
	require.Equal(t, screenForm, m.screen)

	send(m, runes("Ideas"), save)
	assert.Equal(t, screenForm, m.screen, "blank text blocks submit")
	assert.Equal(t, "Title and text are required.", m.status)

	send(m, tab, runes("rust"))
	send(m, tab, runes("l"), space) // select "work"
	send(m, tab, runes("later"), enter)
	assert.Equal(t, `Tag "later" created`, m.status)

	send(m, save)
	assert.Equal(t, screenList, m.screen)
	reload(m)

	notes, err := svc.Notes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 3)
	var created core.Note
	for _, n := range notes {
		if n.Title == "Ideas" {
			created = n
		}
	}
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "rust", created.Text)
	assert.Equal(t, core.DefaultColor, created.BackgroundColor)
	require.Len(t, created.Tags, 2)
	assert.Equal(t, "work", created.Tags[0].Label)
	assert.Equal(t, "later", created.Tags[1].Label)
}

func TestModel_EditAndDelete(t *testing.T) {
	m, svc := newTestModel(t)
	ctx := context.Background()

	send(m, runes("j"), runes("e"))
	require.Equal(t, screenForm, m.screen)
	assert.Equal(t, "Taxes", m.title.Value())

	send(m, tea.KeyMsg{Type: tea.KeyCtrlO}, runes("!"), save)
	reload(m)

	n, err := svc.Note(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Taxes!", n.Title)
	assert.Equal(t, "#F6FAFF", n.BackgroundColor)
	assert.Equal(t, []core.Tag{work}, n.Tags)

	send(m, runes("d"))
	reload(m)
	assert.Equal(t, []string{"1"}, visibleIDs(m))
	_, err = svc.Note(ctx, "2")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestModel_NoteView(t *testing.T) {
	m, _ := newTestModel(t)

	send(m, enter)
	require.Equal(t, screenNote, m.screen)
	assert.Equal(t, "1", m.current.ID)
	assert.Contains(t, m.View(), "milk")

	send(m, esc)
	assert.Equal(t, screenList, m.screen)
}

func TestModel_WatchReload(t *testing.T) {
	m, svc := newTestModel(t)
	_, err := svc.Submit(context.Background(), "", core.NoteData{Title: "Later", Text: "x"})
	require.NoError(t, err)

	_, cmd := m.Update(eventMsg(core.Event{Type: core.EventCreate, ID: "x"}))
	require.NotNil(t, cmd)
	reload(m)
	assert.Len(t, m.cards, 3)
}
