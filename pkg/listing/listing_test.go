package listing_test

import (
	"context"
	"testing"

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

func cardIDs(cards []listing.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

// seed stores the two notes used across the scenarios and returns the service.
func seed(t *testing.T) (*core.Service, context.Context) {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewRepository()
	require.NoError(t, repo.SaveTags(ctx, []core.Tag{home, work}))
	require.NoError(t, repo.Save(ctx, core.Note{ID: "1", Title: "Groceries", Text: "milk", Tags: []core.Tag{home}}))
	require.NoError(t, repo.Save(ctx, core.Note{ID: "2", Title: "Taxes", Text: "due", Tags: []core.Tag{work}}))
	return core.NewService(repo, nil), ctx
}

func visible(t *testing.T, svc *core.Service, ctx context.Context, l *listing.List) []listing.Card {
	t.Helper()
	notes, err := svc.Notes(ctx)
	require.NoError(t, err)
	reg, err := svc.Registry(ctx)
	require.NoError(t, err)
	return l.Visible(notes, reg)
}

func TestList_Scenarios(t *testing.T) {
	svc, ctx := seed(t)
	cb := svc.Callbacks(ctx, "")
	l := listing.New(listing.Hooks{OnUpdateTag: cb.OnUpdateTag, OnDeleteTag: cb.OnDeleteTag})

	l.SetQuery("tax")
	assert.Equal(t, []string{"2"}, cardIDs(visible(t, svc, ctx, l)))

	l.SetQuery("")
	require.NoError(t, l.SelectOptions([]core.Option{{Label: "home", Value: "t1"}}))
	assert.Equal(t, []string{"1"}, cardIDs(visible(t, svc, ctx, l)))

	// Rename through the tag editor; the same selection still matches.
	l.OpenTagEditor()
	require.NoError(t, l.RenameTag("t1", "house"))
	require.NoError(t, l.SelectOptions([]core.Option{{Label: "house", Value: "t1"}}))
	cards := visible(t, svc, ctx, l)
	assert.Equal(t, []string{"1"}, cardIDs(cards))
	assert.Equal(t, "house", cards[0].Tags[0].Label)
	assert.Equal(t, []core.Option{{Label: "house", Value: "t1"}}, l.Selected())
}

func TestList_DeleteSelectedTag(t *testing.T) {
	svc, ctx := seed(t)
	cb := svc.Callbacks(ctx, "")
	l := listing.New(listing.Hooks{OnUpdateTag: cb.OnUpdateTag, OnDeleteTag: cb.OnDeleteTag})

	l.ToggleTag(home)
	assert.True(t, l.IsSelected("t1"))
	require.NoError(t, l.DeleteTag("t1"))
	assert.False(t, l.IsSelected("t1"))

	cards := visible(t, svc, ctx, l)
	assert.Equal(t, []string{"1", "2"}, cardIDs(cards))
	assert.Empty(t, cards[0].Tags)
}

func TestList_StaleSelectionIsDropped(t *testing.T) {
	svc, ctx := seed(t)
	l := listing.New(listing.Hooks{})
	l.ToggleTag(home)

	// Registry loses the tag behind the list's back.
	require.NoError(t, svc.DeleteTag(ctx, "t1"))

	require.NotPanics(t, func() {
		assert.Len(t, visible(t, svc, ctx, l), 2)
	})
	assert.Empty(t, l.Selected())
}

func TestList_TagEditorVisibility(t *testing.T) {
	l := listing.New(listing.Hooks{})
	assert.False(t, l.TagEditorOpen())
	l.OpenTagEditor()
	assert.True(t, l.TagEditorOpen())
	l.CloseTagEditor()
	assert.False(t, l.TagEditorOpen())
}

func TestList_ClearFilters(t *testing.T) {
	l := listing.New(listing.Hooks{})
	l.SetQuery("x")
	l.ToggleTag(work)
	l.ClearFilters()
	assert.Equal(t, "", l.Query())
	assert.Empty(t, l.Selected())
}

func TestMemo(t *testing.T) {
	var m listing.Memo
	notes := []core.Note{{ID: "1", Title: "Groceries", Tags: []core.Tag{home}}}

	first := m.Filter(notes, "gro", nil)
	second := m.Filter(notes, "gro", nil)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, m.Hits())

	// Changing a tag label of the input invalidates the cache.
	notes[0].Tags[0].Label = "house"
	third := m.Filter(notes, "gro", nil)
	assert.Equal(t, "house", third[0].Tags[0].Label)
	assert.Equal(t, 1, m.Hits())

	assert.Empty(t, m.Filter(notes, "tax", nil))
}
