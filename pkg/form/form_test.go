package form_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tagnote/pkg/core"
	"github.com/aretw0/tagnote/pkg/form"
)

var home = core.Tag{ID: "t1", Label: "home"}

type recorder struct {
	submitted []core.NoteData
	added     []core.Tag
	addErr    error
}

func (r *recorder) hooks() form.Hooks {
	return form.Hooks{
		OnSubmit: func(d core.NoteData) error {
			r.submitted = append(r.submitted, d)
			return nil
		},
		OnAddTag: func(t core.Tag) error {
			if r.addErr != nil {
				return r.addErr
			}
			r.added = append(r.added, t)
			return nil
		},
	}
}

func TestForm_SubmitBlockedUntilComplete(t *testing.T) {
	rec := &recorder{}
	f := form.New(core.NewRegistry(nil), core.NoteData{}, rec.hooks())

	assert.False(t, f.CanSubmit())
	assert.ErrorIs(t, f.Submit(), form.ErrIncomplete)

	f.SetTitle("Groceries")
	f.SetText("   ")
	assert.ErrorIs(t, f.Submit(), form.ErrIncomplete)
	assert.Empty(t, rec.submitted)

	f.SetText("- milk")
	require.NoError(t, f.Submit())
	require.Len(t, rec.submitted, 1)
	assert.Equal(t, core.NoteData{
		Title:           "Groceries",
		Text:            "- milk",
		Tags:            []core.Tag{},
		BackgroundColor: core.DefaultColor,
	}, normalize(rec.submitted[0]))
}

func normalize(d core.NoteData) core.NoteData {
	if d.Tags == nil {
		d.Tags = []core.Tag{}
	}
	return d
}

func TestForm_PrefilledForEdit(t *testing.T) {
	rec := &recorder{}
	initial := core.NoteData{Title: "Taxes", Text: "due", Tags: []core.Tag{home}, BackgroundColor: "#EDFFEE"}
	f := form.New(core.NewRegistry([]core.Tag{home}), initial, rec.hooks())

	assert.Equal(t, "#EDFFEE", f.Color())
	assert.Equal(t, []core.Option{{Label: "home", Value: "t1"}}, f.Selected())

	require.NoError(t, f.Submit())
	assert.Equal(t, initial, rec.submitted[0])
}

func TestForm_CreateOption(t *testing.T) {
	rec := &recorder{}
	f := form.New(core.NewRegistry([]core.Tag{home}), core.NoteData{Tags: []core.Tag{home}}, rec.hooks())

	tag, err := f.CreateOption("ideas")
	require.NoError(t, err)
	assert.NotEmpty(t, tag.ID)
	assert.Equal(t, []core.Tag{tag}, rec.added, "new tag must reach the registry")
	assert.Equal(t, []core.Tag{home, tag}, f.SelectedTags(), "and the selection")

	_, err = f.CreateOption("  ")
	assert.ErrorIs(t, err, core.ErrEmptyLabel)
}

func TestForm_CreateOptionHookFailure(t *testing.T) {
	rec := &recorder{addErr: errors.New("disk full")}
	f := form.New(core.NewRegistry(nil), core.NoteData{}, rec.hooks())

	_, err := f.CreateOption("ideas")
	assert.Error(t, err)
	assert.Empty(t, f.SelectedTags())
}

func TestForm_SelectOptions(t *testing.T) {
	f := form.New(core.NewRegistry([]core.Tag{home}), core.NoteData{}, form.Hooks{})

	require.NoError(t, f.SelectOptions(f.Options()))
	assert.Equal(t, []core.Tag{home}, f.SelectedTags())

	err := f.SelectOptions([]core.Option{{Label: "typed"}})
	assert.ErrorIs(t, err, core.ErrInvalidOption)
	assert.Equal(t, []core.Tag{home}, f.SelectedTags(), "invalid input leaves selection alone")

	f.Toggle(home)
	assert.Empty(t, f.SelectedTags())
	f.Toggle(home)
	assert.Equal(t, []core.Tag{home}, f.SelectedTags())
}

func TestForm_Colors(t *testing.T) {
	f := form.New(core.NewRegistry(nil), core.NoteData{}, form.Hooks{})

	assert.Len(t, form.ColorOptions(), 4)
	assert.ErrorIs(t, f.SetColor("#123456"), core.ErrInvalidColor)
	require.NoError(t, f.SetColor("#FEF9ED"))
	assert.Equal(t, core.DefaultColor, f.CycleColor(), "cycling wraps around")
	assert.Equal(t, "#F6FAFF", f.CycleColor())
}
