// Package form holds the state of the note editor.
//
// A Form collects a note's fields, lets the user pick tags from the registry
// or create new ones on the fly, and hands a complete core.NoteData to its
// OnSubmit hook. Submission is refused while the title or text is blank, so a
// partial note never leaves the form.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/tagnote/pkg/core"
)

// ErrIncomplete is returned by Submit while a required field is blank.
var ErrIncomplete = errors.New("title and text are required")

// Hooks connect the form to the note store and tag registry.
type Hooks struct {
	OnSubmit func(core.NoteData) error
	OnAddTag func(core.Tag) error
}

// Form is the editing state for a single note.
type Form struct {
	available core.Registry
	hooks     Hooks

	title    string
	text     string
	selected []core.Tag
	color    string
}

// New starts a form pre-filled with initial. A blank color falls back to
// core.DefaultColor.
func New(available core.Registry, initial core.NoteData, hooks Hooks) *Form {
	color := initial.BackgroundColor
	if color == "" {
		color = core.DefaultColor
	}
	return &Form{
		available: available,
		hooks:     hooks,
		title:     initial.Title,
		text:      initial.Text,
		selected:  append([]core.Tag(nil), initial.Tags...),
		color:     color,
	}
}

// SetAvailable swaps in a newer registry snapshot.
func (f *Form) SetAvailable(reg core.Registry) { f.available = reg }

func (f *Form) SetTitle(s string) { f.title = s }
func (f *Form) SetText(s string)  { f.text = s }

func (f *Form) Title() string { return f.title }
func (f *Form) Text() string  { return f.text }
func (f *Form) Color() string { return f.color }

// Options lists every registered tag as a selectable option.
func (f *Form) Options() []core.Option { return f.available.Options() }

// Selected returns the current tag selection as options.
func (f *Form) Selected() []core.Option { return core.OptionsOf(f.selected) }

// SelectedTags returns a copy of the current tag selection.
func (f *Form) SelectedTags() []core.Tag { return append([]core.Tag(nil), f.selected...) }

// SelectOptions replaces the selection with what the picker reports.
func (f *Form) SelectOptions(opts []core.Option) error {
	tags, err := core.TagsFromOptions(opts)
	if err != nil {
		return err
	}
	f.selected = tags
	return nil
}

// Toggle adds the tag to the selection, or removes it if already selected.
func (f *Form) Toggle(t core.Tag) {
	for i, s := range f.selected {
		if s.ID == t.ID {
			f.selected = append(f.selected[:i:i], f.selected[i+1:]...)
			return
		}
	}
	f.selected = append(f.selected, t)
}

// CreateOption registers a new tag labelled label and selects it. The tag
// reaches the registry through OnAddTag before it joins the selection; if the
// hook fails the selection is left untouched.
func (f *Form) CreateOption(label string) (core.Tag, error) {
	tag, err := core.NewTag(label)
	if err != nil {
		return core.Tag{}, err
	}
	if f.hooks.OnAddTag != nil {
		if err := f.hooks.OnAddTag(tag); err != nil {
			return core.Tag{}, fmt.Errorf("failed to add tag: %w", err)
		}
	}
	f.selected = append(f.selected, tag)
	return tag, nil
}

// ColorOptions returns the palette as selection options.
func ColorOptions() []core.Option {
	colors := core.Palette()
	opts := make([]core.Option, 0, len(colors))
	for _, c := range colors {
		opts = append(opts, core.Option{Label: c, Value: c})
	}
	return opts
}

// SetColor picks a background color from the palette.
func (f *Form) SetColor(value string) error {
	if !core.IsPaletteColor(value) {
		return fmt.Errorf("%q: %w", value, core.ErrInvalidColor)
	}
	f.color = value
	return nil
}

// CycleColor moves to the next palette color, wrapping around.
func (f *Form) CycleColor() string {
	colors := core.Palette()
	next := 0
	for i, c := range colors {
		if c == f.color {
			next = (i + 1) % len(colors)
			break
		}
	}
	f.color = colors[next]
	return f.color
}

// CanSubmit reports whether the required fields are filled in.
func (f *Form) CanSubmit() bool {
	return strings.TrimSpace(f.title) != "" && strings.TrimSpace(f.text) != ""
}

// Data assembles the current field state.
func (f *Form) Data() core.NoteData {
	return core.NoteData{
		Title:           f.title,
		Text:            f.text,
		Tags:            f.SelectedTags(),
		BackgroundColor: f.color,
	}
}

// Submit hands the assembled note to OnSubmit. Nothing is submitted while
// CanSubmit is false.
func (f *Form) Submit() error {
	if !f.CanSubmit() {
		return ErrIncomplete
	}
	if f.hooks.OnSubmit == nil {
		return nil
	}
	return f.hooks.OnSubmit(f.Data())
}
