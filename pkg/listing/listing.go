// Package listing holds the state of the note list screen: the search box,
// the tag filter and the tag editor.
package listing

import (
	"fmt"

	"github.com/aretw0/tagnote/pkg/core"
)

// EmptyMessage is shown when no note passes the filter.
const EmptyMessage = "No notes available."

// Hooks connect the tag editor to the tag registry.
type Hooks struct {
	OnUpdateTag func(id, label string) error
	OnDeleteTag func(id string) error
}

// Card is the projection of a note rendered in the list.
type Card struct {
	ID              string
	Title           string
	Text            string
	Tags            []core.Tag
	BackgroundColor string
}

func cardOf(n core.Note) Card {
	return Card{
		ID:              n.ID,
		Title:           n.Title,
		Text:            n.Text,
		Tags:            n.Tags,
		BackgroundColor: n.BackgroundColor,
	}
}

// List is the local state of the note list.
type List struct {
	hooks      Hooks
	query      string
	selected   []core.Tag
	editorOpen bool
	memo       Memo
}

// New creates an empty list state.
func New(hooks Hooks) *List {
	return &List{hooks: hooks}
}

func (l *List) SetQuery(q string) { l.query = q }
func (l *List) Query() string     { return l.query }

// SelectOptions replaces the tag filter with what the picker reports.
func (l *List) SelectOptions(opts []core.Option) error {
	tags, err := core.TagsFromOptions(opts)
	if err != nil {
		return err
	}
	l.selected = tags
	return nil
}

// Selected returns the tag filter as options.
func (l *List) Selected() []core.Option { return core.OptionsOf(l.selected) }

// ToggleTag adds t to the filter, or removes it if present.
func (l *List) ToggleTag(t core.Tag) {
	for i, s := range l.selected {
		if s.ID == t.ID {
			l.selected = append(l.selected[:i:i], l.selected[i+1:]...)
			return
		}
	}
	l.selected = append(l.selected, t)
}

// IsSelected reports whether id is part of the tag filter.
func (l *List) IsSelected(id string) bool {
	for _, s := range l.selected {
		if s.ID == id {
			return true
		}
	}
	return false
}

// ClearFilters resets the query and the tag selection.
func (l *List) ClearFilters() {
	l.query = ""
	l.selected = nil
}

// Visible resolves the notes against reg and returns the cards that pass the
// current query and tag filter, in input order. Selected tags that reg no
// longer knows are dropped from the filter first.
func (l *List) Visible(notes []core.Note, reg core.Registry) []Card {
	l.selected = reg.Resolve(l.selected)
	filtered := l.memo.Filter(core.Resolved(notes, reg), l.query, l.selected)
	cards := make([]Card, 0, len(filtered))
	for _, n := range filtered {
		cards = append(cards, cardOf(n))
	}
	return cards
}

// OpenTagEditor shows the tag editor.
func (l *List) OpenTagEditor() { l.editorOpen = true }

// CloseTagEditor hides the tag editor.
func (l *List) CloseTagEditor() { l.editorOpen = false }

// TagEditorOpen reports whether the tag editor is showing.
func (l *List) TagEditorOpen() bool { return l.editorOpen }

// RenameTag forwards a rename to the registry. Selection entries are keyed by
// id, so a renamed tag stays selected.
func (l *List) RenameTag(id, label string) error {
	if l.hooks.OnUpdateTag == nil {
		return nil
	}
	if err := l.hooks.OnUpdateTag(id, label); err != nil {
		return fmt.Errorf("failed to rename tag %s: %w", id, err)
	}
	for i := range l.selected {
		if l.selected[i].ID == id {
			l.selected[i].Label = label
		}
	}
	return nil
}

// DeleteTag forwards a deletion to the registry and drops the tag from the
// local filter.
func (l *List) DeleteTag(id string) error {
	if l.hooks.OnDeleteTag != nil {
		if err := l.hooks.OnDeleteTag(id); err != nil {
			return fmt.Errorf("failed to delete tag %s: %w", id, err)
		}
	}
	for i, s := range l.selected {
		if s.ID == id {
			l.selected = append(l.selected[:i:i], l.selected[i+1:]...)
			break
		}
	}
	return nil
}
