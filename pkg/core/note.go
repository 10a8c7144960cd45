package core

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// Note is the central entity of the domain.
// It represents a titled Markdown document with tags and an optional display color.
// Tags are copies; labels are refreshed from the Registry on read.
type Note struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Text            string `json:"text"`
	Tags            []Tag  `json:"tags"`
	BackgroundColor string `json:"background_color,omitempty"`
}

// NoteData is everything a note carries except its identity.
// It is what the note form submits.
type NoteData struct {
	Title           string `json:"title"`
	Text            string `json:"text"`
	Tags            []Tag  `json:"tags"`
	BackgroundColor string `json:"background_color,omitempty"`
}

// Data strips the identity from the note.
func (n Note) Data() NoteData {
	return NoteData{
		Title:           n.Title,
		Text:            n.Text,
		Tags:            append([]Tag(nil), n.Tags...),
		BackgroundColor: n.BackgroundColor,
	}
}

// TagIDs returns the identifiers of the note's tags, in order.
func (n Note) TagIDs() []string {
	ids := make([]string, 0, len(n.Tags))
	for _, t := range n.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// HasTag reports whether the note references id.
func (n Note) HasTag(id string) bool {
	for _, t := range n.Tags {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Validate checks the fields a note cannot be saved without.
func (d NoteData) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(d.Text) == "" {
		return ErrEmptyText
	}
	if d.BackgroundColor != "" && !IsPaletteColor(d.BackgroundColor) {
		return ErrInvalidColor
	}
	return nil
}

// NewNoteID returns a fresh, time-ordered note identifier.
func NewNoteID() string {
	return ulid.Make().String()
}

// Resolved returns a copy of the notes with every tag label refreshed
// from reg and unknown tags dropped.
func Resolved(notes []Note, reg Registry) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		n.Tags = reg.Resolve(n.Tags)
		out[i] = n
	}
	return out
}
