package listing

import (
	"github.com/aretw0/tagnote/pkg/core"
)

// Memo remembers the last filter call and returns the same result while the
// inputs are unchanged. It only saves work; FilterNotes is pure either way.
type Memo struct {
	notes    []core.Note
	query    string
	selected []core.Tag
	result   []core.Note
	valid    bool
	hits     int
}

// Filter returns core.FilterNotes(notes, query, selected), reusing the
// previous result when all three inputs are equal to the last call's.
func (m *Memo) Filter(notes []core.Note, query string, selected []core.Tag) []core.Note {
	if m.valid && m.query == query && sameTags(m.selected, selected) && sameNotes(m.notes, notes) {
		m.hits++
		return m.result
	}
	m.notes = cloneNotes(notes)
	m.query = query
	m.selected = append([]core.Tag(nil), selected...)
	m.result = core.FilterNotes(notes, query, selected)
	m.valid = true
	return m.result
}

// Hits reports how many calls were served from the cache.
func (m *Memo) Hits() int { return m.hits }

func sameTags(a, b []core.Tag) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameNotes(a, b []core.Note) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if x.ID != y.ID || x.Title != y.Title || x.Text != y.Text ||
			x.BackgroundColor != y.BackgroundColor || !sameTags(x.Tags, y.Tags) {
			return false
		}
	}
	return true
}

func cloneNotes(notes []core.Note) []core.Note {
	out := make([]core.Note, len(notes))
	for i, n := range notes {
		n.Tags = append([]core.Tag(nil), n.Tags...)
		out[i] = n
	}
	return out
}
