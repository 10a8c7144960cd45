package core

import "strings"

// FilterNotes returns the notes whose title contains query (case-insensitive)
// and that carry every selected tag. Matching is by tag identifier only.
// An empty query or an empty selection matches everything.
//
// The result preserves the order of notes. The input is never modified and
// no registry lookup happens, so a note referencing a deleted tag is simply
// unmatched by that tag.
func FilterNotes(notes []Note, query string, selected []Tag) []Note {
	q := strings.ToLower(query)
	ids := selectedIDs(selected)

	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if matchesLower(n.Title, q) && hasAll(n, ids) {
			out = append(out, n)
		}
	}
	return out
}

// MatchesQuery reports whether title contains query, ignoring case.
func MatchesQuery(title, query string) bool {
	return matchesLower(title, strings.ToLower(query))
}

// HasAllTags reports whether n carries every tag in selected.
func HasAllTags(n Note, selected []Tag) bool {
	return hasAll(n, selectedIDs(selected))
}

func matchesLower(title, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), lowerQuery)
}

func selectedIDs(selected []Tag) map[string]struct{} {
	ids := make(map[string]struct{}, len(selected))
	for _, t := range selected {
		ids[t.ID] = struct{}{}
	}
	return ids
}

func hasAll(n Note, ids map[string]struct{}) bool {
	if len(ids) == 0 {
		return true
	}
	have := make(map[string]struct{}, len(n.Tags))
	for _, t := range n.Tags {
		have[t.ID] = struct{}{}
	}
	for id := range ids {
		if _, ok := have[id]; !ok {
			return false
		}
	}
	return true
}
