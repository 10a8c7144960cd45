package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/aretw0/tagnote/pkg/core"
)

// resolveTag finds a tag by identifier, falling back to its label when that
// label is unique in the registry.
func resolveTag(reg core.Registry, ref string) (core.Tag, error) {
	if t, ok := reg.Lookup(ref); ok {
		return t, nil
	}
	matches := reg.ByLabel(ref)
	switch len(matches) {
	case 0:
		return core.Tag{}, fmt.Errorf("tag %q: %w", ref, core.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, m.ID)
		}
		return core.Tag{}, fmt.Errorf("label %q is ambiguous, use one of: %s", ref, strings.Join(ids, ", "))
	}
}

func resolveTags(reg core.Registry, refs []string) ([]core.Tag, error) {
	tags := make([]core.Tag, 0, len(refs))
	for _, ref := range refs {
		t, err := resolveTag(reg, ref)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func labels(tags []core.Tag) string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Label)
	}
	return strings.Join(out, ", ")
}

func renderNotes(w io.Writer, notes []core.Note) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "TITLE", "TAGS", "COLOR"})
	for _, n := range notes {
		table.Append([]string{n.ID, n.Title, labels(n.Tags), n.BackgroundColor})
	}
	table.Render()
}

// renderTags prints the registry with the number of notes using each tag.
func renderTags(w io.Writer, reg core.Registry, notes []core.Note) {
	usage := tagUsage(notes)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "LABEL", "NOTES"})
	for _, t := range reg.Tags() {
		table.Append([]string{t.ID, t.Label, fmt.Sprint(usage[t.ID])})
	}
	table.Render()
}

func tagUsage(notes []core.Note) map[string]int {
	usage := make(map[string]int)
	for _, n := range notes {
		for _, t := range n.Tags {
			usage[t.ID]++
		}
	}
	return usage
}
