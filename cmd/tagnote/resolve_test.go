package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tagnote/pkg/core"
)

func TestResolveTag(t *testing.T) {
	reg := core.NewRegistry([]core.Tag{
		{ID: "t1", Label: "home"},
		{ID: "t2", Label: "work"},
		{ID: "t3", Label: "work"},
	})

	got, err := resolveTag(reg, "t1")
	require.NoError(t, err)
	assert.Equal(t, "home", got.Label)

	got, err = resolveTag(reg, "home")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)

	_, err = resolveTag(reg, "work")
	assert.ErrorContains(t, err, "ambiguous")

	_, err = resolveTag(reg, "nope")
	assert.ErrorIs(t, err, core.ErrNotFound)

	tags, err := resolveTags(reg, []string{"t2", "home"})
	require.NoError(t, err)
	assert.Equal(t, []string{"t2", "t1"}, []string{tags[0].ID, tags[1].ID})
}

func TestRenderNotes(t *testing.T) {
	var buf bytes.Buffer
	renderNotes(&buf, []core.Note{{
		ID:    "01",
		Title: "Groceries",
		Tags:  []core.Tag{{ID: "t1", Label: "home"}, {ID: "t2", Label: "errand"}},
	}})

	out := buf.String()
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "home, errand")
}

func TestRenderTags(t *testing.T) {
	reg := core.NewRegistry([]core.Tag{{ID: "t1", Label: "home"}, {ID: "t2", Label: "work"}})
	notes := []core.Note{
		{ID: "1", Tags: []core.Tag{{ID: "t1"}}},
		{ID: "2", Tags: []core.Tag{{ID: "t1"}, {ID: "t2"}}},
	}

	var buf bytes.Buffer
	renderTags(&buf, reg, notes)
	assert.Contains(t, buf.String(), "LABEL")
	assert.Equal(t, map[string]int{"t1": 2, "t2": 1}, tagUsage(notes))
}
