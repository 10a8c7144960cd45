package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tagnote/pkg/adapters/fs"
	"github.com/aretw0/tagnote/pkg/core"
)

func setupRepo(t *testing.T) (*fs.Repository, string) {
	t.Helper()
	tmpDir := t.TempDir()
	repo := fs.NewRepository(fs.Config{Path: tmpDir})
	require.NoError(t, repo.Initialize(context.Background()))
	return repo, tmpDir
}

func TestRepository_CRUD(t *testing.T) {
	repo, dir := setupRepo(t)
	ctx := context.Background()

	note := core.Note{
		ID:              "01HZX",
		Title:           "Groceries",
		Text:            "- milk\n- eggs\n",
		Tags:            []core.Tag{{ID: "t1", Label: "home"}},
		BackgroundColor: "#F6FAFF",
	}
	require.NoError(t, repo.Save(ctx, note))
	assert.FileExists(t, filepath.Join(dir, "01HZX.md"))

	got, err := repo.Get(ctx, "01HZX")
	require.NoError(t, err)
	assert.Equal(t, note, got)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, note, list[0])

	require.NoError(t, repo.Delete(ctx, "01HZX"))
	_, err = repo.Get(ctx, "01HZX")
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "01HZX"), core.ErrNotFound)
}

func TestRepository_ListUsesFreshContent(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, core.Note{ID: "a", Title: "one", Text: "x"}))
	require.NoError(t, repo.Save(ctx, core.Note{ID: "b", Title: "two", Text: "y"}))

	first, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	require.NoError(t, repo.Save(ctx, core.Note{ID: "a", Title: "uno", Text: "x"}))
	require.NoError(t, repo.Delete(ctx, "b"))

	second, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "uno", second[0].Title)
}

func TestRepository_ListSkipsForeignFiles(t *testing.T) {
	repo, dir := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hi"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.md"), []byte("hi"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain.md"), []byte("just text"), 0644))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "plain", list[0].ID)
	assert.Equal(t, "just text", list[0].Text)
}

func TestRepository_Tags(t *testing.T) {
	repo, dir := setupRepo(t)
	ctx := context.Background()

	tags, err := repo.LoadTags(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)

	want := []core.Tag{{ID: "t1", Label: "home"}, {ID: "t2", Label: "home"}}
	require.NoError(t, repo.SaveTags(ctx, want))
	assert.FileExists(t, filepath.Join(dir, fs.TagsFile))

	tags, err = repo.LoadTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, tags)
}

func TestRepository_InvalidIDs(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	for _, id := range []string{"", "../escape", "a/b", ".hidden"} {
		err := repo.Save(ctx, core.Note{ID: id, Title: "t", Text: "b"})
		assert.Error(t, err, "id %q", id)
	}
}

func TestRepository_ReadOnly(t *testing.T) {
	_, dir := setupRepo(t)
	ctx := context.Background()

	rw := fs.NewRepository(fs.Config{Path: dir})
	require.NoError(t, rw.Save(ctx, core.Note{ID: "a", Title: "t", Text: "b"}))

	ro := fs.NewRepository(fs.Config{Path: dir, ReadOnly: true})
	require.NoError(t, ro.Initialize(ctx))

	assert.ErrorIs(t, ro.Save(ctx, core.Note{ID: "b", Title: "t", Text: "b"}), core.ErrReadOnly)
	assert.ErrorIs(t, ro.Delete(ctx, "a"), core.ErrReadOnly)
	assert.ErrorIs(t, ro.SaveTags(ctx, nil), core.ErrReadOnly)

	list, err := ro.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRepository_MustExist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	repo := fs.NewRepository(fs.Config{Path: missing, MustExist: true})
	assert.Error(t, repo.Initialize(context.Background()))
}

func TestRepository_WithService(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	svc := core.NewService(repo, nil)

	home := core.Tag{ID: "t1", Label: "home"}
	work := core.Tag{ID: "t2", Label: "work"}
	require.NoError(t, svc.AddTag(ctx, home))
	require.NoError(t, svc.AddTag(ctx, work))

	n1, err := svc.Submit(ctx, "", core.NoteData{Title: "Groceries", Text: "b", Tags: []core.Tag{home}})
	require.NoError(t, err)
	n2, err := svc.Submit(ctx, "", core.NoteData{Title: "Budget", Text: "b", Tags: []core.Tag{home, work}})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateTag(ctx, "t1", "house"))
	require.NoError(t, svc.DeleteTag(ctx, "t2"))

	notes, err := svc.Notes(ctx)
	require.NoError(t, err)
	got := []string{notes[0].ID, notes[1].ID}
	want := []string{n1.ID, n2.ID}
	sort.Strings(want)
	assert.Equal(t, want, got)

	for _, n := range notes {
		assert.Equal(t, []core.Tag{{ID: "t1", Label: "house"}}, n.Tags)
	}

	// The cascade rewrote the file itself, not just the view.
	raw, err := repo.Get(ctx, n2.ID)
	require.NoError(t, err)
	assert.False(t, raw.HasTag("t2"))
}

func TestRepository_State(t *testing.T) {
	repo, dir := setupRepo(t)
	state, ok := repo.State().(fs.RepositoryState)
	require.True(t, ok)
	assert.Equal(t, dir, state.Path)
	assert.Equal(t, fs.DefaultSystemDir, state.SystemDir)
	assert.Equal(t, "fs", repo.ComponentType())
}
