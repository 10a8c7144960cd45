// Package tagnote is the composition root for tagnote, a tagged Markdown
// notes store.
//
// It connects the core domain (notes, the tag registry and the filter
// engine in pkg/core) with the storage adapters (pkg/adapters/fs and
// pkg/adapters/memory). Presentation state lives in pkg/form and
// pkg/listing; pkg/tui drives both from a terminal.
//
// Notes reference tags by identifier. Renaming a tag touches only the
// registry; deleting one detaches it from every note that used it.
//
// Usage:
//
//	svc, err := tagnote.New("./notes", tagnote.WithLogger(logger))
//
//	note, err := svc.Submit(ctx, "", tagnote.NoteData{
//		Title: "Groceries",
//		Text:  "- milk",
//	})
//
//	notes, _ := svc.Notes(ctx)
//	visible := tagnote.FilterNotes(notes, "gro", nil)
package tagnote
