package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tagnote/pkg/core"
	"github.com/aretw0/tagnote/pkg/form"
)

var (
	noteTitle   string
	noteText    string
	noteTags    []string
	noteNewTags []string
	noteColor   string
)

// readText returns s, or stdin when s is "-".
func readText(s string) (string, error) {
	if s != "-" {
		return s, nil
	}
	b, err := io.ReadAll(os.Stdin)
	return string(b), err
}

// fillForm applies the flags that were set on cmd to f.
func fillForm(cmd *cobra.Command, f *form.Form, reg core.Registry) error {
	flags := cmd.Flags()
	if flags.Changed("title") {
		f.SetTitle(noteTitle)
	}
	if flags.Changed("text") {
		text, err := readText(noteText)
		if err != nil {
			return fmt.Errorf("failed to read text: %w", err)
		}
		f.SetText(text)
	}
	if flags.Changed("tag") {
		tags, err := resolveTags(reg, noteTags)
		if err != nil {
			return err
		}
		if err := f.SelectOptions(core.OptionsOf(tags)); err != nil {
			return err
		}
	}
	for _, label := range noteNewTags {
		if _, err := f.CreateOption(label); err != nil {
			return err
		}
	}
	if flags.Changed("color") {
		if err := f.SetColor(noteColor); err != nil {
			return err
		}
	}
	return nil
}

// submitNote runs the note form for id (empty for a new note) and returns
// the stored note.
func submitNote(cmd *cobra.Command, id string) (core.Note, error) {
	svc := openService()
	ctx := context.Background()

	reg, err := svc.Registry(ctx)
	if err != nil {
		return core.Note{}, err
	}

	initial := core.NoteData{BackgroundColor: cfg.DefaultColor}
	if id != "" {
		n, err := svc.Note(ctx, id)
		if err != nil {
			return core.Note{}, err
		}
		initial = n.Data()
	}

	var saved core.Note
	cb := svc.Callbacks(ctx, id)
	f := form.New(reg, initial, form.Hooks{
		OnSubmit: func(d core.NoteData) error {
			saved, err = svc.Submit(ctx, id, d)
			return err
		},
		OnAddTag: cb.OnAddTag,
	})
	if err := fillForm(cmd, f, reg); err != nil {
		return core.Note{}, err
	}
	if err := f.Submit(); err != nil {
		if errors.Is(err, form.ErrIncomplete) {
			return core.Note{}, fmt.Errorf("%w (use --title and --text)", err)
		}
		return core.Note{}, err
	}
	return saved, nil
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note",
	Long:  `Create a note from flags. Pass --text - to read the body from stdin.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		n, err := submitNote(cmd, "")
		if err != nil {
			fatal("Failed to create note", err)
		}
		fmt.Printf("Note created: %s\n", n.ID)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note",
	Long:  `Edit replaces only the fields given as flags. --tag replaces the whole tag selection.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := submitNote(cmd, args[0])
		if err != nil {
			fatal("Failed to edit note", err)
		}
		fmt.Printf("Note updated: %s\n", n.ID)
	},
}

func init() {
	for _, c := range []*cobra.Command{newCmd, editCmd} {
		rootCmd.AddCommand(c)
		c.Flags().StringVar(&noteTitle, "title", "", "Note title")
		c.Flags().StringVar(&noteText, "text", "", "Note body in Markdown, or - for stdin")
		c.Flags().StringArrayVar(&noteTags, "tag", nil, "Tag id or label (repeatable)")
		c.Flags().StringArrayVar(&noteNewTags, "new-tag", nil, "Create a tag with this label and attach it (repeatable)")
		c.Flags().StringVar(&noteColor, "color", "", "Background color from the palette")
	}
}
