package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tagnote/pkg/core"
)

var (
	listJSON  bool
	listTitle string
	listTags  []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, optionally filtered by title and tags",
	Long: `List prints every note whose title contains --title (case-insensitive)
and that carries every --tag. Tags are given by id, or by label when the label is unique.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		ctx := context.Background()

		reg, err := svc.Registry(ctx)
		if err != nil {
			fatal("Failed to load tags", err)
		}
		selected, err := resolveTags(reg, listTags)
		if err != nil {
			fatal("Invalid tag filter", err)
		}

		notes, err := svc.Notes(ctx)
		if err != nil {
			fatal("Failed to list notes", err)
		}
		filtered := core.FilterNotes(notes, listTitle, selected)

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if len(filtered) == 0 {
			fmt.Println("No notes available.")
			return
		}
		renderNotes(os.Stdout, filtered)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listTitle, "title", "", "Filter by title substring")
	listCmd.Flags().StringArrayVar(&listTags, "tag", nil, "Filter by tag id or label (repeatable)")
}
