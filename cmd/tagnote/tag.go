package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tagnote/pkg/core"
)

var tagJSON bool

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage the tag registry",
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered tags",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		ctx := context.Background()

		reg, err := svc.Registry(ctx)
		if err != nil {
			fatal("Failed to load tags", err)
		}

		if tagJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(reg.Tags()); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		notes, err := svc.Notes(ctx)
		if err != nil {
			fatal("Failed to list notes", err)
		}
		renderTags(os.Stdout, reg, notes)
	},
}

var tagAddCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Register a new tag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		t, err := core.NewTag(args[0])
		if err != nil {
			fatal("Invalid tag", err)
		}
		if err := svc.AddTag(context.Background(), t); err != nil {
			fatal("Failed to add tag", err)
		}
		fmt.Printf("Tag added: %s (%s)\n", t.Label, t.ID)
	},
}

var tagRenameCmd = &cobra.Command{
	Use:   "rename [id|label] [new-label]",
	Short: "Rename a tag; notes keep it",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		ctx := context.Background()

		reg, err := svc.Registry(ctx)
		if err != nil {
			fatal("Failed to load tags", err)
		}
		t, err := resolveTag(reg, args[0])
		if err != nil {
			fatal("Unknown tag", err)
		}
		if err := svc.UpdateTag(ctx, t.ID, args[1]); err != nil {
			fatal("Failed to rename tag", err)
		}
		fmt.Printf("Tag renamed: %s -> %s\n", t.Label, args[1])
	},
}

var tagDeleteCmd = &cobra.Command{
	Use:   "delete [id|label]",
	Short: "Delete a tag and remove it from every note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		ctx := context.Background()

		reg, err := svc.Registry(ctx)
		if err != nil {
			fatal("Failed to load tags", err)
		}
		t, err := resolveTag(reg, args[0])
		if err != nil {
			fatal("Unknown tag", err)
		}
		if err := svc.DeleteTag(ctx, t.ID); err != nil {
			fatal("Failed to delete tag", err)
		}
		fmt.Printf("Tag deleted: %s\n", t.Label)
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.AddCommand(tagListCmd, tagAddCmd, tagRenameCmd, tagDeleteCmd)
	tagListCmd.Flags().BoolVar(&tagJSON, "json", false, "Output in JSON format")
}
