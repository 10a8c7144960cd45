package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	showJSON bool
	showRaw  bool
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Long:  `Show renders a note's Markdown for the terminal. Use --raw for the plain body or --json for the full record.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		note, err := svc.Note(context.Background(), args[0])
		if err != nil {
			fatal("Failed to read note", err)
		}

		if showJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if showRaw {
			fmt.Print(note.Text)
			return
		}

		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
		if err != nil {
			fatal("Failed to create renderer", err)
		}
		md := fmt.Sprintf("# %s\n\n%s\n", note.Title, note.Text)
		if len(note.Tags) > 0 {
			md += fmt.Sprintf("\n---\n\n_Tags: %s_\n", labels(note.Tags))
		}
		out, err := r.Render(md)
		if err != nil {
			fatal("Failed to render note", err)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the Markdown body unrendered")
}
