package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/tagnote/pkg/tui"
)

var tuiStyle string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and edit notes in the terminal",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		err := tui.Run(ctx, svc,
			tui.WithMarkdownStyle(tuiStyle),
			tui.WithDefaultColor(cfg.DefaultColor),
			tui.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("TUI failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().StringVar(&tuiStyle, "style", "dark", "Markdown style for the note view (dark, light, notty)")
}
