package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/tagnote"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Initialize a tagnote vault",
	Long:  `Create the vault directory, its .tagnote system directory and an empty tag registry.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := vaultPath()
		if len(args) == 1 {
			dir = args[0]
		}

		repo, err := tagnote.Init(dir, tagnote.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize vault", err)
		}

		ctx := context.Background()
		tags, err := repo.LoadTags(ctx)
		if err != nil {
			fatal("Failed to read tags", err)
		}
		// Writing the registry leaves a tags.yaml marker even in an empty vault.
		if err := repo.SaveTags(ctx, tags); err != nil {
			fatal("Failed to write tags", err)
		}

		fmt.Println("Initialized tagnote vault in", dir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
