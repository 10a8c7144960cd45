package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/tagnote/pkg/adapters/lifecycle"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print vault changes as they happen",
	Long:  `Watch prints one line per note created, modified or deleted, and per tag registry change, until interrupted.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		events, err := svc.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to watch vault", err)
		}

		src := lifecycle.NewSource(events)
		if err := src.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}
		for e := range src.Events() {
			fmt.Printf("%s %s\n", time.Now().Format(time.TimeOnly), e)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "", "Only report notes whose id matches this glob")
}
