package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/tagnote"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tagnote",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tagnote version %s\n", strings.TrimSpace(tagnote.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
