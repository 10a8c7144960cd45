package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tagnote"
	"github.com/aretw0/tagnote/internal/config"
	"github.com/aretw0/tagnote/pkg/core"
)

var (
	verbose    bool
	vaultFlag  string
	configFile string
	readOnly   bool

	cfg = config.Default()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tagnote",
	Short: "Tagged Markdown notes",
	Long: `tagnote keeps Markdown notes in a directory, one file per note,
with a shared registry of tags. Notes can be filtered by title and tags.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loaded, err := config.Load(configFile)
		if err != nil {
			fatal("Failed to load config", err)
		}
		cfg = loaded

		level, _ := cfg.Level()
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&vaultFlag, "vault", "", "Vault directory (default: config vault, searched upwards)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.config/tagnote/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Open the vault without write access")
}

// vaultPath picks the flag over the configured vault.
func vaultPath() string {
	if vaultFlag != "" {
		return vaultFlag
	}
	return cfg.Vault
}

// openService locates the vault above vaultPath and opens it.
func openService() *core.Service {
	root, err := tagnote.FindVaultRoot(vaultPath())
	if err != nil {
		fatal("Not a tagnote vault (run 'tagnote init')", err)
	}

	svc, err := tagnote.New(root,
		tagnote.WithMustExist(true),
		tagnote.WithReadOnly(readOnly || cfg.ReadOnly),
		tagnote.WithLogger(slog.Default()),
	)
	if err != nil {
		fatal("Failed to open vault", err)
	}
	return svc
}
