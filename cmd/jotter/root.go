package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/jotter"
	"github.com/aretw0/jotter/pkg/core"
)

var (
	verbose         bool
	notesDir        string
	storePath       string
	preferencesPath string
	unsafe          bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jotter",
	Short: "Plain-text notes with per-note fonts",
	Long: `Jotter keeps notes as plain .txt files in a directory of your choice.
Font and cursor preferences live in a metadata store next to your settings,
reconciled with the notes directory every time notes are loaded.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
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
	rootCmd.PersistentFlags().StringVarP(&notesDir, "notes-dir", "d", "", "Notes directory for this run (default from preferences)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Metadata store file")
	rootCmd.PersistentFlags().StringVar(&preferencesPath, "config", "", "Preferences file")
	rootCmd.PersistentFlags().BoolVar(&unsafe, "unsafe", false, "Use real paths even under go run")
}

// openService wires the service from the global flags.
func openService() *core.Service {
	opts := []jotter.Option{
		jotter.WithLogger(slog.Default()),
		jotter.WithDevSafety(!unsafe),
	}
	if notesDir != "" {
		opts = append(opts, jotter.WithNotesDirectory(notesDir))
	}
	if storePath != "" {
		opts = append(opts, jotter.WithStorePath(storePath))
	}
	if preferencesPath != "" {
		opts = append(opts, jotter.WithPreferencesPath(preferencesPath))
	}

	svc, err := jotter.New(opts...)
	if err != nil {
		fatal("Failed to initialize jotter", err)
	}
	return svc
}

// findNote loads every note and returns the one named name.
func findNote(ctx context.Context, svc *core.Service, name string) *core.Note {
	note, err := svc.Find(ctx, name)
	if err != nil {
		fatal("Failed to find note", err)
	}
	return note
}
