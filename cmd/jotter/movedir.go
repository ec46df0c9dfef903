package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var moveDirCmd = &cobra.Command{
	Use:   "move-dir [directory]",
	Short: "Change the notes directory and move every note there",
	Long: `Point the preferences at a new notes directory and move every note file,
archived notes included, out of the previous one. Existing files in the new
directory are never overwritten.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if notesDir != "" && preferencesPath == "" {
			slog.Warn("--notes-dir is not saved to preferences; pass the new directory on later runs", "dir", args[0])
		}

		svc := openService()
		if err := svc.ChangeNotesDirectory(context.Background(), args[0]); err != nil {
			fatal("Failed to move notes", err)
		}

		fmt.Printf("Notes moved to %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(moveDirCmd)
}
