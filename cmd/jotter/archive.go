package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive [name]",
	Short: "Move a note into the archive",
	Long:  `Move a note into the archive subdirectory. Archiving a name twice keeps both files.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService()

		note := findNote(ctx, svc, args[0])
		path, err := svc.Archive(ctx, note)
		if err != nil {
			fatal("Failed to archive note", err)
		}

		fmt.Printf("Note '%s' archived to %s\n", note.Name, path)
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}
