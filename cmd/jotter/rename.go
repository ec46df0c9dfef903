package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename [name] [new-name]",
	Short: "Rename a note",
	Long:  `Rename a note, keeping its font and cursor position. Changing only the case of a name is allowed.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService()

		note := findNote(ctx, svc, args[0])
		old := note.Name
		if _, err := svc.Update(ctx, args[1], note); err != nil {
			fatal("Failed to rename note", err)
		}

		fmt.Printf("Note '%s' renamed to '%s'\n", old, note.Name)
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
