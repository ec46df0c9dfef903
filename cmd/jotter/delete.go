package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a note",
	Long:  `Delete a note file and its metadata permanently.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService()

		note := findNote(ctx, svc, args[0])
		if err := svc.Delete(ctx, note); err != nil {
			fatal("Failed to delete note", err)
		}

		fmt.Printf("Note '%s' deleted.\n", note.Name)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
