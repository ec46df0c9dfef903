package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/jotter/pkg/core"
)

var (
	writeContent string
	writeCursor  int
)

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write [name]",
	Short: "Replace the content of a note",
	Long: `Replace the content of a note with --content, or with stdin when --content is omitted.
Only the changed note is written; the metadata store is rebuilt from every loaded note.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService()

		content := writeContent
		if !cmd.Flags().Changed("content") {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			content = string(data)
		}

		notes, err := svc.LoadAll(ctx)
		if err != nil {
			fatal("Failed to load notes", err)
		}
		note, err := core.FindNote(notes, args[0])
		if err != nil {
			fatal("Failed to find note", err)
		}

		note.Text = content
		note.IsDirty = true
		if cmd.Flags().Changed("cursor") {
			note.Metadata.CursorPosition = writeCursor
		} else {
			note.Metadata.CursorPosition = len([]rune(content))
		}

		if err := svc.SaveDirtyWithMetadata(ctx, notes); err != nil {
			fatal("Failed to save note", err)
		}

		fmt.Printf("Note '%s' saved.\n", note.Name)
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVar(&writeContent, "content", "", "Note content (default: read stdin)")
	writeCmd.Flags().IntVar(&writeCursor, "cursor", 0, "Cursor position to remember (default: end of text)")
}
