package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes, most recently modified first",
	Long: `List all notes of the notes directory.
Loading reconciles the metadata store: new files get the default font and
metadata of deleted files is pruned. An empty directory gets sample notes.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		notes, err := svc.LoadAll(context.Background())
		if err != nil {
			fatal("Failed to load notes", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, note := range notes {
			fmt.Printf("%s\t%s %d\n", note.Name, note.Metadata.FontFamily, note.Metadata.FontSize)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
