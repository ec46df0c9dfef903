package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jotter/pkg/core"
)

var (
	createFont string
	createSize int
	createText string
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a note",
	Long:  `Create an empty note. Names are unique regardless of case.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService()

		// Loading first makes sure the directory and store exist.
		if _, err := svc.LoadAll(ctx); err != nil {
			fatal("Failed to load notes", err)
		}

		note, err := svc.Create(ctx, args[0], createFont, createSize)
		if err != nil {
			fatal("Failed to create note", err)
		}

		if createText != "" {
			note.Text = createText
			if err := svc.SaveAll(ctx, []*core.Note{note}); err != nil {
				fatal("Failed to write note", err)
			}
		}

		fmt.Printf("Note '%s' created at %s\n", note.Name, note.FilePath)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createFont, "font", "", "Font family (default Arial)")
	createCmd.Flags().IntVar(&createSize, "size", 0, "Font size (default 15)")
	createCmd.Flags().StringVar(&createText, "text", "", "Initial content")
}
