package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/jotter/pkg/core"
)

var (
	fontsFamily string
	fontsSize   int
)

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "Show the font shared by all notes",
	Long:  `Show the font family and size shared by all notes, or "mixed" when notes differ.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		if _, err := svc.LoadAll(context.Background()); err != nil {
			fatal("Failed to load notes", err)
		}

		family := "mixed"
		if font, ok := svc.FontThatAllNotesUse(); ok {
			family = font
		}
		size := "mixed"
		if s, ok := svc.FontSizeThatAllNotesUse(); ok {
			size = strconv.Itoa(s)
		}

		fmt.Printf("family: %s\nsize:   %s\n", family, size)
	},
}

var fontsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Apply a font to every note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if fontsFamily == "" && fontsSize == 0 {
			fatal("Nothing to set", fmt.Errorf("--family or --size is required"))
		}
		if fontsFamily != "" && !slices.Contains(core.AvailableFonts, fontsFamily) {
			fatal("Unknown font family", fmt.Errorf("%q is not one of %v", fontsFamily, core.AvailableFonts))
		}
		if fontsSize != 0 && !slices.Contains(core.AvailableFontSizes, fontsSize) {
			fatal("Unsupported font size", fmt.Errorf("%d", fontsSize))
		}

		ctx := context.Background()
		svc := openService()
		if _, err := svc.LoadAll(ctx); err != nil {
			fatal("Failed to load notes", err)
		}

		if fontsFamily != "" {
			svc.SetFontForAll(fontsFamily)
		}
		if fontsSize != 0 {
			svc.SetFontSizeForAll(fontsSize)
		}
		if err := svc.SaveMetadata(ctx); err != nil {
			fatal("Failed to save metadata", err)
		}

		fmt.Println("Font applied to all notes.")
	},
}

var fontsAvailableCmd = &cobra.Command{
	Use:   "available",
	Short: "List the font families and sizes offered",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range core.AvailableFonts {
			fmt.Println(f)
		}
		fmt.Println(core.AvailableFontSizes)
	},
}

func init() {
	rootCmd.AddCommand(fontsCmd)
	fontsCmd.AddCommand(fontsSetCmd)
	fontsCmd.AddCommand(fontsAvailableCmd)
	fontsSetCmd.Flags().StringVar(&fontsFamily, "family", "", "Font family")
	fontsSetCmd.Flags().IntVar(&fontsSize, "size", 0, "Font size")
}
