package jotter_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/jotter"
)

// Example_basic demonstrates loading notes from a fresh directory and creating one.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "jotter-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := jotter.New(
		jotter.WithNotesDirectory(filepath.Join(tmpDir, "notes")),
		jotter.WithStorePath(filepath.Join(tmpDir, "metadata.yaml")),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. An empty directory is seeded with sample notes.
	notes, err := svc.LoadAll(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, n := range notes {
		fmt.Println(n.Name)
	}

	// 2. Create a note with its own font.
	note, err := svc.Create(ctx, "groceries", "Consolas", 18)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s uses %s %d\n", note.Name, note.Metadata.FontFamily, note.Metadata.FontSize)

	// 3. Names are unique regardless of case.
	if _, err := svc.Create(ctx, "Groceries", "", 0); err != nil {
		fmt.Println("duplicate rejected")
	}
	// Output:
	// sample note 1
	// sample note 2
	// groceries uses Consolas 18
	// duplicate rejected
}

// Example_fonts demonstrates the font helpers used by a preferences dialog.
func Example_fonts() {
	tmpDir, err := os.MkdirTemp("", "jotter-fonts-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := jotter.New(
		jotter.WithNotesDirectory(filepath.Join(tmpDir, "notes")),
		jotter.WithStorePath(filepath.Join(tmpDir, "metadata.yaml")),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if _, err := svc.LoadAll(ctx); err != nil {
		log.Fatal(err)
	}

	font, ok := svc.FontThatAllNotesUse()
	fmt.Println(font, ok)

	if _, err := svc.Create(ctx, "code", "Consolas", 0); err != nil {
		log.Fatal(err)
	}
	_, ok = svc.FontThatAllNotesUse()
	fmt.Println("shared:", ok)

	svc.SetFontForAll("Roboto")
	if err := svc.SaveMetadata(ctx); err != nil {
		log.Fatal(err)
	}
	font, ok = svc.FontThatAllNotesUse()
	fmt.Println(font, ok)
	// Output:
	// Arial true
	// shared: false
	// Roboto true
}

func ExampleNextAvailableName() {
	tmpDir, err := os.MkdirTemp("", "jotter-names-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "journal.txt")
	fmt.Println(filepath.Base(jotter.NextAvailableName(path)))

	if err := os.WriteFile(path, nil, 0644); err != nil {
		log.Fatal(err)
	}
	fmt.Println(filepath.Base(jotter.NextAvailableName(path)))
	// Output:
	// journal.txt
	// journal (1).txt
}
