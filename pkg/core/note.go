package core

import (
	"fmt"
	"strings"
)

const (
	// DefaultFontFamily is used for notes that have no stored preference.
	DefaultFontFamily = "Arial"
	// DefaultFontSize is used for notes that have no stored preference.
	DefaultFontSize = 15

	// NoteExt is the extension of every note file.
	NoteExt = ".txt"
	// ArchiveDirName is the subdirectory of the notes directory holding archived notes.
	ArchiveDirName = "archive"
)

// AvailableFonts lists the font families offered to users.
var AvailableFonts = []string{"Arial", "Calibri", "Consolas", "Open Sans", "Roboto", "Verdana"}

// AvailableFontSizes lists the font sizes offered to users: 10 through 40, then 50 through 100 in steps of 10.
var AvailableFontSizes = availableFontSizes()

func availableFontSizes() []int {
	sizes := make([]int, 0, 37)
	for i := 10; i <= 40; i++ {
		sizes = append(sizes, i)
	}
	for i := 50; i <= 100; i += 10 {
		sizes = append(sizes, i)
	}
	return sizes
}

// NoteMetadata holds the display preferences of a single note.
type NoteMetadata struct {
	FontFamily     string `json:"font_family"`
	FontSize       int    `json:"font_size"`
	CursorPosition int    `json:"cursor_position"`
}

// NewNoteMetadata returns metadata for the given font, falling back to the defaults for zero values.
func NewNoteMetadata(fontFamily string, fontSize int) *NoteMetadata {
	if strings.TrimSpace(fontFamily) == "" {
		fontFamily = DefaultFontFamily
	}
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	return &NoteMetadata{
		FontFamily: fontFamily,
		FontSize:   fontSize,
	}
}

// DefaultMetadata returns metadata using the default font family and size.
func DefaultMetadata() *NoteMetadata {
	return NewNoteMetadata(DefaultFontFamily, DefaultFontSize)
}

// Note is the central entity of the domain: a text document backed by one file.
//
// Metadata is shared with the metadata store entry of the same name, so
// store-wide font changes are visible through every loaded note.
type Note struct {
	Name     string        `json:"name"`
	FilePath string        `json:"path"`
	Text     string        `json:"text"`
	Metadata *NoteMetadata `json:"metadata"`

	// IsDirty is set by callers when Text changes. The persistence layer only reads it.
	IsDirty bool `json:"-"`
}

// FindNote returns the note whose name matches name case-insensitively.
func FindNote(notes []*Note, name string) (*Note, error) {
	name = strings.TrimSpace(name)
	for _, n := range notes {
		if strings.EqualFold(n.Name, name) {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func metadataOf(n *Note) *NoteMetadata {
	if n.Metadata == nil {
		n.Metadata = DefaultMetadata()
	}
	return n.Metadata
}
