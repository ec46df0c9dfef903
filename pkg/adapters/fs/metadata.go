package fs

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/jotter/internal/atomicfile"
	"github.com/aretw0/jotter/pkg/core"
)

// metadataVersion is the schema version written by Save.
// Version 1 documents predate cursor positions and are migrated on load.
const metadataVersion = 2

// metadataRecord is the persisted shape of one store entry.
type metadataRecord struct {
	Name           string `yaml:"name"`
	FontSize       int    `yaml:"font_size"`
	FontFamily     string `yaml:"font_family"`
	CursorPosition int    `yaml:"cursor_position"`
}

// metadataDocument is the persisted shape of the whole store.
type metadataDocument struct {
	Version int              `yaml:"version"`
	Count   int              `yaml:"count"`
	Notes   []metadataRecord `yaml:"notes"`
}

// legacyRecord is the version 1 entry shape, without a cursor position.
type legacyRecord struct {
	Name       string `yaml:"name"`
	FontSize   int    `yaml:"font_size"`
	FontFamily string `yaml:"font_family"`
}

type legacyDocument struct {
	Version int            `yaml:"version"`
	Count   int            `yaml:"count"`
	Notes   []legacyRecord `yaml:"notes"`
}

// MetadataStore implements core.MetadataStore as a single YAML file.
type MetadataStore struct {
	Path    string
	entries map[string]*core.NoteMetadata
	logger  *slog.Logger

	mu        sync.RWMutex
	loaded    bool
	migrated  bool
	lastSaved *time.Time
}

// NewMetadataStore creates a store persisted at path. Nothing is read until LoadOrCreate.
func NewMetadataStore(path string, logger *slog.Logger) *MetadataStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MetadataStore{
		Path:    path,
		entries: make(map[string]*core.NoteMetadata),
		logger:  logger,
	}
}

// LoadOrCreate reads the store from disk. A missing file yields an empty store
// that is written immediately; an undecodable one is reported as core.ErrCorruptStore.
func (s *MetadataStore) LoadOrCreate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		s.entries = make(map[string]*core.NoteMetadata)
		s.loaded = true
		s.logger.Debug("metadata store created", "path", s.Path)
		return s.saveLocked()
	}
	if err != nil {
		return fmt.Errorf("failed to read metadata store: %w", err)
	}

	entries, version, err := decodeMetadata(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", core.ErrCorruptStore, s.Path, err)
	}

	s.entries = entries
	s.loaded = true

	if version < metadataVersion {
		s.logger.Info("migrating metadata store", "path", s.Path, "from", version, "to", metadataVersion)
		s.migrated = true
		return s.saveLocked()
	}
	return nil
}

// Save replaces the persisted store with the in-memory entries.
// Entries are written in name order, so unchanged state yields identical bytes.
func (s *MetadataStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *MetadataStore) saveLocked() error {
	data, err := encodeMetadata(s.entries)
	if err != nil {
		return fmt.Errorf("failed to encode metadata store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("failed to create metadata directory: %w", err)
	}

	if err := atomicfile.WriteFile(s.Path, data, 0644); err != nil {
		return err
	}

	now := time.Now()
	s.lastSaved = &now
	return nil
}

func encodeMetadata(entries map[string]*core.NoteMetadata) ([]byte, error) {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)

	doc := metadataDocument{
		Version: metadataVersion,
		Count:   len(names),
		Notes:   make([]metadataRecord, 0, len(names)),
	}
	for _, name := range names {
		m := entries[name]
		doc.Notes = append(doc.Notes, metadataRecord{
			Name:           name,
			FontSize:       m.FontSize,
			FontFamily:     m.FontFamily,
			CursorPosition: m.CursorPosition,
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeMetadata parses a persisted store and returns its entries and schema version.
func decodeMetadata(data []byte) (map[string]*core.NoteMetadata, int, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, 0, errors.New("empty document")
	}

	var header struct {
		Version int `yaml:"version"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return nil, 0, err
	}

	var records []metadataRecord
	switch header.Version {
	case 1:
		var doc legacyDocument
		if err := decodeStrict(data, &doc); err != nil {
			return nil, 0, err
		}
		for _, r := range doc.Notes {
			records = append(records, metadataRecord{Name: r.Name, FontSize: r.FontSize, FontFamily: r.FontFamily})
		}
	case metadataVersion:
		var doc metadataDocument
		if err := decodeStrict(data, &doc); err != nil {
			return nil, 0, err
		}
		if doc.Count != len(doc.Notes) {
			return nil, 0, fmt.Errorf("count %d does not match %d entries", doc.Count, len(doc.Notes))
		}
		records = doc.Notes
	default:
		return nil, 0, fmt.Errorf("unsupported version %d", header.Version)
	}

	entries := make(map[string]*core.NoteMetadata, len(records))
	for i, r := range records {
		if r.Name == "" {
			return nil, 0, fmt.Errorf("entry %d has no name", i)
		}
		if _, dup := entries[r.Name]; dup {
			return nil, 0, fmt.Errorf("duplicate entry %q", r.Name)
		}
		entries[r.Name] = &core.NoteMetadata{
			FontFamily:     r.FontFamily,
			FontSize:       r.FontSize,
			CursorPosition: r.CursorPosition,
		}
	}
	return entries, header.Version, nil
}

func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}

// Add stores metadata under name, replacing any previous entry.
func (s *MetadataStore) Add(name string, metadata *core.NoteMetadata) {
	if metadata == nil {
		metadata = core.DefaultMetadata()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[name] = metadata
}

// Remove deletes the entry for name, if any.
func (s *MetadataStore) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, name)
}

// Contains reports whether name has an entry.
func (s *MetadataStore) Contains(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[name]
	return ok
}

// Get returns the entry for name. The pointer is shared with the store.
func (s *MetadataStore) Get(name string) (*core.NoteMetadata, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.entries[name]
	return m, ok
}

// Clear removes every entry in memory.
func (s *MetadataStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*core.NoteMetadata)
}

// Count returns the number of entries.
func (s *MetadataStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// RemoveMissing removes entries that are not in the valid set.
func (s *MetadataStore) RemoveMissing(valid []string) int {
	keep := make(map[string]bool, len(valid))
	for _, name := range valid {
		keep[name] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for name := range s.entries {
		if !keep[name] {
			delete(s.entries, name)
			removed++
		}
	}
	return removed
}

func (s *MetadataStore) DistinctFonts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fonts := make([]string, 0, 1)
	for _, m := range s.entries {
		if !slices.Contains(fonts, m.FontFamily) {
			fonts = append(fonts, m.FontFamily)
		}
	}
	slices.Sort(fonts)
	return fonts
}

func (s *MetadataStore) DistinctFontSizes() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sizes := make([]int, 0, 1)
	for _, m := range s.entries {
		if !slices.Contains(sizes, m.FontSize) {
			sizes = append(sizes, m.FontSize)
		}
	}
	slices.Sort(sizes)
	return sizes
}

func (s *MetadataStore) SetFontForAll(font string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.entries {
		m.FontFamily = font
	}
}

func (s *MetadataStore) SetFontSizeForAll(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.entries {
		m.FontSize = size
	}
}

var _ core.MetadataStore = (*MetadataStore)(nil)
