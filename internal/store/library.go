// Package store persists swatch state as JSON files: the palette library,
// the shared keyword set, and in-progress form drafts. All writes go
// through a temp file and an atomic rename.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/swatchkit/swatch/internal/palette"
	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

// Library manages palette persistence. Palettes are kept newest-first:
// Add prepends.
type Library struct {
	path     string
	mu       sync.RWMutex
	version  string
	palettes []palette.Palette
}

// NewLibrary creates a Library instance and loads it from disk. A missing
// file yields an empty library.
func NewLibrary(path string) (*Library, error) {
	l := &Library{
		path:    path,
		version: storeVersion,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, swatcherrors.NewStoreError("mkdir", dir, err)
	}

	if err := l.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		l.palettes = []palette.Palette{}
	}

	return l, nil
}

// Load reads the library from disk.
func (l *Library) Load() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if err != nil {
		return err
	}

	var file libraryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return swatcherrors.NewStoreError("parse", l.path, err)
	}

	l.version = file.Version
	l.palettes = file.Palettes
	if l.palettes == nil {
		l.palettes = []palette.Palette{}
	}

	return nil
}

// Save writes the library to disk atomically.
func (l *Library) Save() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	file := libraryFile{
		Version:  l.version,
		Palettes: l.palettes,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return swatcherrors.NewStoreError("marshal", l.path, err)
	}

	return writeAtomic(l.path, data)
}

// List returns all palettes, newest first. The result is a copy.
func (l *Library) List() []palette.Palette {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]palette.Palette, len(l.palettes))
	for i, p := range l.palettes {
		result[i] = p.Clone()
	}
	return result
}

// Len returns the number of stored palettes.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.palettes)
}

// Get retrieves a palette by ID.
func (l *Library) Get(id string) (palette.Palette, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, p := range l.palettes {
		if p.ID == id {
			return p.Clone(), nil
		}
	}

	return palette.Palette{}, swatcherrors.NewNotFoundError("palette", id)
}

// Add prepends a new palette so the library stays in newest-first order.
func (l *Library) Add(p palette.Palette) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.palettes {
		if existing.ID == p.ID {
			return fmt.Errorf("palette with ID %s already exists", p.ID)
		}
	}

	l.palettes = append([]palette.Palette{p}, l.palettes...)
	return nil
}

// Replace swaps the stored palette with the same ID for the given one.
// Edits are full replacement; ID and CreatedAt never change.
func (l *Library) Replace(p palette.Palette) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, existing := range l.palettes {
		if existing.ID == p.ID {
			l.palettes[i] = p
			return nil
		}
	}

	return swatcherrors.NewNotFoundError("palette", p.ID)
}

// Remove deletes a palette from the library. The keyword set is left
// untouched: keywords are a shared vocabulary, not palette-owned.
func (l *Library) Remove(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, p := range l.palettes {
		if p.ID == id {
			l.palettes = append(l.palettes[:i], l.palettes[i+1:]...)
			return nil
		}
	}

	return swatcherrors.NewNotFoundError("palette", id)
}

// ReplaceAll swaps the entire library content. Used by import.
func (l *Library) ReplaceAll(palettes []palette.Palette) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.palettes = make([]palette.Palette, len(palettes))
	copy(l.palettes, palettes)
}

func writeAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return swatcherrors.NewStoreError("write", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return swatcherrors.NewStoreError("rename", path, err)
	}

	return nil
}
