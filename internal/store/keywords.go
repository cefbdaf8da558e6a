package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/swatchkit/swatch/internal/palette"
	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

// KeywordStore persists the global keyword set. The set is shared across
// all palettes, created lazily, and never pruned when a palette is
// deleted.
type KeywordStore struct {
	path     string
	mu       sync.RWMutex
	version  string
	keywords []string
}

// NewKeywordStore creates a KeywordStore instance and loads it from disk.
func NewKeywordStore(path string) (*KeywordStore, error) {
	s := &KeywordStore{
		path:     path,
		version:  storeVersion,
		keywords: []string{},
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, swatcherrors.NewStoreError("mkdir", dir, err)
	}

	if err := s.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return s, nil
}

// Load reads the keyword set from disk.
func (s *KeywordStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file keywordFile
	if err := json.Unmarshal(data, &file); err != nil {
		return swatcherrors.NewStoreError("parse", s.path, err)
	}

	s.version = file.Version
	s.keywords = file.Keywords
	if s.keywords == nil {
		s.keywords = []string{}
	}

	return nil
}

// Save writes the keyword set to disk atomically.
func (s *KeywordStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file := keywordFile{
		Version:  s.version,
		Keywords: s.keywords,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return swatcherrors.NewStoreError("marshal", s.path, err)
	}

	return writeAtomic(s.path, data)
}

// Keywords returns the current set in insertion order. The result is a
// copy.
func (s *KeywordStore) Keywords() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, len(s.keywords))
	copy(result, s.keywords)
	return result
}

// Apply runs keyword reconciliation against the stored set and keeps the
// result in memory. added reports the addition tokens as typed. Call Save
// to persist.
func (s *KeywordStore) Apply(input string) (added []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, added := palette.Reconcile(s.keywords, input)
	s.keywords = next
	return added
}
