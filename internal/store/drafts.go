package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

// DraftKeyCreate is the draft key for the create form. Edit forms use
// DraftKeyEdit + the palette ID.
const (
	DraftKeyCreate = "create"
	DraftKeyEdit   = "edit:"
)

// DraftStore persists interrupted form sessions so typed input survives an
// abort. A draft is cleared on successful submit.
type DraftStore struct {
	path    string
	mu      sync.RWMutex
	version string
	drafts  map[string]Draft
}

// NewDraftStore creates a DraftStore instance and loads it from disk.
func NewDraftStore(path string) (*DraftStore, error) {
	s := &DraftStore{
		path:    path,
		version: storeVersion,
		drafts:  make(map[string]Draft),
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

// Load reads drafts from disk.
func (s *DraftStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file draftFile
	if err := json.Unmarshal(data, &file); err != nil {
		return swatcherrors.NewStoreError("parse", s.path, err)
	}

	s.version = file.Version
	s.drafts = file.Drafts
	if s.drafts == nil {
		s.drafts = make(map[string]Draft)
	}

	return nil
}

// Save writes drafts to disk atomically.
func (s *DraftStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file := draftFile{
		Version: s.version,
		Drafts:  s.drafts,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return swatcherrors.NewStoreError("marshal", s.path, err)
	}

	return writeAtomic(s.path, data)
}

// Get retrieves the draft for a form key.
func (s *DraftStore) Get(key string) (Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.drafts[key]
	return d, ok
}

// Set stores the draft for a form key, stamping the save time.
func (s *DraftStore) Set(key string, fields map[string]string, slotCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[key] = Draft{
		Fields:    fields,
		SlotCount: slotCount,
		SavedAt:   time.Now().UTC(),
	}
}

// Clear removes the draft for a form key.
func (s *DraftStore) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, key)
}
