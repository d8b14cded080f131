package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/daystreak/internal/models"
)

type fileStore struct {
	Version int                         `json:"version"`
	Records map[string]models.DayRecord `json:"records"`
}

type JSONStore struct {
	path  string
	store *fileStore
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = emptyStore()
	return s.save()
}

func (s *JSONStore) Load() (map[string]models.DayRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// A fresh session simply starts empty.
			s.store = emptyStore()
			return s.store.Records, nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	store := &fileStore{}
	if err := json.Unmarshal(data, store); err != nil {
		s.store = emptyStore()
		return s.store.Records, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if store.Records == nil {
		store.Records = make(map[string]models.DayRecord)
	}

	s.store = store
	return s.store.Records, nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) SaveRecord(rec models.DayRecord) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Records[rec.Day] = rec
	return s.save()
}

func (s *JSONStore) DeleteRecord(day string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	delete(s.store.Records, day)
	return s.save()
}

// Clear drops every record and persists the empty collection. Unlike
// the record writes, this always rewrites the file so that a reset
// survives even if no further mutation ever happens.
func (s *JSONStore) Clear() error {
	s.store = emptyStore()
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func emptyStore() *fileStore {
	return &fileStore{
		Version: 1,
		Records: make(map[string]models.DayRecord),
	}
}
