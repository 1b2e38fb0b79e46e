// Package store persists small client-side files. The note collection
// itself is never persisted; the server is the source of truth and every
// page fetches on entry.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// UIState is what the terminal UI remembers between runs.
type UIState struct {
	LastPage    string `json:"last_page,omitempty"`
	LastLabelID int64  `json:"last_label_id,omitempty"`
}

type UIStateStore interface {
	Load() (UIState, error)
	Save(state UIState) error
}

type FileUIStateStore struct {
	path string
	mu   sync.Mutex
}

func NewFileUIStateStore(path string) *FileUIStateStore {
	return &FileUIStateStore{path: path}
}

// Load returns the zero state when no file exists yet.
func (s *FileUIStateStore) Load() (UIState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var state UIState
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return state, nil
		}
		return state, err
	}
	if len(data) == 0 {
		return state, nil
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return UIState{}, err
	}
	return state, nil
}

func (s *FileUIStateStore) Save(state UIState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSONAtomic(s.path, state)
}

func writeJSONAtomic(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	file, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(file.Name())
	}()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return os.Rename(file.Name(), path)
}
