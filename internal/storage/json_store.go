package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/zenone/internal/logger"
)

// jsonFile is the on-disk shape: the version marker plus the raw key-value
// pairs. Keeping values as raw JSON preserves the flat layout byte for byte.
type jsonFile struct {
	Version int                        `json:"version"`
	Data    map[string]json.RawMessage `json:"data"`
}

// JSONStore persists the key-value layout to a single JSON file. Every
// mutation rewrites the whole file, so a save is atomic from the caller's
// perspective.
type JSONStore struct {
	kvProvider
	path string
	file *jsonFile
}

func NewJSONStore(configPath string) *JSONStore {
	s := &JSONStore{path: configPath}
	s.kvProvider = kvProvider{kv: s}
	return s
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{Version: 1, Data: make(map[string]json.RawMessage)}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'zenone init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &jsonFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		// Malformed storage is treated as empty rather than fatal.
		logger.Warn("Storage file is malformed, starting from empty state", "path", s.path, "error", err)
		s.file = &jsonFile{Version: 1}
	}
	if s.file.Data == nil {
		s.file.Data = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) getRaw(key string) ([]byte, bool, error) {
	if s.file == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}
	value, ok := s.file.Data[key]
	return value, ok, nil
}

func (s *JSONStore) setRaw(key string, value []byte) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.file.Data[key] = value
	return s.save()
}

func (s *JSONStore) deleteRaw(key string) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}
	delete(s.file.Data, key)
	return s.save()
}
