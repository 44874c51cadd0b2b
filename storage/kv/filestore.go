package kv

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/eduflowhq/eduflow/core"
)

// FileStore is a core.KVStore backed by a single JSON document on an afero
// filesystem (the browser localStorage analog). The whole document is
// rewritten on every Set/Delete; an unreadable document or value is treated
// as empty, never surfaced as an error.
type FileStore struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

var _ core.KVStore = (*FileStore)(nil)

func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

func (s *FileStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.read()
	raw, ok := doc[key]
	return raw, ok
}

func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.read()
	doc[key] = value
	return s.write(doc)
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.read()
	if _, ok := doc[key]; !ok {
		return nil
	}
	delete(doc, key)
	return s.write(doc)
}

func (s *FileStore) read() map[string]json.RawMessage {
	doc := make(map[string]json.RawMessage)
	raw, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return doc
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		// corrupt store fails open to empty
		return make(map[string]json.RawMessage)
	}
	return doc
}

func (s *FileStore) write(doc map[string]json.RawMessage) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "serializing store")
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "creating store directory")
		}
	}
	if err := afero.WriteFile(s.fs, s.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "writing store")
	}
	return nil
}
