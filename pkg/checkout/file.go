package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the session slot as a JSON record at a fixed path,
// the closest Go equivalent of the mobile client's local key-value
// storage. An unreadable or unparseable record is reported as
// ErrNoSession; only infrastructure failures (permissions, I/O) surface
// as errors.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store writing to the given path. The parent
// directory is created on first Put.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Get(_ context.Context) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil || s.UserID == "" {
		// Corrupt or partially written record: treat as empty slot.
		return nil, ErrNoSession
	}
	return &s, nil
}

func (f *FileStore) Put(_ context.Context, session *Session) error {
	if session == nil || session.UserID == "" {
		return ErrInvalidSession
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	// Write-then-rename keeps a reader from ever seeing a torn record.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (f *FileStore) Delete(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
