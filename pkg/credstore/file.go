package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/studia-cl/studia-mobile/pkg/cryptox"
)

// FileStore persists credentials as a single JSON document. Writes go
// through a temp file and rename so a crash never leaves a torn file.
// With a Sealer attached, the document is encrypted at rest.
type FileStore struct {
	path   string
	sealer *cryptox.Sealer

	mu sync.Mutex
}

// FileOption configures a FileStore.
type FileOption func(*FileStore)

// WithSealer encrypts the credential file at rest.
func WithSealer(s *cryptox.Sealer) FileOption {
	return func(fs *FileStore) { fs.sealer = s }
}

// NewFileStore returns a store backed by the file at path. The parent
// directory is created if needed; the file itself is created on first write.
func NewFileStore(path string, opts ...FileOption) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("credstore: create data dir: %w", err)
	}

	fs := &FileStore{path: path}
	for _, opt := range opts {
		opt(fs)
	}
	return fs, nil
}

func (f *FileStore) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return "", err
	}

	v, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (f *FileStore) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return err
	}

	values[key] = value
	return f.save(values)
}

func (f *FileStore) Remove(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return err
	}

	for _, k := range keys {
		delete(values, k)
	}
	return f.save(values)
}

// load reads and decodes the credential file. A missing file is an empty set.
func (f *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("credstore: read %s: %w", f.path, err)
	}

	if f.sealer != nil {
		data, err = f.sealer.Open(data)
		if err != nil {
			return nil, fmt.Errorf("credstore: unseal %s: %w", f.path, err)
		}
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("credstore: decode %s: %w", f.path, err)
	}
	return values, nil
}

func (f *FileStore) save(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("credstore: encode: %w", err)
	}

	if f.sealer != nil {
		data, err = f.sealer.Seal(data)
		if err != nil {
			return fmt.Errorf("credstore: seal: %w", err)
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("credstore: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("credstore: rename %s: %w", tmp, err)
	}
	return nil
}
