package papertrade

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultStoreKey is the record key the simulator persists its portfolio
// under, one record per user profile.
const DefaultStoreKey = "investifyxPortfolio"

// KV is the persistence boundary: a string key-value pair store scoped to
// the user profile. Get reports absence through its second return value;
// errors are reserved for an unreadable store.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MemKV is an in-memory KV, used in tests and for throwaway sessions.
type MemKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemKV returns an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{values: make(map[string]string)}
}

func (m *MemKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// FileKV stores each key as a JSON file in a directory.
type FileKV struct {
	dir string
}

// NewFileKV returns a file-backed KV rooted at dir, creating the directory
// if needed.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create store directory %q: %w", dir, err)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileKV) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("could not read %q: %w", f.path(key), err)
	}
	return string(data), true, nil
}

func (f *FileKV) Set(key, value string) error {
	if err := os.WriteFile(f.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", f.path(key), err)
	}
	return nil
}

// Store owns the persisted portfolio. It is the sole writer to the KV; the
// model assumes exactly one logical writer at a time (concurrent writers
// would be last-writer-wins on Save).
type Store struct {
	kv  KV
	key string
}

// NewStore returns a store persisting under the given key. An empty key
// falls back to DefaultStoreKey.
func NewStore(kv KV, key string) *Store {
	if key == "" {
		key = DefaultStoreKey
	}
	return &Store{kv: kv, key: key}
}

// Load reads the persisted portfolio. An absent or corrupt record degrades
// to the default fresh portfolio; only an unreadable store is an error.
func (s *Store) Load() (*Portfolio, error) {
	value, ok, err := s.kv.Get(s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !ok {
		return NewPortfolio(), nil
	}
	p, err := DecodePortfolio(strings.NewReader(value))
	if err != nil {
		log.Printf("warning, discarding corrupt portfolio record %q: %v", s.key, err)
		return NewPortfolio(), nil
	}
	return p, nil
}

// Save persists the full portfolio state, overwriting the prior record.
func (s *Store) Save(p *Portfolio) error {
	var buf bytes.Buffer
	if err := EncodePortfolio(&buf, p); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := s.kv.Set(s.key, buf.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Reset constructs, persists and returns the default portfolio, discarding
// all prior holdings and transactions.
func (s *Store) Reset() (*Portfolio, error) {
	p := NewPortfolio()
	if err := s.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}
