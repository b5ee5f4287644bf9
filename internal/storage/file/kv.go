// Package file persists console state as a small JSON document on disk,
// the default session storage for a single operator machine.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"hotel_console/internal/adapters/observability"
)

type KV struct {
	path string
	mu   sync.Mutex
}

// New stores state under <home>/.hotel-console/state. An empty home falls
// back to the user's home directory.
func New(home string) (*KV, error) {
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
	}
	dir := filepath.Join(home, ".hotel-console")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return &KV{path: filepath.Join(dir, "state")}, nil
}

func (f *KV) Path() string { return f.path }

func (f *KV) Get(_ context.Context, name string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := m[name]
	if ok {
		observability.ObserveKV("file", "hit")
	} else {
		observability.ObserveKV("file", "miss")
	}
	return v, ok, nil
}

func (f *KV) Set(_ context.Context, name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.load()
	if err != nil {
		return err
	}
	m[name] = value
	observability.ObserveKV("file", "set")
	return f.save(m)
}

func (f *KV) Del(_ context.Context, names ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.load()
	if err != nil {
		return err
	}
	for _, n := range names {
		delete(m, n)
	}
	observability.ObserveKV("file", "del")
	if len(m) == 0 {
		if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove state file: %w", err)
		}
		return nil
	}
	return f.save(m)
}

func (f *KV) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	m := map[string]string{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}
	return m, nil
}

func (f *KV) save(m map[string]string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}
	// readers only ever see a complete file
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return os.Rename(tmp, f.path)
}
