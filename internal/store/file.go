package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store backed by a single JSON document mapping player IDs to
// saved games. Meant for the single-user terminal client.
type File struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *File { return &File{path: path} }

// DefaultFilePath is kluro/save.json under the user config directory.
func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "kluro", "save.json"), nil
}

func (f *File) Save(ctx context.Context, playerID string, s Saved) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	all, err := f.read()
	if err != nil {
		return err
	}
	all[playerID] = s
	b, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(f.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (f *File) Load(ctx context.Context, playerID string) (Saved, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all, err := f.read()
	if err != nil {
		return Saved{}, err
	}
	s, ok := all[playerID]
	if !ok {
		return Saved{}, ErrNotFound
	}
	return s, nil
}

func (f *File) read() (map[string]Saved, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]Saved{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	all := map[string]Saved{}
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return all, nil
}
