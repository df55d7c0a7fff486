package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// JSONFileStore keeps the distance cache as one flat, human-readable JSON object
// mapping cache keys to kilometers.
type JSONFileStore struct {
	Path string
}

func NewJSONFileStore(path string) *JSONFileStore {
	return &JSONFileStore{Path: path}
}

// Load reads the snapshot. A missing or empty file is an empty cache.
func (s *JSONFileStore) Load(ctx context.Context) (map[string]float64, error) {
	if strings.TrimSpace(s.Path) == "" {
		return nil, errors.New("json cache: path must not be empty")
	}

	b, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]float64{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("json cache: read %q: %w", s.Path, err)
	}

	if len(strings.TrimSpace(string(b))) == 0 {
		return map[string]float64{}, nil
	}

	out := map[string]float64{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("json cache: parse %q: %w", s.Path, err)
	}

	return out, nil
}

// Save replaces the file contents with entries.
// The snapshot is written to a sibling temp file and renamed into place.
func (s *JSONFileStore) Save(ctx context.Context, entries map[string]float64) error {
	if strings.TrimSpace(s.Path) == "" {
		return errors.New("json cache: path must not be empty")
	}
	if entries == nil {
		entries = map[string]float64{}
	}

	payload, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("json cache: encode: %w", err)
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("json cache: create temp file in %q: %w", dir, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("json cache: write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("json cache: close %q: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("json cache: replace %q: %w", s.Path, err)
	}

	return nil
}
