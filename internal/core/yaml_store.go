package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// maxYAMLFileSize caps solbench.yml and answer files at 1 MB.
// An answers file for ten thousand contracts is well under that.
const maxYAMLFileSize = 1 << 20

// YAMLStore reads and writes one YAML document of type T.
type YAMLStore[T any] struct {
	dir          string
	filename     string
	allowMissing bool // missing file loads as the zero value
}

// NewYAMLStore creates a store for dir/filename.
func NewYAMLStore[T any](dir, filename string, allowMissing bool) *YAMLStore[T] {
	return &YAMLStore[T]{
		dir:          dir,
		filename:     filename,
		allowMissing: allowMissing,
	}
}

// NewYAMLStoreAt creates a store for an explicit file path.
func NewYAMLStoreAt[T any](path string, allowMissing bool) *YAMLStore[T] {
	return NewYAMLStore[T](filepath.Dir(path), filepath.Base(path), allowMissing)
}

// Path returns the full file path
func (s *YAMLStore[T]) Path() string {
	return filepath.Join(s.dir, s.filename)
}

// Exists reports whether the file is present.
func (s *YAMLStore[T]) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

// Load reads and unmarshals the file into T.
func (s *YAMLStore[T]) Load() (T, error) {
	var result T

	info, err := os.Stat(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && s.allowMissing {
			return result, nil
		}
		return result, err
	}
	if info.Size() > maxYAMLFileSize {
		return result, fmt.Errorf("%s exceeds maximum size (%d bytes > %d byte limit)", s.filename, info.Size(), maxYAMLFileSize)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		return result, err
	}

	if err := yaml.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("invalid %s: %w", s.filename, err)
	}

	return result, nil
}

// Save marshals T and writes it, creating the directory if needed.
func (s *YAMLStore[T]) Save(data T) error {
	bytes, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", s.filename, err)
	}

	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", s.dir, err)
		}
	}

	if err := os.WriteFile(s.Path(), bytes, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.filename, err)
	}

	return nil
}
