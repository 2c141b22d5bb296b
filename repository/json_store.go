package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// JSONStore keeps a whole collection as one JSON array file.
// Every write rewrites the file; the mutex guards the read-modify-write cycle.
type JSONStore[T any] struct {
	mu    sync.Mutex
	path  string
	keyOf func(T) string
}

func NewJSONStore[T any](path string, keyOf func(T) string) *JSONStore[T] {
	return &JSONStore[T]{path: path, keyOf: keyOf}
}

func (s *JSONStore[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load()
	if err != nil {
		return zero, err
	}
	if i := s.indexOf(rows, key); i >= 0 {
		return rows[i], nil
	}
	return zero, ErrNotFound
}

func (s *JSONStore[T]) Insert(ctx context.Context, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load()
	if err != nil {
		return err
	}
	if s.indexOf(rows, s.keyOf(v)) >= 0 {
		return ErrDuplicate
	}
	return s.save(append(rows, v))
}

// ListAll returns records in insertion order.
func (s *JSONStore[T]) ListAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *JSONStore[T]) Update(ctx context.Context, key string, fn func(*T) error) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load()
	if err != nil {
		return zero, err
	}
	i := s.indexOf(rows, key)
	if i < 0 {
		return zero, ErrNotFound
	}

	cur := rows[i]
	if err := fn(&cur); err != nil {
		if errors.Is(err, ErrUnchanged) {
			return rows[i], nil
		}
		return zero, err
	}
	rows[i] = cur
	if err := s.save(rows); err != nil {
		return zero, err
	}
	return cur, nil
}

func (s *JSONStore[T]) indexOf(rows []T, key string) int {
	for i := range rows {
		if s.keyOf(rows[i]) == key {
			return i
		}
	}
	return -1
}

func (s *JSONStore[T]) ensure() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return os.WriteFile(s.path, []byte("[]"), 0o644)
	} else if err != nil {
		return err
	}
	return nil
}

// load degrades a malformed file to an empty collection; the next write replaces it.
func (s *JSONStore[T]) load() ([]T, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("malformed store file, reading as empty")
		return []T{}, nil
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func (s *JSONStore[T]) save(rows []T) error {
	raw, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
