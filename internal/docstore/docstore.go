// Package docstore persists small settings documents as whole JSON snapshots.
//
// A Store reads the snapshot on every Load, so callers always see the latest
// saved value. Fields missing from the persisted JSON keep their defaults.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mmynk/drinkorder/internal/storage"
)

// Keys of the documents persisted by the service.
const (
	KeyDrinkOptions = "drink-options"
	KeySiteSettings = "site-settings"
)

// Store loads and saves one JSON document of type T.
type Store[T any] struct {
	backend  storage.DocumentStore
	key      string
	defaults func() *T
}

// New returns a Store for the document under key. defaults is called for
// every Load and must return a fresh value.
func New[T any](backend storage.DocumentStore, key string, defaults func() *T) *Store[T] {
	return &Store[T]{backend: backend, key: key, defaults: defaults}
}

// Load returns the persisted document, or the defaults when none was saved.
func (s *Store[T]) Load(ctx context.Context) (*T, error) {
	value := s.defaults()

	data, err := s.backend.GetDocument(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return value, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", s.key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.key, err)
	}
	return value, nil
}

// Save replaces the persisted document.
func (s *Store[T]) Save(ctx context.Context, value *T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.key, err)
	}
	if err := s.backend.PutDocument(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.key, err)
	}
	return nil
}

// Reset removes any customization by saving the defaults.
func (s *Store[T]) Reset(ctx context.Context) (*T, error) {
	value := s.defaults()
	if err := s.Save(ctx, value); err != nil {
		return nil, err
	}
	return value, nil
}
