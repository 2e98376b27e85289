// Package memory implements the slice-backed contact store.
package memory

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store keeps components in a slice addressed by position.
type Store struct {
	components []types.Component
	closed     bool
	log        *zap.SugaredLogger
}

// NewStore returns an empty store. A nil logger disables logging.
func NewStore(log *zap.SugaredLogger) *Store {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Store{log: log}
}

// Add appends c with a freshly generated ComponentID.
func (s *Store) Add(c types.Component) error {
	if s.closed {
		return types.ErrStoreClosed
	}
	if err := c.Validate(); err != nil {
		return err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generating UUID v7: %w", err)
	}
	c.ComponentID = id.String()
	s.components = append(s.components, c)
	s.log.Debugw("component added", "id", c.ComponentID, "kind", c.Kind.String(), "count", len(s.components))
	return nil
}

// EditByIndex replaces the component at index with c.
func (s *Store) EditByIndex(index int, c types.Component) error {
	if s.closed {
		return types.ErrStoreClosed
	}
	if !types.InRange(index, len(s.components)) {
		return types.ErrInvalidIndex
	}
	if err := c.Validate(); err != nil {
		return err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generating UUID v7: %w", err)
	}
	c.ComponentID = id.String()
	old := s.components[index].ComponentID
	s.components[index] = c
	s.log.Debugw("component replaced", "index", index, "old_id", old, "id", c.ComponentID)
	return nil
}

// DeleteByIndex removes the component at index and shifts later ones down.
func (s *Store) DeleteByIndex(index int) error {
	if s.closed {
		return types.ErrStoreClosed
	}
	if !types.InRange(index, len(s.components)) {
		return types.ErrInvalidIndex
	}
	id := s.components[index].ComponentID
	copy(s.components[index:], s.components[index+1:])
	s.components[len(s.components)-1] = types.Component{}
	s.components = s.components[:len(s.components)-1]
	s.log.Debugw("component deleted", "index", index, "id", id, "count", len(s.components))
	return nil
}

// ShowAll returns the listing entries in order.
func (s *Store) ShowAll() ([]types.Entry, error) {
	if s.closed {
		return nil, types.ErrStoreClosed
	}
	entries := make([]types.Entry, len(s.components))
	for i, c := range s.components {
		entries[i] = types.Entry{Ordinal: i + 1, Details: c.Details()}
	}
	return entries, nil
}

// Components returns a copy of the stored components.
func (s *Store) Components() ([]types.Component, error) {
	if s.closed {
		return nil, types.ErrStoreClosed
	}
	out := make([]types.Component, len(s.components))
	copy(out, s.components)
	return out, nil
}

// Count returns the number of stored components. A closed store is empty.
func (s *Store) Count() int {
	return len(s.components)
}

// Close drops all components. Idempotent.
func (s *Store) Close() error {
	s.components = nil
	s.closed = true
	return nil
}
