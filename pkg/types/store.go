package types

import (
	"errors"
	"strconv"
)

// Store is an ordered, index-addressed collection of components.
// Indices are 0-based; callers presenting positions to users add one.
// Implementations are not safe for concurrent use.
type Store interface {
	// Add appends c to the end of the store and assigns it a new ComponentID.
	Add(c Component) error

	// EditByIndex replaces the element at index with c. The old element is
	// discarded entirely; no fields are merged. Returns ErrInvalidIndex
	// without mutating when index is outside [0, Count).
	EditByIndex(index int, c Component) error

	// DeleteByIndex removes the element at index. Later elements shift down
	// by one. Returns ErrInvalidIndex without mutating when index is outside
	// [0, Count).
	DeleteByIndex(index int) error

	// ShowAll returns one Entry per element, in order, numbered from 1.
	// An empty store returns an empty slice.
	ShowAll() ([]Entry, error)

	// Components returns a copy of the stored components in order.
	Components() ([]Component, error)

	// Count returns the number of elements.
	Count() int

	// Close releases backend resources. Operations after Close return
	// ErrStoreClosed. Idempotent.
	Close() error
}

// Entry is one line of a ShowAll listing.
type Entry struct {
	Ordinal int    // 1-based position.
	Details string // Component display string.
}

// String renders the entry as "<ordinal>: <details>".
func (e Entry) String() string {
	return strconv.Itoa(e.Ordinal) + ": " + e.Details
}

// Store operation errors.
var (
	ErrInvalidIndex = errors.New("invalid index")
	ErrStoreClosed  = errors.New("store is closed")
	ErrInvalidKind  = errors.New("invalid component kind")
)

// InRange reports whether index addresses an element of a store holding
// count elements.
func InRange(index, count int) bool {
	return index >= 0 && index < count
}
