// This file implements the component operations of the SQLite backend.
// Each operation hydrates/dehydrates between rows and types.Component.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

const selectComponents = "SELECT component_id, kind, first_name, last_name, phone_number FROM components ORDER BY position"

func countComponents(q querier) (int, error) {
	var n int
	if err := q.QueryRow("SELECT COUNT(*) FROM components").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// newComponentID generates a UUID v7 for a stored component.
func newComponentID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}
	return id.String(), nil
}

// Add appends c at position Count.
func (b *Backend) Add(c types.Component) error {
	if b.db == nil {
		return types.ErrStoreClosed
	}
	if err := c.Validate(); err != nil {
		return err
	}
	id, err := newComponentID()
	if err != nil {
		return err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := countComponents(tx)
	if err != nil {
		return fmt.Errorf("counting components: %w", err)
	}
	_, err = tx.Exec(
		"INSERT INTO components (component_id, position, kind, first_name, last_name, phone_number) VALUES (?, ?, ?, ?, ?, ?)",
		id, n, int(c.Kind), c.FirstName, c.LastName, c.PhoneNumber,
	)
	if err != nil {
		return fmt.Errorf("inserting component: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	b.log.Debugw("component added", "id", id, "kind", c.Kind.String(), "position", n)
	return nil
}

// EditByIndex replaces every column of the row at index, including its ID.
func (b *Backend) EditByIndex(index int, c types.Component) error {
	if b.db == nil {
		return types.ErrStoreClosed
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := countComponents(tx)
	if err != nil {
		return fmt.Errorf("counting components: %w", err)
	}
	if !types.InRange(index, n) {
		return types.ErrInvalidIndex
	}
	if err := c.Validate(); err != nil {
		return err
	}
	id, err := newComponentID()
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		"UPDATE components SET component_id = ?, kind = ?, first_name = ?, last_name = ?, phone_number = ? WHERE position = ?",
		id, int(c.Kind), c.FirstName, c.LastName, c.PhoneNumber, index,
	)
	if err != nil {
		return fmt.Errorf("replacing component: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	b.log.Debugw("component replaced", "index", index, "id", id)
	return nil
}

// DeleteByIndex removes the row at index and renumbers later rows.
func (b *Backend) DeleteByIndex(index int) error {
	if b.db == nil {
		return types.ErrStoreClosed
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := countComponents(tx)
	if err != nil {
		return fmt.Errorf("counting components: %w", err)
	}
	if !types.InRange(index, n) {
		return types.ErrInvalidIndex
	}

	if _, err := tx.Exec("DELETE FROM components WHERE position = ?", index); err != nil {
		return fmt.Errorf("deleting component: %w", err)
	}
	if _, err := tx.Exec("UPDATE components SET position = position - 1 WHERE position > ?", index); err != nil {
		return fmt.Errorf("shifting positions: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	b.log.Debugw("component deleted", "index", index, "count", n-1)
	return nil
}

// ShowAll returns the listing entries ordered by position.
func (b *Backend) ShowAll() ([]types.Entry, error) {
	components, err := b.Components()
	if err != nil {
		return nil, err
	}
	entries := make([]types.Entry, len(components))
	for i, c := range components {
		entries[i] = types.Entry{Ordinal: i + 1, Details: c.Details()}
	}
	return entries, nil
}

// Components returns all components ordered by position.
func (b *Backend) Components() ([]types.Component, error) {
	if b.db == nil {
		return nil, types.ErrStoreClosed
	}

	rows, err := b.db.Query(selectComponents)
	if err != nil {
		return nil, fmt.Errorf("querying components: %w", err)
	}
	defer rows.Close()

	components := []types.Component{}
	for rows.Next() {
		c, err := hydrateComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating component: %w", err)
		}
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating components: %w", err)
	}
	return components, nil
}

// hydrateComponent scans one row selected by selectComponents.
func hydrateComponent(rows *sql.Rows) (types.Component, error) {
	var (
		c    types.Component
		kind int
	)
	if err := rows.Scan(&c.ComponentID, &kind, &c.FirstName, &c.LastName, &c.PhoneNumber); err != nil {
		return types.Component{}, err
	}
	c.Kind = types.Kind(kind)
	return c, nil
}
