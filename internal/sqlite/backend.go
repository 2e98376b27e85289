// Package sqlite implements the contact store on an in-memory SQLite
// database. Nothing is written to disk; the data lives as long as the
// Backend is open.
package sqlite

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// memoryDSN opens a private in-memory database. Each connection to it gets a
// separate database, so the pool is pinned to one connection.
const memoryDSN = ":memory:"

// Compile-time interface check: Backend must implement types.Store.
var _ types.Store = (*Backend)(nil)

// Backend implements types.Store using SQLite as the query engine.
type Backend struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

// Open creates the in-memory database and its schema. A nil logger disables
// logging. The caller must Close the backend.
func Open(log *zap.SugaredLogger) (*Backend, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}

	log.Debugw("sqlite backend opened", "dsn", memoryDSN)
	return &Backend{db: db, log: log}, nil
}

// Close releases the database. All data is discarded. Idempotent.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	if err != nil {
		return fmt.Errorf("closing sqlite: %w", err)
	}
	b.log.Debugw("sqlite backend closed")
	return nil
}

// Count returns the number of stored components. A closed backend, or one
// whose count query fails, reports zero.
func (b *Backend) Count() int {
	if b.db == nil {
		return 0
	}
	n, err := countComponents(b.db)
	if err != nil {
		b.log.Warnw("counting components", "error", err)
		return 0
	}
	return n
}
