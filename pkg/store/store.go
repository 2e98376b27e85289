// Package store provides the public factory for contact store backends,
// keeping the backend implementations internal.
package store

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/internal/memory"
	"github.com/mesh-intelligence/contacts/internal/sqlite"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// New opens the backend named by cfg.Backend. The caller must Close the
// returned store. A nil logger disables backend logging.
//
// Example:
//
//	s, err := store.New(types.Config{Backend: types.BackendSQLite}, nil)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
func New(cfg types.Config, log *zap.SugaredLogger) (types.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	log = log.With("backend", cfg.Backend)

	switch cfg.Backend {
	case types.BackendSQLite:
		return sqlite.Open(log)
	default:
		return memory.NewStore(log), nil
	}
}
