package senvvar

import (
	"database/sql"
	"log/slog"

	"github.com/meop/WinEnvEdit-sub001/pkg/registry"
)

// Store bundles the Reader and Writer into the full collaborator surface.
type Store struct {
	*Reader
	*Writer
}

var _ registry.Store = (*Store)(nil)

func NewStore(db *sql.DB, logger *slog.Logger) *Store {
	return &Store{
		Reader: NewReader(db, logger),
		Writer: NewWriter(db, logger),
	}
}
