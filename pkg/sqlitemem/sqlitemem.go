// Package sqlitemem opens throwaway in-memory mirror databases, mainly for
// tests. Each database gets a unique shared-cache name so parallel tests
// stay isolated.
package sqlitemem

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/meop/WinEnvEdit-sub001/pkg/hivedb"
)

func NewSQLiteMem(ctx context.Context) (*sql.DB, func(), error) {
	uniqueName := ulid.Make().String()
	connStr := fmt.Sprintf("file:hivedb_%s?mode=memory&cache=shared", uniqueName)

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, nil, err
	}

	if err := hivedb.CreateLocalTables(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	cleanup := func() { db.Close() }
	return db, cleanup, nil
}
