// Package hivedb owns the sqlite mirror of the environment hives: the
// schema, table bootstrap and small transaction helpers.
package hivedb

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/pingcap/log"
)

//go:embed schema.sql
var schemaSQL string

// CreateLocalTables creates the mirror tables. Used for tests and for the
// local mirror database on first open.
func CreateLocalTables(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	_, err := db.ExecContext(ctx, schemaSQL)
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// TxnRollback is meant to be deferred so a rollback failure is still logged
// after the surrounding function returns.
func TxnRollback(tx *sql.Tx) {
	err := tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		log.Error(err.Error())
	}
}
