package senvvar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/meop/WinEnvEdit-sub001/pkg/hivedb"
	"github.com/meop/WinEnvEdit-sub001/pkg/hivedb/gen"
	"github.com/meop/WinEnvEdit-sub001/pkg/model/menvvar"
	"github.com/meop/WinEnvEdit-sub001/pkg/registry"
)

// Writer is the registry.Applier view of the hive mirror. A change set is
// applied inside one transaction so a half-applied commit never lands.
type Writer struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ registry.Applier = (*Writer)(nil)

func NewWriter(db *sql.DB, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		db:     db,
		logger: logger,
	}
}

func (w *Writer) Apply(ctx context.Context, scope menvvar.Scope, changes []menvvar.EnvironmentVariable) error {
	if err := registry.ValidateChanges(scope, changes); err != nil {
		return err
	}
	if len(changes) == 0 {
		return nil
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer hivedb.TxnRollback(tx)

	service := New(gen.New(tx), w.logger)
	for _, change := range changes {
		if err := w.applyOne(ctx, service, scope, change); err != nil {
			return fmt.Errorf("apply %s: %w", change.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	w.logger.InfoContext(ctx, "applied change set to mirror", "scope", scope.String(), "changes", len(changes))
	return nil
}

func (w *Writer) applyOne(ctx context.Context, service VariableService, scope menvvar.Scope, change menvvar.EnvironmentVariable) error {
	stored, err := service.GetByName(ctx, scope, change.Name)
	if err != nil && !errors.Is(err, ErrNoVariableFound) {
		return err
	}

	switch {
	case change.IsRemoved:
		if stored == nil {
			return fmt.Errorf("%w: %s", ErrNoVariableFound, change.Name)
		}
		return service.Delete(ctx, stored.ID)
	case stored == nil:
		return service.Create(ctx, change)
	default:
		stored.Name = change.Name
		stored.Data = change.Data
		stored.Type = change.Type
		return service.Update(ctx, stored)
	}
}
