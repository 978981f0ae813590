package senvvar

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/meop/WinEnvEdit-sub001/pkg/hivedb/gen"
	"github.com/meop/WinEnvEdit-sub001/pkg/model/menvvar"
	"github.com/meop/WinEnvEdit-sub001/pkg/registry"
)

// Reader is the registry.Loader view of the hive mirror.
type Reader struct {
	queries *gen.Queries
	logger  *slog.Logger
}

var _ registry.Loader = (*Reader)(nil)

func NewReader(db *sql.DB, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{
		queries: gen.New(db),
		logger:  logger,
	}
}

func NewReaderFromQueries(queries *gen.Queries, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{
		queries: queries,
		logger:  logger,
	}
}

func (r *Reader) Load(ctx context.Context, scope menvvar.Scope) ([]menvvar.EnvironmentVariable, error) {
	if scope != menvvar.ScopeUser && scope != menvvar.ScopeSystem {
		return nil, registry.ErrUnknownScope
	}
	vars, err := New(r.queries, r.logger).GetByScope(ctx, scope)
	if err != nil {
		return nil, err
	}
	r.logger.DebugContext(ctx, "loaded scope from mirror", "scope", scope.String(), "count", len(vars))
	return vars, nil
}
