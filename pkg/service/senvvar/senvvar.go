package senvvar

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/meop/WinEnvEdit-sub001/pkg/fuzzyfinder"
	"github.com/meop/WinEnvEdit-sub001/pkg/hivedb/gen"
	"github.com/meop/WinEnvEdit-sub001/pkg/idwrap"
	"github.com/meop/WinEnvEdit-sub001/pkg/model/menvvar"
	"github.com/meop/WinEnvEdit-sub001/pkg/translate/tgeneric"
)

var ErrNoVariableFound = sql.ErrNoRows

// VariableService is the CRUD surface over the sqlite hive mirror.
type VariableService struct {
	queries *gen.Queries
	logger  *slog.Logger
}

func New(queries *gen.Queries, logger *slog.Logger) VariableService {
	if logger == nil {
		logger = slog.Default()
	}
	return VariableService{
		queries: queries,
		logger:  logger,
	}
}

func (s VariableService) TX(tx *sql.Tx) VariableService {
	if tx == nil {
		return s
	}
	return VariableService{
		queries: s.queries.WithTx(tx),
		logger:  s.logger,
	}
}

func (s VariableService) Get(ctx context.Context, id idwrap.IDWrap) (*menvvar.EnvironmentVariable, error) {
	row, err := s.queries.GetEnvironmentVariable(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoVariableFound
		}
		return nil, err
	}
	return ConvertToModelVariable(row), nil
}

func (s VariableService) GetByName(ctx context.Context, scope menvvar.Scope, name string) (*menvvar.EnvironmentVariable, error) {
	row, err := s.queries.GetEnvironmentVariableByName(ctx, gen.GetEnvironmentVariableByNameParams{
		Scope: int8(scope),
		Name:  name,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.DebugContext(ctx, "variable not found", "scope", scope.String(), "name", name)
			return nil, ErrNoVariableFound
		}
		return nil, err
	}
	return ConvertToModelVariable(row), nil
}

func (s VariableService) GetByScope(ctx context.Context, scope menvvar.Scope) ([]menvvar.EnvironmentVariable, error) {
	rows, err := s.queries.GetEnvironmentVariablesByScope(ctx, int8(scope))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []menvvar.EnvironmentVariable{}, nil
		}
		return nil, err
	}
	return tgeneric.MassConvertPtr(rows, ConvertToModelVariable), nil
}

func (s VariableService) Create(ctx context.Context, variable menvvar.EnvironmentVariable) error {
	if variable.ID.IsZero() {
		variable.ID = idwrap.NewNow()
	}
	now := time.Now().Unix()
	dbVar := ConvertToDBVariable(variable, now, now)
	return s.queries.CreateEnvironmentVariable(ctx, gen.CreateEnvironmentVariableParams{
		ID:        dbVar.ID,
		Name:      dbVar.Name,
		Data:      dbVar.Data,
		ValueType: dbVar.ValueType,
		Scope:     dbVar.Scope,
		CreatedAt: dbVar.CreatedAt,
		UpdatedAt: dbVar.UpdatedAt,
	})
}

func (s VariableService) Update(ctx context.Context, variable *menvvar.EnvironmentVariable) error {
	now := time.Now().Unix()
	dbVar := ConvertToDBVariable(*variable, 0, now)
	err := s.queries.UpdateEnvironmentVariable(ctx, gen.UpdateEnvironmentVariableParams{
		Name:      dbVar.Name,
		Data:      dbVar.Data,
		ValueType: dbVar.ValueType,
		UpdatedAt: dbVar.UpdatedAt,
		ID:        dbVar.ID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoVariableFound
	}
	return err
}

func (s VariableService) Delete(ctx context.Context, id idwrap.IDWrap) error {
	if err := s.queries.DeleteEnvironmentVariable(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoVariableFound
		}
		return err
	}
	return nil
}

// SearchByName fuzzy-ranks the scope's variables against query and returns
// them best match first.
func (s VariableService) SearchByName(ctx context.Context, scope menvvar.Scope, query string) ([]menvvar.EnvironmentVariable, error) {
	vars, err := s.GetByScope(ctx, scope)
	if err != nil {
		return nil, err
	}
	ranks := fuzzyfinder.RankVariables(vars, query)
	matched := make([]menvvar.EnvironmentVariable, len(ranks))
	for i, rank := range ranks {
		matched[i] = rank.Variable
	}
	return matched, nil
}
