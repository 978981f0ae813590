package testutil

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/meop/WinEnvEdit-sub001/pkg/hivedb/gen"
	"github.com/meop/WinEnvEdit-sub001/pkg/logger/mocklogger"
	"github.com/meop/WinEnvEdit-sub001/pkg/service/senvvar"
	"github.com/meop/WinEnvEdit-sub001/pkg/sqlitemem"
)

type BaseDBQueries struct {
	Queries *gen.Queries
	DB      *sql.DB
	t       *testing.T
}

type BaseTestServices struct {
	DB     *sql.DB
	Vs     senvvar.VariableService
	Reader *senvvar.Reader
	Writer *senvvar.Writer
}

func CreateBaseDB(ctx context.Context, t *testing.T) *BaseDBQueries {
	db, _, err := sqlitemem.NewSQLiteMem(ctx)
	if err != nil {
		t.Fatal(err)
	}
	return &BaseDBQueries{Queries: gen.New(db), DB: db, t: t}
}

func (b *BaseDBQueries) GetBaseServices() BaseTestServices {
	mockLogger := mocklogger.NewMockLogger()
	return BaseTestServices{
		DB:     b.DB,
		Vs:     senvvar.New(b.Queries, mockLogger),
		Reader: senvvar.NewReaderFromQueries(b.Queries, mockLogger),
		Writer: senvvar.NewWriter(b.DB, mockLogger),
	}
}

func (b *BaseDBQueries) Close() {
	if err := b.DB.Close(); err != nil {
		b.t.Error(err)
	}
}

func (b *BaseDBQueries) Logger() *slog.Logger {
	return mocklogger.NewMockLogger()
}
