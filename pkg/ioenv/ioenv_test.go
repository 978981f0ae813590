package ioenv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meop/WinEnvEdit-sub001/pkg/ioenv"
	"github.com/meop/WinEnvEdit-sub001/pkg/logger/mocklogger"
	"github.com/meop/WinEnvEdit-sub001/pkg/model/menvvar"
	"github.com/meop/WinEnvEdit-sub001/pkg/service/senvvar"
	"github.com/meop/WinEnvEdit-sub001/pkg/sqlitemem"
)

func newStore(ctx context.Context, t *testing.T) *senvvar.Store {
	t.Helper()
	db, cleanup, err := sqlitemem.NewSQLiteMem(ctx)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return senvvar.NewStore(db, mocklogger.NewMockLogger())
}

func seedUserScope(ctx context.Context, t *testing.T, store *senvvar.Store) {
	t.Helper()
	changes := []menvvar.EnvironmentVariable{
		menvvar.Default().WithName("GOPATH").WithData(`C:\Users\dev\go`).WithIsAdded(true).MustBuild(),
		menvvar.Default().WithName("TEMP").WithData(`C:\Temp`).WithType(menvvar.ValueKindExpandString).WithIsAdded(true).MustBuild(),
	}
	require.NoError(t, store.Apply(ctx, menvvar.ScopeUser, changes))
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	store := newStore(ctx, t)
	seedUserScope(ctx, t, store)

	snapshot, err := ioenv.Export(ctx, store, menvvar.ScopeUser)
	require.NoError(t, err)

	assert.Equal(t, ioenv.SnapshotVersion, snapshot.Version)
	assert.Equal(t, menvvar.ScopeUser, snapshot.Scope)
	assert.False(t, snapshot.ExportedAt.IsZero())
	require.Len(t, snapshot.Variables, 2)
	for _, v := range snapshot.Variables {
		assert.False(t, v.IsPending(), "exported variables are committed state")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newStore(ctx, t)
	seedUserScope(ctx, t, store)

	snapshot, err := ioenv.Export(ctx, store, menvvar.ScopeUser)
	require.NoError(t, err)

	data, err := ioenv.MarshalYAML(snapshot)
	require.NoError(t, err)

	decoded, err := ioenv.UnmarshalYAML(data)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Scope, decoded.Scope)
	require.Len(t, decoded.Variables, 2)
	assert.Equal(t, snapshot.Variables[0].Name, decoded.Variables[0].Name)
	assert.Equal(t, snapshot.Variables[1].Type, decoded.Variables[1].Type)
}

func TestJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newStore(ctx, t)
	seedUserScope(ctx, t, store)

	snapshot, err := ioenv.Export(ctx, store, menvvar.ScopeUser)
	require.NoError(t, err)

	data, err := ioenv.MarshalJSON(snapshot)
	require.NoError(t, err)

	decoded, err := ioenv.UnmarshalJSON(data)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Scope, decoded.Scope)
	require.Len(t, decoded.Variables, 2)
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	_, err := ioenv.UnmarshalYAML([]byte("{not yaml"))
	assert.Error(t, err)

	_, err = ioenv.UnmarshalJSON([]byte("{not json"))
	assert.Error(t, err)
}

func TestUnmarshalRejectsWrongVersion(t *testing.T) {
	data, err := ioenv.MarshalJSON(&ioenv.EnvSnapshot{Version: 99, Scope: menvvar.ScopeUser})
	require.NoError(t, err)

	_, err = ioenv.UnmarshalJSON(data)
	assert.ErrorIs(t, err, ioenv.ErrVersionUnsupported)
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	t.Run("into empty scope creates everything", func(t *testing.T) {
		store := newStore(ctx, t)
		snapshot := &ioenv.EnvSnapshot{
			Version: ioenv.SnapshotVersion,
			Scope:   menvvar.ScopeUser,
			Variables: []menvvar.EnvironmentVariable{
				{Name: "GOPATH", Data: `C:\Users\dev\go`, Scope: menvvar.ScopeUser},
				{Name: "TEMP", Data: `C:\Temp`, Type: menvvar.ValueKindExpandString, Scope: menvvar.ScopeUser},
			},
		}

		result, err := ioenv.Import(ctx, store, menvvar.ScopeUser, snapshot, ioenv.ImportOptions{})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Created)
		assert.Equal(t, 0, result.Updated)
		assert.Equal(t, 0, result.Removed)

		vars, err := store.Load(ctx, menvvar.ScopeUser)
		require.NoError(t, err)
		assert.Len(t, vars, 2)
	})

	t.Run("updates differing values and skips identical ones", func(t *testing.T) {
		store := newStore(ctx, t)
		seedUserScope(ctx, t, store)

		snapshot := &ioenv.EnvSnapshot{
			Version: ioenv.SnapshotVersion,
			Scope:   menvvar.ScopeUser,
			Variables: []menvvar.EnvironmentVariable{
				{Name: "GOPATH", Data: `D:\go`, Scope: menvvar.ScopeUser},
				{Name: "TEMP", Data: `C:\Temp`, Type: menvvar.ValueKindExpandString, Scope: menvvar.ScopeUser},
			},
		}

		result, err := ioenv.Import(ctx, store, menvvar.ScopeUser, snapshot, ioenv.ImportOptions{})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 1, result.Updated)

		got, err := store.Load(ctx, menvvar.ScopeUser)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, `D:\go`, got[0].Data)
	})

	t.Run("replace removes variables missing from the snapshot", func(t *testing.T) {
		store := newStore(ctx, t)
		seedUserScope(ctx, t, store)

		snapshot := &ioenv.EnvSnapshot{
			Version: ioenv.SnapshotVersion,
			Scope:   menvvar.ScopeUser,
			Variables: []menvvar.EnvironmentVariable{
				{Name: "GOPATH", Data: `C:\Users\dev\go`, Scope: menvvar.ScopeUser},
			},
		}

		result, err := ioenv.Import(ctx, store, menvvar.ScopeUser, snapshot, ioenv.ImportOptions{Replace: true})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Removed)

		vars, err := store.Load(ctx, menvvar.ScopeUser)
		require.NoError(t, err)
		require.Len(t, vars, 1)
		assert.Equal(t, "GOPATH", vars[0].Name)
	})

	t.Run("scope mismatch fails", func(t *testing.T) {
		store := newStore(ctx, t)
		snapshot := &ioenv.EnvSnapshot{Version: ioenv.SnapshotVersion, Scope: menvvar.ScopeSystem}

		_, err := ioenv.Import(ctx, store, menvvar.ScopeUser, snapshot, ioenv.ImportOptions{})
		assert.ErrorIs(t, err, ioenv.ErrScopeMismatch)
	})
}
