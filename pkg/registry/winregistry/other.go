//go:build !windows

package winregistry

import (
	"context"
	"errors"

	"github.com/meop/WinEnvEdit-sub001/pkg/model/menvvar"
	pkgregistry "github.com/meop/WinEnvEdit-sub001/pkg/registry"
)

var errNotWindows = errors.New("windows registry is not available on this platform")

// Store is only functional on Windows. Other platforms use the sqlite hive
// mirror in service/senvvar.
type Store struct{}

func New() *Store {
	return &Store{}
}

var _ pkgregistry.Store = (*Store)(nil)

func (s *Store) Load(ctx context.Context, scope menvvar.Scope) ([]menvvar.EnvironmentVariable, error) {
	return nil, errNotWindows
}

func (s *Store) Apply(ctx context.Context, scope menvvar.Scope, changes []menvvar.EnvironmentVariable) error {
	return errNotWindows
}
