// Package registry defines the narrow boundary between the edit model and
// whatever actually stores environment variables: the Windows registry on
// Windows, the sqlite hive mirror elsewhere and in tests.
package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/meop/WinEnvEdit-sub001/pkg/model/menvvar"
)

var (
	ErrUnknownScope     = errors.New("unknown variable scope")
	ErrIncoherentChange = errors.New("change is flagged both added and removed")
)

// Loader enumerates the variables of one scope. Loaded variables carry no
// edit flags and their Type reflects the stored value kind.
type Loader interface {
	Load(ctx context.Context, scope menvvar.Scope) ([]menvvar.EnvironmentVariable, error)
}

// Applier persists a pending change set: added variables are created,
// removed ones deleted, the rest updated in place.
type Applier interface {
	Apply(ctx context.Context, scope menvvar.Scope, changes []menvvar.EnvironmentVariable) error
}

// Store is the full collaborator surface.
type Store interface {
	Loader
	Applier
}

// ValidateChanges rejects change sets an Applier must never see: entries
// outside the target scope and entries flagged both added and removed.
func ValidateChanges(scope menvvar.Scope, changes []menvvar.EnvironmentVariable) error {
	if scope != menvvar.ScopeUser && scope != menvvar.ScopeSystem {
		return ErrUnknownScope
	}
	for _, change := range changes {
		if change.Scope != scope {
			return fmt.Errorf("change %s does not belong to scope %s", change.Name, scope)
		}
		if change.IsAdded && change.IsRemoved {
			return fmt.Errorf("%w: %s", ErrIncoherentChange, change.Name)
		}
	}
	return nil
}
