package editsession

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/meop/WinEnvEdit-sub001/pkg/model/menvvar"
	"github.com/meop/WinEnvEdit-sub001/pkg/registry"
)

var (
	ErrNotFound      = errors.New("variable not found in session")
	ErrScopeMismatch = errors.New("variable scope does not match session scope")
	ErrDirtySnapshot = errors.New("snapshot variables must not carry edit flags")
	ErrNothingStaged = errors.New("no staged changes to commit")
)

// EditSession tracks uncommitted edits to the environment variables of a
// single scope. The loaded snapshot is the base; edits are staged on top of
// it and only reach the registry collaborator on Commit.
type EditSession struct {
	scope menvvar.Scope

	// base is keyed by folded name; order keeps the snapshot enumeration
	// order for Resolve.
	base  map[string]menvvar.EnvironmentVariable
	order []string

	staged map[string]menvvar.EnvironmentVariable
}

// New builds a session over a loaded snapshot. Snapshot entries must belong
// to the session scope and carry no edit flags.
func New(scope menvvar.Scope, snapshot []menvvar.EnvironmentVariable) (*EditSession, error) {
	s := &EditSession{
		scope:  scope,
		base:   make(map[string]menvvar.EnvironmentVariable, len(snapshot)),
		staged: make(map[string]menvvar.EnvironmentVariable),
	}
	for _, v := range snapshot {
		if v.Scope != scope {
			return nil, fmt.Errorf("%w: %s is %s, session is %s", ErrScopeMismatch, v.Name, v.Scope, scope)
		}
		if v.IsPending() {
			return nil, fmt.Errorf("%w: %s", ErrDirtySnapshot, v.Name)
		}
		key := menvvar.FoldName(v.Name)
		if _, dup := s.base[key]; !dup {
			s.order = append(s.order, key)
		}
		s.base[key] = v
	}
	return s, nil
}

func (s *EditSession) Scope() menvvar.Scope {
	return s.scope
}

// Set stages a string-kind update or addition for name.
func (s *EditSession) Set(name, data string) error {
	return s.SetTyped(name, data, menvvar.ValueKindString)
}

// SetTyped stages an update for a known name or an addition for an unknown
// one. The staged entry is volatile until committed; additions also carry
// the added flag. The kind of an existing variable is preserved when the
// caller passes the default string kind.
func (s *EditSession) SetTyped(name, data string, kind menvvar.ValueKind) error {
	if name == "" {
		return menvvar.ErrNameRequired
	}
	key := menvvar.FoldName(name)

	if prior, ok := s.staged[key]; ok {
		prior.Data = data
		prior.IsRemoved = false
		if kind != menvvar.ValueKindString {
			prior.Type = kind
		}
		s.staged[key] = prior
		return nil
	}

	if origin, ok := s.base[key]; ok {
		next := origin
		next.Data = data
		if kind != menvvar.ValueKindString {
			next.Type = kind
		}
		next.IsVolatile = true
		s.staged[key] = next
		return nil
	}

	added, err := menvvar.Default().
		WithName(name).
		WithData(data).
		WithType(kind).
		WithScope(s.scope).
		WithIsAdded(true).
		WithIsVolatile(true).
		Build()
	if err != nil {
		return err
	}
	s.staged[key] = added
	return nil
}

// Remove stages deletion of a variable. Removing a variable that was added
// in this session drops it from the staged set entirely rather than
// flagging it both added and removed.
func (s *EditSession) Remove(name string) error {
	key := menvvar.FoldName(name)

	if prior, ok := s.staged[key]; ok {
		if prior.IsAdded {
			delete(s.staged, key)
			return nil
		}
		prior.IsRemoved = true
		s.staged[key] = prior
		return nil
	}

	origin, ok := s.base[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	origin.IsRemoved = true
	origin.IsVolatile = true
	s.staged[key] = origin
	return nil
}

// Revert discards the staged change for name, if any.
func (s *EditSession) Revert(name string) {
	delete(s.staged, menvvar.FoldName(name))
}

// Dirty reports whether the session holds staged changes.
func (s *EditSession) Dirty() bool {
	return len(s.staged) > 0
}

// Pending returns the staged changes with their edit flags set, ordered by
// folded name so output is stable.
func (s *EditSession) Pending() []menvvar.EnvironmentVariable {
	keys := make([]string, 0, len(s.staged))
	for key := range s.staged {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pending := make([]menvvar.EnvironmentVariable, len(keys))
	for i, key := range keys {
		pending[i] = s.staged[key]
	}
	return pending
}

// Get returns the session view of name: the staged entry when one exists,
// the base entry otherwise.
func (s *EditSession) Get(name string) (menvvar.EnvironmentVariable, bool) {
	key := menvvar.FoldName(name)
	if v, ok := s.staged[key]; ok {
		return v, true
	}
	v, ok := s.base[key]
	return v, ok
}

// Resolve produces the state the scope would have after committing: base
// entries in snapshot order with staged updates applied and removals
// dropped, additions appended in name order, and all edit flags cleared.
func (s *EditSession) Resolve() []menvvar.EnvironmentVariable {
	resolved := make([]menvvar.EnvironmentVariable, 0, len(s.base)+len(s.staged))

	for _, key := range s.order {
		staged, ok := s.staged[key]
		if !ok {
			resolved = append(resolved, s.base[key])
			continue
		}
		if staged.IsRemoved {
			continue
		}
		resolved = append(resolved, clearFlags(staged))
	}

	addedKeys := make([]string, 0)
	for key, staged := range s.staged {
		if staged.IsAdded {
			addedKeys = append(addedKeys, key)
		}
	}
	sort.Strings(addedKeys)
	for _, key := range addedKeys {
		resolved = append(resolved, clearFlags(s.staged[key]))
	}

	return resolved
}

// Commit hands the pending set to the registry collaborator and, on
// success, re-bases the session on the resolved state.
func (s *EditSession) Commit(ctx context.Context, applier registry.Applier) error {
	if !s.Dirty() {
		return ErrNothingStaged
	}
	if err := applier.Apply(ctx, s.scope, s.Pending()); err != nil {
		return err
	}

	rebased := s.Resolve()
	s.base = make(map[string]menvvar.EnvironmentVariable, len(rebased))
	s.order = s.order[:0]
	for _, v := range rebased {
		key := menvvar.FoldName(v.Name)
		s.base[key] = v
		s.order = append(s.order, key)
	}
	s.staged = make(map[string]menvvar.EnvironmentVariable)
	return nil
}

func clearFlags(v menvvar.EnvironmentVariable) menvvar.EnvironmentVariable {
	v.IsAdded = false
	v.IsRemoved = false
	v.IsVolatile = false
	return v
}
