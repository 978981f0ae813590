package menvvar

import (
	"errors"

	"github.com/meop/WinEnvEdit-sub001/pkg/idwrap"
)

var (
	ErrNameRequired     = errors.New("environment variable name is required")
	ErrConflictingFlags = errors.New("environment variable cannot be both added and removed")
)

// Builder assembles an EnvironmentVariable step by step. Every setter
// returns the builder so calls chain.
type Builder struct {
	v EnvironmentVariable
}

// Default returns a builder pre-seeded with the model defaults:
// Type string, user scope, all edit flags false.
func Default() *Builder {
	return &Builder{v: EnvironmentVariable{
		Type:  ValueKindString,
		Scope: ScopeUser,
	}}
}

func (b *Builder) WithID(id idwrap.IDWrap) *Builder {
	b.v.ID = id
	return b
}

func (b *Builder) WithName(name string) *Builder {
	b.v.Name = name
	return b
}

func (b *Builder) WithData(data string) *Builder {
	b.v.Data = data
	return b
}

func (b *Builder) WithType(kind ValueKind) *Builder {
	b.v.Type = kind
	return b
}

func (b *Builder) WithScope(scope Scope) *Builder {
	b.v.Scope = scope
	return b
}

func (b *Builder) WithIsAdded(added bool) *Builder {
	b.v.IsAdded = added
	return b
}

func (b *Builder) WithIsRemoved(removed bool) *Builder {
	b.v.IsRemoved = removed
	return b
}

func (b *Builder) WithIsVolatile(volatile bool) *Builder {
	b.v.IsVolatile = volatile
	return b
}

// Build returns the assembled variable. A name is required, and a variable
// may not be flagged added and removed at the same time.
func (b *Builder) Build() (EnvironmentVariable, error) {
	if b.v.Name == "" {
		return EnvironmentVariable{}, ErrNameRequired
	}
	if b.v.IsAdded && b.v.IsRemoved {
		return EnvironmentVariable{}, ErrConflictingFlags
	}
	return b.v, nil
}

// MustBuild is Build for static construction paths where the inputs are
// known good, such as table-driven tests.
func (b *Builder) MustBuild() EnvironmentVariable {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}
	return v
}
