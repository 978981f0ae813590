package menvvar

import (
	"strings"

	"github.com/meop/WinEnvEdit-sub001/pkg/idwrap"
)

// Scope selects the registry hive a variable lives in.
type Scope int8

const (
	ScopeUnknown Scope = 0
	ScopeUser    Scope = 1
	ScopeSystem  Scope = 2
)

func (s Scope) String() string {
	switch s {
	case ScopeUser:
		return "user"
	case ScopeSystem:
		return "system"
	default:
		return "unknown"
	}
}

// ValueKind is the registry value kind discriminator. The zero value is
// ValueKindString so an unset kind always reads back as a plain string.
type ValueKind int8

const (
	ValueKindString         ValueKind = 0
	ValueKindExpandString   ValueKind = 1
	ValueKindBinary         ValueKind = 2
	ValueKindDWord          ValueKind = 3
	ValueKindDWordBigEndian ValueKind = 4
	ValueKindLink           ValueKind = 5
	ValueKindMultiString    ValueKind = 6
	ValueKindQWord          ValueKind = 7
)

func (k ValueKind) String() string {
	switch k {
	case ValueKindString:
		return "string"
	case ValueKindExpandString:
		return "expand_string"
	case ValueKindBinary:
		return "binary"
	case ValueKindDWord:
		return "dword"
	case ValueKindDWordBigEndian:
		return "dword_big_endian"
	case ValueKindLink:
		return "link"
	case ValueKindMultiString:
		return "multi_string"
	case ValueKindQWord:
		return "qword"
	default:
		return "string"
	}
}

// EnvironmentVariable is one environment variable together with its
// edit-session state. Loaded records carry all flags false; records staged
// by an edit session carry the pending flags until committed.
type EnvironmentVariable struct {
	ID         idwrap.IDWrap `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string        `json:"name" yaml:"name"`
	Data       string        `json:"data" yaml:"data"`
	Type       ValueKind     `json:"type" yaml:"type"`
	Scope      Scope         `json:"scope" yaml:"scope"`
	IsAdded    bool          `json:"is_added,omitempty" yaml:"is_added,omitempty"`
	IsRemoved  bool          `json:"is_removed,omitempty" yaml:"is_removed,omitempty"`
	IsVolatile bool          `json:"is_volatile,omitempty" yaml:"is_volatile,omitempty"`
}

// IsPending reports whether the variable carries uncommitted edit state.
func (v EnvironmentVariable) IsPending() bool {
	return v.IsAdded || v.IsRemoved || v.IsVolatile
}

// FoldName normalizes a variable name for lookup. Windows treats
// environment variable names case-insensitively.
func FoldName(name string) string {
	return strings.ToUpper(name)
}

// EqualName compares two variable names under Windows semantics.
func EqualName(a, b string) bool {
	return strings.EqualFold(a, b)
}
