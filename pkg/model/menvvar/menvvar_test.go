package menvvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDefaults checks the zero-value contract of the record: an unset kind
// reads back as a plain string and no edit flag is set.
func TestDefaults(t *testing.T) {
	t.Run("unset type is string", func(t *testing.T) {
		v := EnvironmentVariable{
			Name: "TEST_VAR",
			Data: "test_value",
		}

		assert.Equal(t, ValueKindString, v.Type, "unset kind should read back as string")
	})

	t.Run("unset flags are false", func(t *testing.T) {
		v := EnvironmentVariable{
			Name: "TEST_VAR",
		}

		assert.False(t, v.IsAdded, "IsAdded should default to false")
		assert.False(t, v.IsRemoved, "IsRemoved should default to false")
		assert.False(t, v.IsVolatile, "IsVolatile should default to false")
		assert.False(t, v.IsPending(), "a fresh record should not be pending")
	})
}

// TestFieldRoundTrip verifies assigned fields read back unchanged.
func TestFieldRoundTrip(t *testing.T) {
	v := EnvironmentVariable{
		Name:      "JAVA_HOME",
		Data:      `C:\Program Files\Java`,
		Type:      ValueKindExpandString,
		Scope:     ScopeSystem,
		IsRemoved: true,
	}

	assert.Equal(t, "JAVA_HOME", v.Name)
	assert.Equal(t, `C:\Program Files\Java`, v.Data)
	assert.Equal(t, ValueKindExpandString, v.Type)
	assert.Equal(t, ScopeSystem, v.Scope)
	assert.True(t, v.IsRemoved)
	assert.True(t, v.IsPending(), "a removed record is pending")
}

func TestScopeValues(t *testing.T) {
	assert.NotEqual(t, ScopeUser, ScopeSystem, "user and system scopes must be distinct")
	assert.Equal(t, "user", ScopeUser.String())
	assert.Equal(t, "system", ScopeSystem.String())
	assert.Equal(t, "unknown", ScopeUnknown.String())
}

func TestValueKindStrings(t *testing.T) {
	kinds := map[ValueKind]string{
		ValueKindString:         "string",
		ValueKindExpandString:   "expand_string",
		ValueKindBinary:         "binary",
		ValueKindDWord:          "dword",
		ValueKindDWordBigEndian: "dword_big_endian",
		ValueKindLink:           "link",
		ValueKindMultiString:    "multi_string",
		ValueKindQWord:          "qword",
	}
	for kind, want := range kinds {
		assert.Equal(t, want, kind.String())
	}
}

func TestNameFolding(t *testing.T) {
	t.Run("EqualName ignores case", func(t *testing.T) {
		assert.True(t, EqualName("Path", "PATH"))
		assert.True(t, EqualName("temp", "TEMP"))
		assert.False(t, EqualName("PATH", "PATHEXT"))
	})

	t.Run("FoldName collapses case variants to one key", func(t *testing.T) {
		assert.Equal(t, FoldName("Path"), FoldName("PATH"))
		assert.NotEqual(t, FoldName("PATH"), FoldName("PATHEXT"))
	})
}
