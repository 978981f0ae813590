//go:build windows

// Package winregistry is the registry.Store implementation backed by the
// real Windows registry hives.
package winregistry

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/meop/WinEnvEdit-sub001/pkg/model/menvvar"
	pkgregistry "github.com/meop/WinEnvEdit-sub001/pkg/registry"
)

const (
	userEnvPath   = `Environment`
	systemEnvPath = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`
)

// multiStringSep joins REG_MULTI_SZ entries inside a single Data string.
const multiStringSep = "\n"

type Store struct{}

func New() *Store {
	return &Store{}
}

var _ pkgregistry.Store = (*Store)(nil)

func openScopeKey(scope menvvar.Scope, access uint32) (registry.Key, error) {
	switch scope {
	case menvvar.ScopeUser:
		return registry.OpenKey(registry.CURRENT_USER, userEnvPath, access)
	case menvvar.ScopeSystem:
		return registry.OpenKey(registry.LOCAL_MACHINE, systemEnvPath, access)
	default:
		return 0, pkgregistry.ErrUnknownScope
	}
}

// Load enumerates the environment values of the scope's hive.
func (s *Store) Load(ctx context.Context, scope menvvar.Scope) ([]menvvar.EnvironmentVariable, error) {
	key, err := openScopeKey(scope, registry.QUERY_VALUE)
	if err != nil {
		return nil, fmt.Errorf("open %s environment key: %w", scope, err)
	}
	defer key.Close()

	names, err := key.ReadValueNames(0)
	if err != nil {
		return nil, fmt.Errorf("enumerate %s environment values: %w", scope, err)
	}

	vars := make([]menvvar.EnvironmentVariable, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := readValue(key, name, scope)
		if err != nil {
			return nil, fmt.Errorf("read %s value %s: %w", scope, name, err)
		}
		vars = append(vars, v)
	}
	return vars, nil
}

func readValue(key registry.Key, name string, scope menvvar.Scope) (menvvar.EnvironmentVariable, error) {
	_, valType, err := key.GetValue(name, nil)
	if err != nil {
		return menvvar.EnvironmentVariable{}, err
	}

	v := menvvar.EnvironmentVariable{Name: name, Scope: scope}
	switch valType {
	case registry.SZ, registry.EXPAND_SZ:
		data, _, err := key.GetStringValue(name)
		if err != nil {
			return menvvar.EnvironmentVariable{}, err
		}
		v.Data = data
		if valType == registry.EXPAND_SZ {
			v.Type = menvvar.ValueKindExpandString
		}
	case registry.MULTI_SZ:
		parts, _, err := key.GetStringsValue(name)
		if err != nil {
			return menvvar.EnvironmentVariable{}, err
		}
		v.Data = strings.Join(parts, multiStringSep)
		v.Type = menvvar.ValueKindMultiString
	case registry.DWORD, registry.QWORD:
		n, _, err := key.GetIntegerValue(name)
		if err != nil {
			return menvvar.EnvironmentVariable{}, err
		}
		v.Data = strconv.FormatUint(n, 10)
		if valType == registry.QWORD {
			v.Type = menvvar.ValueKindQWord
		} else {
			v.Type = menvvar.ValueKindDWord
		}
	case registry.BINARY:
		raw, _, err := key.GetBinaryValue(name)
		if err != nil {
			return menvvar.EnvironmentVariable{}, err
		}
		v.Data = hex.EncodeToString(raw)
		v.Type = menvvar.ValueKindBinary
	default:
		// Uncommon kinds (REG_LINK, big-endian dwords) come back hex-encoded
		// so nothing is lost on a round trip the editor does not touch.
		buf := make([]byte, 0)
		n, _, err := key.GetValue(name, buf)
		if err == nil && n > 0 {
			buf = make([]byte, n)
			_, _, err = key.GetValue(name, buf)
		}
		if err != nil {
			return menvvar.EnvironmentVariable{}, err
		}
		v.Data = hex.EncodeToString(buf)
		if valType == registry.LINK {
			v.Type = menvvar.ValueKindLink
		} else {
			v.Type = menvvar.ValueKindDWordBigEndian
		}
	}
	return v, nil
}

// Apply writes a pending change set to the scope's hive: removals first,
// then creates and updates, which are the same registry operation.
//
// TODO: broadcast WM_SETTINGCHANGE after a successful apply so running
// shells pick up the new values without a logoff.
func (s *Store) Apply(ctx context.Context, scope menvvar.Scope, changes []menvvar.EnvironmentVariable) error {
	if err := pkgregistry.ValidateChanges(scope, changes); err != nil {
		return err
	}

	key, err := openScopeKey(scope, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open %s environment key: %w", scope, err)
	}
	defer key.Close()

	for _, change := range changes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if change.IsRemoved {
			if err := key.DeleteValue(change.Name); err != nil {
				return fmt.Errorf("delete %s value %s: %w", scope, change.Name, err)
			}
			continue
		}
		if err := writeValue(key, change); err != nil {
			return fmt.Errorf("write %s value %s: %w", scope, change.Name, err)
		}
	}
	return nil
}

func writeValue(key registry.Key, v menvvar.EnvironmentVariable) error {
	switch v.Type {
	case menvvar.ValueKindString:
		return key.SetStringValue(v.Name, v.Data)
	case menvvar.ValueKindExpandString:
		return key.SetExpandStringValue(v.Name, v.Data)
	case menvvar.ValueKindMultiString:
		return key.SetStringsValue(v.Name, strings.Split(v.Data, multiStringSep))
	case menvvar.ValueKindDWord:
		n, err := strconv.ParseUint(v.Data, 10, 32)
		if err != nil {
			return fmt.Errorf("dword value %q: %w", v.Data, err)
		}
		return key.SetDWordValue(v.Name, uint32(n))
	case menvvar.ValueKindQWord:
		n, err := strconv.ParseUint(v.Data, 10, 64)
		if err != nil {
			return fmt.Errorf("qword value %q: %w", v.Data, err)
		}
		return key.SetQWordValue(v.Name, n)
	case menvvar.ValueKindBinary:
		raw, err := hex.DecodeString(v.Data)
		if err != nil {
			return fmt.Errorf("binary value: %w", err)
		}
		return key.SetBinaryValue(v.Name, raw)
	default:
		return fmt.Errorf("value kind %s is not writable", v.Type)
	}
}
