// Package ioenv moves whole-scope snapshots of environment variables in
// and out of the system as YAML or JSON documents.
package ioenv

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/meop/WinEnvEdit-sub001/pkg/customerror"
	"github.com/meop/WinEnvEdit-sub001/pkg/model/menvvar"
	"github.com/meop/WinEnvEdit-sub001/pkg/registry"
)

const SnapshotVersion = 1

var (
	ErrVersionUnsupported = errors.New("snapshot version not supported")
	ErrScopeMismatch      = errors.New("snapshot scope does not match import scope")
)

// EnvSnapshot is one scope's variables at a point in time. Exported
// snapshots never carry edit flags.
type EnvSnapshot struct {
	Version    int                           `json:"version" yaml:"version"`
	Scope      menvvar.Scope                 `json:"scope" yaml:"scope"`
	ExportedAt time.Time                     `json:"exported_at" yaml:"exported_at"`
	Variables  []menvvar.EnvironmentVariable `json:"variables" yaml:"variables"`
}

type ImportOptions struct {
	// Replace removes variables that exist in the target scope but not in
	// the snapshot. Without it the snapshot only adds and updates.
	Replace bool
}

type ImportResult struct {
	Created int
	Updated int
	Removed int
}

// Export captures the current state of a scope through the collaborator.
func Export(ctx context.Context, loader registry.Loader, scope menvvar.Scope) (*EnvSnapshot, error) {
	vars, err := loader.Load(ctx, scope)
	if err != nil {
		return nil, err
	}
	return &EnvSnapshot{
		Version:    SnapshotVersion,
		Scope:      scope,
		ExportedAt: time.Now().UTC(),
		Variables:  vars,
	}, nil
}

func MarshalYAML(snapshot *EnvSnapshot) ([]byte, error) {
	return yaml.Marshal(snapshot)
}

func UnmarshalYAML(data []byte) (*EnvSnapshot, error) {
	var snapshot EnvSnapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, customerror.New("snapshot file is not valid YAML", err.Error())
	}
	if snapshot.Version != SnapshotVersion {
		return nil, ErrVersionUnsupported
	}
	return &snapshot, nil
}

func MarshalJSON(snapshot *EnvSnapshot) ([]byte, error) {
	return json.MarshalIndent(snapshot, "", "  ")
}

func UnmarshalJSON(data []byte) (*EnvSnapshot, error) {
	var snapshot EnvSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, customerror.New("snapshot file is not valid JSON", err.Error())
	}
	if snapshot.Version != SnapshotVersion {
		return nil, ErrVersionUnsupported
	}
	return &snapshot, nil
}

// Import applies a snapshot to a scope through the collaborator pair. The
// change set is built against the live state: unknown names become adds,
// known names become updates, and with opts.Replace names absent from the
// snapshot become removals.
func Import(ctx context.Context, store registry.Store, scope menvvar.Scope, snapshot *EnvSnapshot, opts ImportOptions) (*ImportResult, error) {
	if snapshot.Scope != scope {
		return nil, ErrScopeMismatch
	}

	current, err := store.Load(ctx, scope)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]menvvar.EnvironmentVariable, len(current))
	for _, v := range current {
		existing[menvvar.FoldName(v.Name)] = v
	}

	result := &ImportResult{}
	changes := make([]menvvar.EnvironmentVariable, 0, len(snapshot.Variables))
	seen := make(map[string]struct{}, len(snapshot.Variables))

	for _, v := range snapshot.Variables {
		key := menvvar.FoldName(v.Name)
		seen[key] = struct{}{}

		stored, exists := existing[key]
		if exists && stored.Data == v.Data && stored.Type == v.Type {
			continue
		}

		change, err := menvvar.Default().
			WithName(v.Name).
			WithData(v.Data).
			WithType(v.Type).
			WithScope(scope).
			WithIsAdded(!exists).
			Build()
		if err != nil {
			return nil, err
		}

		if exists {
			result.Updated++
		} else {
			result.Created++
		}
		changes = append(changes, change)
	}

	if opts.Replace {
		for key, stored := range existing {
			if _, ok := seen[key]; ok {
				continue
			}
			removal := stored
			removal.IsRemoved = true
			changes = append(changes, removal)
			result.Removed++
		}
	}

	if len(changes) == 0 {
		return result, nil
	}
	if err := store.Apply(ctx, scope, changes); err != nil {
		return nil, err
	}
	return result, nil
}
