package senvvar

import (
	"github.com/meop/WinEnvEdit-sub001/pkg/hivedb/gen"
	"github.com/meop/WinEnvEdit-sub001/pkg/model/menvvar"
)

func ConvertToDBVariable(v menvvar.EnvironmentVariable, createdAt, updatedAt int64) gen.EnvironmentVariable {
	return gen.EnvironmentVariable{
		ID:        v.ID,
		Name:      v.Name,
		Data:      v.Data,
		ValueType: int8(v.Type),
		Scope:     int8(v.Scope),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ConvertToModelVariable maps a stored row to the model. Stored rows are
// committed state, so the edit flags come back false.
func ConvertToModelVariable(v gen.EnvironmentVariable) *menvvar.EnvironmentVariable {
	return &menvvar.EnvironmentVariable{
		ID:    v.ID,
		Name:  v.Name,
		Data:  v.Data,
		Type:  menvvar.ValueKind(v.ValueType),
		Scope: menvvar.Scope(v.Scope),
	}
}
