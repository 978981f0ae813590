package gen

import (
	"github.com/meop/WinEnvEdit-sub001/pkg/idwrap"
)

type EnvironmentVariable struct {
	ID        idwrap.IDWrap
	Name      string
	Data      string
	ValueType int8
	Scope     int8
	CreatedAt int64
	UpdatedAt int64
}
