package gen

import (
	"context"

	"github.com/meop/WinEnvEdit-sub001/pkg/idwrap"
)

const createEnvironmentVariable = `-- name: CreateEnvironmentVariable :exec
INSERT INTO environment_variables (id, name, data, value_type, scope, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

type CreateEnvironmentVariableParams struct {
	ID        idwrap.IDWrap
	Name      string
	Data      string
	ValueType int8
	Scope     int8
	CreatedAt int64
	UpdatedAt int64
}

func (q *Queries) CreateEnvironmentVariable(ctx context.Context, arg CreateEnvironmentVariableParams) error {
	_, err := q.db.ExecContext(ctx, createEnvironmentVariable,
		arg.ID,
		arg.Name,
		arg.Data,
		arg.ValueType,
		arg.Scope,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getEnvironmentVariable = `-- name: GetEnvironmentVariable :one
SELECT id, name, data, value_type, scope, created_at, updated_at
FROM environment_variables
WHERE id = ?
`

func (q *Queries) GetEnvironmentVariable(ctx context.Context, id idwrap.IDWrap) (EnvironmentVariable, error) {
	row := q.db.QueryRowContext(ctx, getEnvironmentVariable, id)
	var i EnvironmentVariable
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Data,
		&i.ValueType,
		&i.Scope,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getEnvironmentVariableByName = `-- name: GetEnvironmentVariableByName :one
SELECT id, name, data, value_type, scope, created_at, updated_at
FROM environment_variables
WHERE scope = ? AND name = ?
`

type GetEnvironmentVariableByNameParams struct {
	Scope int8
	Name  string
}

func (q *Queries) GetEnvironmentVariableByName(ctx context.Context, arg GetEnvironmentVariableByNameParams) (EnvironmentVariable, error) {
	row := q.db.QueryRowContext(ctx, getEnvironmentVariableByName, arg.Scope, arg.Name)
	var i EnvironmentVariable
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Data,
		&i.ValueType,
		&i.Scope,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getEnvironmentVariablesByScope = `-- name: GetEnvironmentVariablesByScope :many
SELECT id, name, data, value_type, scope, created_at, updated_at
FROM environment_variables
WHERE scope = ?
ORDER BY name COLLATE NOCASE
`

func (q *Queries) GetEnvironmentVariablesByScope(ctx context.Context, scope int8) ([]EnvironmentVariable, error) {
	rows, err := q.db.QueryContext(ctx, getEnvironmentVariablesByScope, scope)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []EnvironmentVariable
	for rows.Next() {
		var i EnvironmentVariable
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Data,
			&i.ValueType,
			&i.Scope,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateEnvironmentVariable = `-- name: UpdateEnvironmentVariable :exec
UPDATE environment_variables
SET name = ?, data = ?, value_type = ?, updated_at = ?
WHERE id = ?
`

type UpdateEnvironmentVariableParams struct {
	Name      string
	Data      string
	ValueType int8
	UpdatedAt int64
	ID        idwrap.IDWrap
}

func (q *Queries) UpdateEnvironmentVariable(ctx context.Context, arg UpdateEnvironmentVariableParams) error {
	_, err := q.db.ExecContext(ctx, updateEnvironmentVariable,
		arg.Name,
		arg.Data,
		arg.ValueType,
		arg.UpdatedAt,
		arg.ID,
	)
	return err
}

const deleteEnvironmentVariable = `-- name: DeleteEnvironmentVariable :exec
DELETE FROM environment_variables
WHERE id = ?
`

func (q *Queries) DeleteEnvironmentVariable(ctx context.Context, id idwrap.IDWrap) error {
	_, err := q.db.ExecContext(ctx, deleteEnvironmentVariable, id)
	return err
}

const deleteEnvironmentVariablesByScope = `-- name: DeleteEnvironmentVariablesByScope :exec
DELETE FROM environment_variables
WHERE scope = ?
`

func (q *Queries) DeleteEnvironmentVariablesByScope(ctx context.Context, scope int8) error {
	_, err := q.db.ExecContext(ctx, deleteEnvironmentVariablesByScope, scope)
	return err
}
