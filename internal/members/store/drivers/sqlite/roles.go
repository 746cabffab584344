package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/flockhq/flock/internal/members/domain"
)

type rolesRepo struct {
	db dbtx
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO roles (id, name, description, permissions, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		role.ID, role.Name,
		mapOptionalString(role.Description),
		joinPermissions(role.Permissions),
		role.Active, now, now,
	)
	return mapErr(err)
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.Role, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, permissions, active, created_at, updated_at
		FROM roles WHERE id = ?`, id)
	return scanRole(row)
}

func (r *rolesRepo) ListRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, permissions, active, created_at, updated_at
		FROM roles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) UpdateRole(ctx context.Context, role domain.Role) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE roles SET name = ?, description = ?, permissions = ?, active = ?, updated_at = ?
		WHERE id = ?`,
		role.Name,
		mapOptionalString(role.Description),
		joinPermissions(role.Permissions),
		role.Active,
		time.Now().UTC(), role.ID,
	)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *rolesRepo) DeleteRole(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roles WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func scanRole(row rowScanner) (domain.Role, error) {
	var (
		role        domain.Role
		description sql.NullString
		permissions string
	)
	err := row.Scan(
		&role.ID, &role.Name, &description, &permissions, &role.Active,
		&role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		return domain.Role{}, mapErr(err)
	}

	role.Description = mapNullString(description)
	role.Permissions = splitPermissions(permissions)
	return role, nil
}
