package sqlite

import (
	"context"
	"time"

	"github.com/flockhq/flock/internal/members/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, password_hash, role_id, church_id,
	person_id, created_at, updated_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.PasswordHash, u.RoleID, u.ChurchID, u.PersonID,
		now, now,
	)
	return mapErr(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) GetUserDetailByID(ctx context.Context, id string) (domain.UserDetail, error) {
	user, err := r.GetUserByID(ctx, id)
	if err != nil {
		return domain.UserDetail{}, err
	}

	person, err := (&personsRepo{db: r.db}).GetPersonByID(ctx, user.PersonID)
	if err != nil {
		return domain.UserDetail{}, err
	}
	role, err := (&rolesRepo{db: r.db}).GetRoleByID(ctx, user.RoleID)
	if err != nil {
		return domain.UserDetail{}, err
	}
	church, err := (&churchesRepo{db: r.db}).GetChurchByID(ctx, user.ChurchID)
	if err != nil {
		return domain.UserDetail{}, err
	}

	return domain.UserDetail{
		ID:        user.ID,
		Username:  user.Username,
		Person:    person,
		Role:      role,
		Church:    church,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

func (r *usersRepo) ListUserSummaries(ctx context.Context) ([]domain.UserSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.username, p.firstname, p.lastname, p.email, r.name
		FROM users u
		JOIN persons p ON p.id = u.person_id
		JOIN roles r ON r.id = u.role_id
		ORDER BY u.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.UserSummary
	for rows.Next() {
		var s domain.UserSummary
		err := rows.Scan(&s.ID, &s.Username, &s.Firstname, &s.Lastname, &s.Email, &s.RoleName)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *usersRepo) UpdateUser(ctx context.Context, id, username, roleID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET username = ?, role_id = ?, updated_at = ? WHERE id = ?`,
		username, roleID, time.Now().UTC(), id,
	)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *usersRepo) DeleteUser(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.RoleID, &u.ChurchID,
		&u.PersonID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	return u, nil
}
