package sqlite

import (
	"context"
	"time"

	"github.com/flockhq/flock/internal/members/domain"
)

type churchesRepo struct {
	db dbtx
}

func (r *churchesRepo) CreateChurch(ctx context.Context, c domain.Church) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO churches (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, now, now,
	)
	return mapErr(err)
}

func (r *churchesRepo) GetChurchByID(ctx context.Context, id string) (domain.Church, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM churches WHERE id = ?`, id)
	return scanChurch(row)
}

func (r *churchesRepo) GetChurchByName(ctx context.Context, name string) (domain.Church, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM churches WHERE name = ?`, name)
	return scanChurch(row)
}

func (r *churchesRepo) ListChurches(ctx context.Context) ([]domain.Church, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM churches ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var churches []domain.Church
	for rows.Next() {
		var c domain.Church
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		churches = append(churches, c)
	}
	return churches, rows.Err()
}

func (r *churchesRepo) RenameChurch(ctx context.Context, id, name string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE churches SET name = ?, updated_at = ? WHERE id = ?`,
		name, time.Now().UTC(), id,
	)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *churchesRepo) DeleteChurch(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM churches WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChurch(row rowScanner) (domain.Church, error) {
	var c domain.Church
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.Church{}, mapErr(err)
	}
	return c, nil
}
