package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/flockhq/flock/internal/members/domain"
)

type personsRepo struct {
	db dbtx
}

const personColumns = `id, firstname, lastname, email, phone, gender,
	civil_status, birthday, address, place_of_work, age_group, country,
	district, created_at, updated_at`

func (r *personsRepo) CreatePerson(ctx context.Context, p domain.Person) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO persons (`+personColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Firstname, p.Lastname, p.Email,
		mapOptionalString(p.Phone),
		mapOptionalString(p.Gender),
		mapOptionalString(p.CivilStatus),
		mapOptionalTime(p.Birthday),
		mapOptionalString(p.Address),
		mapOptionalString(p.PlaceOfWork),
		mapOptionalString(p.AgeGroup),
		mapOptionalString(p.Country),
		mapOptionalString(p.District),
		now, now,
	)
	return mapErr(err)
}

func (r *personsRepo) GetPersonByID(ctx context.Context, id string) (domain.Person, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+personColumns+` FROM persons WHERE id = ?`, id)
	return scanPerson(row)
}

func (r *personsRepo) GetPersonByEmail(ctx context.Context, email string) (domain.Person, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+personColumns+` FROM persons WHERE email = ?`, email)
	return scanPerson(row)
}

func (r *personsRepo) ListPersons(ctx context.Context) ([]domain.Person, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+personColumns+` FROM persons ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var persons []domain.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}
	return persons, rows.Err()
}

func (r *personsRepo) UpdatePerson(ctx context.Context, p domain.Person) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE persons SET
			firstname = ?, lastname = ?, email = ?, phone = ?, gender = ?,
			civil_status = ?, birthday = ?, address = ?, place_of_work = ?,
			age_group = ?, country = ?, district = ?, updated_at = ?
		WHERE id = ?`,
		p.Firstname, p.Lastname, p.Email,
		mapOptionalString(p.Phone),
		mapOptionalString(p.Gender),
		mapOptionalString(p.CivilStatus),
		mapOptionalTime(p.Birthday),
		mapOptionalString(p.Address),
		mapOptionalString(p.PlaceOfWork),
		mapOptionalString(p.AgeGroup),
		mapOptionalString(p.Country),
		mapOptionalString(p.District),
		time.Now().UTC(), p.ID,
	)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *personsRepo) DeletePerson(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM persons WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func scanPerson(row rowScanner) (domain.Person, error) {
	var (
		p                              domain.Person
		phone, gender, civilStatus     sql.NullString
		address, placeOfWork, ageGroup sql.NullString
		country, district              sql.NullString
		birthday                       sql.NullTime
	)
	err := row.Scan(
		&p.ID, &p.Firstname, &p.Lastname, &p.Email, &phone, &gender,
		&civilStatus, &birthday, &address, &placeOfWork, &ageGroup,
		&country, &district, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Person{}, mapErr(err)
	}

	p.Phone = mapNullString(phone)
	p.Gender = mapNullString(gender)
	p.CivilStatus = mapNullString(civilStatus)
	p.Birthday = mapNullTime(birthday)
	p.Address = mapNullString(address)
	p.PlaceOfWork = mapNullString(placeOfWork)
	p.AgeGroup = mapNullString(ageGroup)
	p.Country = mapNullString(country)
	p.District = mapNullString(district)
	return p, nil
}
