package patient

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{pool: pool}
}

const patientCols = `id, mrn, active, name_family, name_given, gender, birth_date,
	telecom_phone, telecom_email, address_line, address_city, address_postal_code,
	primary_practitioner_id, registered_at, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.MRN, &p.Active, &p.NameFamily, &p.NameGiven, &p.Gender, &p.BirthDate,
		&p.TelecomPhone, &p.TelecomEmail, &p.AddressLine, &p.AddressCity, &p.AddressPostalCode,
		&p.PrimaryPractitionerID, &p.RegisteredAt, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient (id, mrn, active, name_family, name_given, gender, birth_date,
			telecom_phone, telecom_email, address_line, address_city, address_postal_code,
			primary_practitioner_id, registered_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		p.ID, p.MRN, p.Active, p.NameFamily, p.NameGiven, p.Gender, p.BirthDate,
		p.TelecomPhone, p.TelecomEmail, p.AddressLine, p.AddressCity, p.AddressPostalCode,
		p.PrimaryPractitionerID, p.RegisteredAt)
	return err
}

func (r *patientRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
}

func (r *patientRepoPG) GetByMRN(ctx context.Context, mrn string) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE mrn = $1`, mrn))
}

func (r *patientRepoPG) Update(ctx context.Context, p *Patient) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE patient SET active=$2, name_family=$3, name_given=$4, gender=$5, birth_date=$6,
			telecom_phone=$7, telecom_email=$8, address_line=$9, address_city=$10,
			address_postal_code=$11, primary_practitioner_id=$12, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Active, p.NameFamily, p.NameGiven, p.Gender, p.BirthDate,
		p.TelecomPhone, p.TelecomEmail, p.AddressLine, p.AddressCity,
		p.AddressPostalCode, p.PrimaryPractitionerID)
	return err
}

func (r *patientRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	return err
}

func (r *patientRepoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patient ORDER BY name_family, name_given LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectPatients(rows)
	return items, total, err
}

func (r *patientRepoPG) Search(ctx context.Context, name string, limit, offset int) ([]*Patient, int, error) {
	pattern := "%" + name + "%"
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM patient WHERE name_family ILIKE $1 OR name_given ILIKE $1`,
		pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patient
		 WHERE name_family ILIKE $1 OR name_given ILIKE $1
		 ORDER BY name_family, name_given LIMIT $2 OFFSET $3`,
		pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectPatients(rows)
	return items, total, err
}

func (r *patientRepoPG) ListByPractitioner(ctx context.Context, practitionerID uuid.UUID, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM patient WHERE primary_practitioner_id = $1`,
		practitionerID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patient WHERE primary_practitioner_id = $1
		 ORDER BY registered_at DESC LIMIT $2 OFFSET $3`,
		practitionerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectPatients(rows)
	return items, total, err
}

func collectPatients(rows pgx.Rows) ([]*Patient, error) {
	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
