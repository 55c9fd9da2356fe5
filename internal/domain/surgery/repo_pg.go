package surgery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type surgeryRepoPG struct{ pool *pgxpool.Pool }

func NewSurgeryRepoPG(pool *pgxpool.Pool) SurgeryRepository {
	return &surgeryRepoPG{pool: pool}
}

const surgeryCols = `id, patient_id, surgeon_id, procedure_name, procedure_code, status,
	scheduled_date, start_time, end_time, or_room, note, created_at, updated_at`

func scanSurgery(row pgx.Row) (*Surgery, error) {
	var s Surgery
	err := row.Scan(&s.ID, &s.PatientID, &s.SurgeonID, &s.ProcedureName, &s.ProcedureCode, &s.Status,
		&s.ScheduledDate, &s.StartTime, &s.EndTime, &s.ORRoom, &s.Note, &s.CreatedAt, &s.UpdatedAt)
	return &s, err
}

func (r *surgeryRepoPG) Create(ctx context.Context, s *Surgery) error {
	s.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO surgery (id, patient_id, surgeon_id, procedure_name, procedure_code, status,
			scheduled_date, start_time, end_time, or_room, note)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		s.ID, s.PatientID, s.SurgeonID, s.ProcedureName, s.ProcedureCode, s.Status,
		s.ScheduledDate, s.StartTime, s.EndTime, s.ORRoom, s.Note)
	return err
}

func (r *surgeryRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Surgery, error) {
	return scanSurgery(r.pool.QueryRow(ctx,
		`SELECT `+surgeryCols+` FROM surgery WHERE id = $1`, id))
}

func (r *surgeryRepoPG) Update(ctx context.Context, s *Surgery) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE surgery SET status=$2, scheduled_date=$3, start_time=$4, end_time=$5,
			procedure_name=$6, procedure_code=$7, or_room=$8, note=$9, updated_at=NOW()
		WHERE id = $1`,
		s.ID, s.Status, s.ScheduledDate, s.StartTime, s.EndTime,
		s.ProcedureName, s.ProcedureCode, s.ORRoom, s.Note)
	return err
}

func (r *surgeryRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM surgery WHERE id = $1`, id)
	return err
}

func (r *surgeryRepoPG) List(ctx context.Context, limit, offset int) ([]*Surgery, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM surgery`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+surgeryCols+` FROM surgery ORDER BY scheduled_date DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectSurgeries(rows)
	return items, total, err
}

func (r *surgeryRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Surgery, int, error) {
	return r.listBy(ctx, `patient_id`, patientID, limit, offset)
}

func (r *surgeryRepoPG) ListBySurgeon(ctx context.Context, surgeonID uuid.UUID, limit, offset int) ([]*Surgery, int, error) {
	return r.listBy(ctx, `surgeon_id`, surgeonID, limit, offset)
}

func (r *surgeryRepoPG) listBy(ctx context.Context, column string, id uuid.UUID, limit, offset int) ([]*Surgery, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM surgery WHERE `+column+` = $1`, id).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+surgeryCols+` FROM surgery WHERE `+column+` = $1
		 ORDER BY scheduled_date DESC LIMIT $2 OFFSET $3`,
		id, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectSurgeries(rows)
	return items, total, err
}

func collectSurgeries(rows pgx.Rows) ([]*Surgery, error) {
	var items []*Surgery
	for rows.Next() {
		s, err := scanSurgery(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
