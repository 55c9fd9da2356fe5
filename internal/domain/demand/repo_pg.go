package demand

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type historyRepoPG struct{ pool *pgxpool.Pool }

func NewHistoryRepoPG(pool *pgxpool.Pool) HistoryRepository {
	return &historyRepoPG{pool: pool}
}

func (r *historyRepoPG) AppointmentsPerDay(ctx context.Context, practitionerID *uuid.UUID, from, to time.Time) ([]HistoricalPoint, error) {
	return r.countsPerDay(ctx, `
		SELECT (start_time AT TIME ZONE 'UTC')::date AS day, COUNT(*)
		FROM appointment
		WHERE start_time >= $1 AND start_time < $2
		  AND status NOT IN ('cancelled', 'no-show')
		  AND ($3::uuid IS NULL OR practitioner_id = $3)
		GROUP BY day
		ORDER BY day`,
		practitionerID, from, to)
}

func (r *historyRepoPG) SurgeriesPerDay(ctx context.Context, practitionerID *uuid.UUID, from, to time.Time) ([]HistoricalPoint, error) {
	return r.countsPerDay(ctx, `
		SELECT (scheduled_date AT TIME ZONE 'UTC')::date AS day, COUNT(*)
		FROM surgery
		WHERE scheduled_date >= $1 AND scheduled_date < $2
		  AND status NOT IN ('cancelled', 'postponed')
		  AND ($3::uuid IS NULL OR surgeon_id = $3)
		GROUP BY day
		ORDER BY day`,
		practitionerID, from, to)
}

func (r *historyRepoPG) RegistrationsPerDay(ctx context.Context, practitionerID *uuid.UUID, from, to time.Time) ([]HistoricalPoint, error) {
	return r.countsPerDay(ctx, `
		SELECT (registered_at AT TIME ZONE 'UTC')::date AS day, COUNT(*)
		FROM patient
		WHERE registered_at >= $1 AND registered_at < $2
		  AND ($3::uuid IS NULL OR primary_practitioner_id = $3)
		GROUP BY day
		ORDER BY day`,
		practitionerID, from, to)
}

func (r *historyRepoPG) countsPerDay(ctx context.Context, sql string, practitionerID *uuid.UUID, from, to time.Time) ([]HistoricalPoint, error) {
	rows, err := r.pool.Query(ctx, sql, from, to, practitionerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []HistoricalPoint
	for rows.Next() {
		var p HistoricalPoint
		if err := rows.Scan(&p.Date, &p.Count); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return points, nil
}
