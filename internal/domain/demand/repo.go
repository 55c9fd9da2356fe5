package demand

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// HistoryRepository reads per-day event counts for the three demand streams
// over [from, to). When practitionerID is nil the counts span all
// practitioners. Only events that did or will take place count: cancelled
// appointments and cancelled or postponed surgeries are excluded; patient
// registrations have no status filter.
type HistoryRepository interface {
	AppointmentsPerDay(ctx context.Context, practitionerID *uuid.UUID, from, to time.Time) ([]HistoricalPoint, error)
	SurgeriesPerDay(ctx context.Context, practitionerID *uuid.UUID, from, to time.Time) ([]HistoricalPoint, error)
	RegistrationsPerDay(ctx context.Context, practitionerID *uuid.UUID, from, to time.Time) ([]HistoricalPoint, error)
}
