package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// Appointment maps to the appointment table. Rows with status cancelled or
// no-show are kept for the record but never count toward demand history.
type Appointment struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	PatientID          uuid.UUID  `db:"patient_id" json:"patient_id"`
	PractitionerID     uuid.UUID  `db:"practitioner_id" json:"practitioner_id"`
	Status             string     `db:"status" json:"status"`
	StartTime          time.Time  `db:"start_time" json:"start_time"`
	EndTime            *time.Time `db:"end_time" json:"end_time,omitempty"`
	MinutesDuration    *int       `db:"minutes_duration" json:"minutes_duration,omitempty"`
	Reason             *string    `db:"reason" json:"reason,omitempty"`
	Note               *string    `db:"note" json:"note,omitempty"`
	CancellationReason *string    `db:"cancellation_reason" json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}
