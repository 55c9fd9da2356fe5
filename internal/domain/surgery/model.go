package surgery

import (
	"time"

	"github.com/google/uuid"
)

// Surgery maps to the surgery table. Cancelled and postponed rows are kept
// for the record but excluded from demand history.
type Surgery struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	PatientID     uuid.UUID  `db:"patient_id" json:"patient_id"`
	SurgeonID     uuid.UUID  `db:"surgeon_id" json:"surgeon_id"`
	ProcedureName string     `db:"procedure_name" json:"procedure_name"`
	ProcedureCode *string    `db:"procedure_code" json:"procedure_code,omitempty"`
	Status        string     `db:"status" json:"status"`
	ScheduledDate time.Time  `db:"scheduled_date" json:"scheduled_date"`
	StartTime     *time.Time `db:"start_time" json:"start_time,omitempty"`
	EndTime       *time.Time `db:"end_time" json:"end_time,omitempty"`
	ORRoom        *string    `db:"or_room" json:"or_room,omitempty"`
	Note          *string    `db:"note" json:"note,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
