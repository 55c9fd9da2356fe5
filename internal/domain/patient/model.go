package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table.
type Patient struct {
	ID                    uuid.UUID  `db:"id" json:"id"`
	MRN                   string     `db:"mrn" json:"mrn"`
	Active                bool       `db:"active" json:"active"`
	NameFamily            string     `db:"name_family" json:"name_family"`
	NameGiven             string     `db:"name_given" json:"name_given"`
	Gender                *string    `db:"gender" json:"gender,omitempty"`
	BirthDate             *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	TelecomPhone          *string    `db:"telecom_phone" json:"telecom_phone,omitempty"`
	TelecomEmail          *string    `db:"telecom_email" json:"telecom_email,omitempty"`
	AddressLine           *string    `db:"address_line" json:"address_line,omitempty"`
	AddressCity           *string    `db:"address_city" json:"address_city,omitempty"`
	AddressPostalCode     *string    `db:"address_postal_code" json:"address_postal_code,omitempty"`
	PrimaryPractitionerID *uuid.UUID `db:"primary_practitioner_id" json:"primary_practitioner_id,omitempty"`
	RegisteredAt          time.Time  `db:"registered_at" json:"registered_at"`
	CreatedAt             time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at" json:"updated_at"`
}
