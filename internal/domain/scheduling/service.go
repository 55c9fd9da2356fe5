package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	appointments AppointmentRepository
}

func NewService(appointments AppointmentRepository) *Service {
	return &Service{appointments: appointments}
}

var validAppointmentStatuses = map[string]bool{
	"scheduled": true, "confirmed": true, "pending": true,
	"completed": true, "cancelled": true, "no-show": true,
}

func (s *Service) CreateAppointment(ctx context.Context, a *Appointment) error {
	if a.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if a.PractitionerID == uuid.Nil {
		return fmt.Errorf("practitioner_id is required")
	}
	if a.StartTime.IsZero() {
		return fmt.Errorf("start_time is required")
	}
	if a.Status == "" {
		a.Status = "scheduled"
	}
	if !validAppointmentStatuses[a.Status] {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	if a.EndTime == nil && a.MinutesDuration != nil {
		end := a.StartTime.Add(time.Duration(*a.MinutesDuration) * time.Minute)
		a.EndTime = &end
	}
	return s.appointments.Create(ctx, a)
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) UpdateAppointment(ctx context.Context, a *Appointment) error {
	if a.Status != "" && !validAppointmentStatuses[a.Status] {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	return s.appointments.Update(ctx, a)
}

// CancelAppointment marks an appointment cancelled without deleting the row,
// so the record survives but stops counting toward demand history.
func (s *Service) CancelAppointment(ctx context.Context, id uuid.UUID, reason string) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status == "completed" {
		return nil, fmt.Errorf("cannot cancel a completed appointment")
	}
	a.Status = "cancelled"
	if reason != "" {
		a.CancellationReason = &reason
	}
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.appointments.Delete(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.List(ctx, limit, offset)
}

func (s *Service) ListAppointmentsByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListAppointmentsByPractitioner(ctx context.Context, practitionerID uuid.UUID, from, to time.Time, limit, offset int) ([]*Appointment, int, error) {
	if to.IsZero() {
		to = from.AddDate(1, 0, 0)
	}
	return s.appointments.ListByPractitioner(ctx, practitionerID, from, to, limit, offset)
}
