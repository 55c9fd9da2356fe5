package surgery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validSurgeryStatuses = map[string]bool{
	"scheduled": true,
	"pre-op":    true,
	"in-or":     true,
	"completed": true,
	"cancelled": true,
	"postponed": true,
}

// Terminal statuses cannot transition back to an active one.
var terminalSurgeryStatuses = map[string]bool{
	"completed": true,
	"cancelled": true,
}

type Service struct {
	repo SurgeryRepository
}

func NewService(repo SurgeryRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateSurgery(ctx context.Context, sg *Surgery) error {
	if sg.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if sg.SurgeonID == uuid.Nil {
		return fmt.Errorf("surgeon_id is required")
	}
	if sg.ProcedureName == "" {
		return fmt.Errorf("procedure_name is required")
	}
	if sg.ScheduledDate.IsZero() {
		return fmt.Errorf("scheduled_date is required")
	}
	if sg.Status == "" {
		sg.Status = "scheduled"
	}
	if !validSurgeryStatuses[sg.Status] {
		return fmt.Errorf("invalid status: %s", sg.Status)
	}
	if sg.StartTime != nil && sg.EndTime != nil && !sg.EndTime.After(*sg.StartTime) {
		return fmt.Errorf("end_time must be after start_time")
	}
	return s.repo.Create(ctx, sg)
}

func (s *Service) GetSurgery(ctx context.Context, id uuid.UUID) (*Surgery, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateSurgery(ctx context.Context, sg *Surgery) error {
	existing, err := s.repo.GetByID(ctx, sg.ID)
	if err != nil {
		return err
	}
	if !validSurgeryStatuses[sg.Status] {
		return fmt.Errorf("invalid status: %s", sg.Status)
	}
	if terminalSurgeryStatuses[existing.Status] && sg.Status != existing.Status {
		return fmt.Errorf("surgery is %s and cannot change status", existing.Status)
	}
	return s.repo.Update(ctx, sg)
}

// UpdateStatus moves a surgery through its lifecycle without touching the
// rest of the record.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Surgery, error) {
	if !validSurgeryStatuses[status] {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	sg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if terminalSurgeryStatuses[sg.Status] && status != sg.Status {
		return nil, fmt.Errorf("surgery is %s and cannot change status", sg.Status)
	}
	sg.Status = status
	sg.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, sg); err != nil {
		return nil, err
	}
	return sg, nil
}

func (s *Service) DeleteSurgery(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListSurgeries(ctx context.Context, limit, offset int) ([]*Surgery, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Surgery, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListBySurgeon(ctx context.Context, surgeonID uuid.UUID, limit, offset int) ([]*Surgery, int, error) {
	return s.repo.ListBySurgeon(ctx, surgeonID, limit, offset)
}
