package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validGenders = map[string]bool{
	"male":    true,
	"female":  true,
	"other":   true,
	"unknown": true,
}

type Service struct {
	repo PatientRepository
	now  func() time.Time
}

func NewService(repo PatientRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// RegisterPatient creates a new patient record. RegisteredAt is stamped at
// creation time and never changes afterwards; the demand history counts new
// registrations by this timestamp.
func (s *Service) RegisterPatient(ctx context.Context, p *Patient) error {
	if p.MRN == "" {
		return fmt.Errorf("mrn is required")
	}
	if p.NameFamily == "" || p.NameGiven == "" {
		return fmt.Errorf("name_family and name_given are required")
	}
	if p.Gender != nil && !validGenders[*p.Gender] {
		return fmt.Errorf("invalid gender: %s", *p.Gender)
	}
	if existing, err := s.repo.GetByMRN(ctx, p.MRN); err == nil && existing != nil {
		return fmt.Errorf("mrn %s is already registered", p.MRN)
	}
	p.Active = true
	p.RegisteredAt = s.now().UTC()
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetPatientByMRN(ctx context.Context, mrn string) (*Patient, error) {
	return s.repo.GetByMRN(ctx, mrn)
}

func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	existing, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if p.NameFamily == "" || p.NameGiven == "" {
		return fmt.Errorf("name_family and name_given are required")
	}
	if p.Gender != nil && !validGenders[*p.Gender] {
		return fmt.Errorf("invalid gender: %s", *p.Gender)
	}
	// MRN and registration time are immutable.
	p.MRN = existing.MRN
	p.RegisteredAt = existing.RegisteredAt
	return s.repo.Update(ctx, p)
}

// DeactivatePatient marks the record inactive instead of deleting it, so
// historical appointments and surgeries keep a valid reference.
func (s *Service) DeactivatePatient(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Active = false
	return s.repo.Update(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) SearchPatients(ctx context.Context, name string, limit, offset int) ([]*Patient, int, error) {
	if name == "" {
		return s.repo.List(ctx, limit, offset)
	}
	return s.repo.Search(ctx, name, limit, offset)
}

func (s *Service) ListByPractitioner(ctx context.Context, practitionerID uuid.UUID, limit, offset int) ([]*Patient, int, error) {
	return s.repo.ListByPractitioner(ctx, practitionerID, limit, offset)
}
