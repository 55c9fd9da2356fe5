package patient

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockPatientRepo struct {
	patients map[uuid.UUID]*Patient
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockPatientRepo) Create(_ context.Context, p *Patient) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, fmt.Errorf("patient not found")
	}
	cp := *p
	return &cp, nil
}

func (m *mockPatientRepo) GetByMRN(_ context.Context, mrn string) (*Patient, error) {
	for _, p := range m.patients {
		if p.MRN == mrn {
			cp := *p
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("patient not found")
}

func (m *mockPatientRepo) Update(_ context.Context, p *Patient) error {
	if _, ok := m.patients[p.ID]; !ok {
		return fmt.Errorf("patient not found")
	}
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockPatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.patients, id)
	return nil
}

func (m *mockPatientRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var items []*Patient
	for _, p := range m.patients {
		items = append(items, p)
	}
	return items, len(items), nil
}

func (m *mockPatientRepo) Search(_ context.Context, name string, limit, offset int) ([]*Patient, int, error) {
	var items []*Patient
	for _, p := range m.patients {
		if strings.Contains(strings.ToLower(p.NameFamily), strings.ToLower(name)) ||
			strings.Contains(strings.ToLower(p.NameGiven), strings.ToLower(name)) {
			items = append(items, p)
		}
	}
	return items, len(items), nil
}

func (m *mockPatientRepo) ListByPractitioner(_ context.Context, practitionerID uuid.UUID, limit, offset int) ([]*Patient, int, error) {
	var items []*Patient
	for _, p := range m.patients {
		if p.PrimaryPractitionerID != nil && *p.PrimaryPractitionerID == practitionerID {
			items = append(items, p)
		}
	}
	return items, len(items), nil
}

func newTestService(repo PatientRepository, now time.Time) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func validPatient(mrn string) *Patient {
	return &Patient{
		MRN:        mrn,
		NameFamily: "Okafor",
		NameGiven:  "Amina",
	}
}

func TestRegisterPatientStampsRegisteredAt(t *testing.T) {
	now := time.Date(2025, 3, 9, 10, 30, 0, 0, time.FixedZone("CET", 3600))
	svc := newTestService(newMockPatientRepo(), now)

	p := validPatient("MRN-1001")
	if err := svc.RegisterPatient(context.Background(), p); err != nil {
		t.Fatalf("RegisterPatient: %v", err)
	}
	if !p.Active {
		t.Error("new patient should be active")
	}
	if !p.RegisteredAt.Equal(now.UTC()) {
		t.Errorf("registered_at = %v, want %v", p.RegisteredAt, now.UTC())
	}
	if p.RegisteredAt.Location() != time.UTC {
		t.Error("registered_at should be stored in UTC")
	}
}

func TestRegisterPatientValidation(t *testing.T) {
	bad := "banana"
	tests := []struct {
		name   string
		mutate func(*Patient)
	}{
		{"missing mrn", func(p *Patient) { p.MRN = "" }},
		{"missing family name", func(p *Patient) { p.NameFamily = "" }},
		{"missing given name", func(p *Patient) { p.NameGiven = "" }},
		{"bad gender", func(p *Patient) { p.Gender = &bad }},
	}
	svc := newTestService(newMockPatientRepo(), time.Now())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPatient("MRN-2001")
			tt.mutate(p)
			if err := svc.RegisterPatient(context.Background(), p); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRegisterPatientRejectsDuplicateMRN(t *testing.T) {
	svc := newTestService(newMockPatientRepo(), time.Now())
	if err := svc.RegisterPatient(context.Background(), validPatient("MRN-3001")); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if err := svc.RegisterPatient(context.Background(), validPatient("MRN-3001")); err == nil {
		t.Error("expected duplicate mrn to be rejected")
	}
}

func TestUpdatePatientKeepsMRNAndRegistrationTime(t *testing.T) {
	registered := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	svc := newTestService(newMockPatientRepo(), registered)

	p := validPatient("MRN-4001")
	if err := svc.RegisterPatient(context.Background(), p); err != nil {
		t.Fatalf("RegisterPatient: %v", err)
	}

	upd := *p
	upd.MRN = "MRN-9999"
	upd.RegisteredAt = time.Now()
	upd.NameGiven = "Aminata"
	if err := svc.UpdatePatient(context.Background(), &upd); err != nil {
		t.Fatalf("UpdatePatient: %v", err)
	}
	if upd.MRN != "MRN-4001" {
		t.Errorf("mrn changed to %q", upd.MRN)
	}
	if !upd.RegisteredAt.Equal(registered.UTC()) {
		t.Errorf("registered_at changed to %v", upd.RegisteredAt)
	}
}

func TestDeactivatePatientKeepsRecord(t *testing.T) {
	repo := newMockPatientRepo()
	svc := newTestService(repo, time.Now())

	p := validPatient("MRN-5001")
	if err := svc.RegisterPatient(context.Background(), p); err != nil {
		t.Fatalf("RegisterPatient: %v", err)
	}
	if err := svc.DeactivatePatient(context.Background(), p.ID); err != nil {
		t.Fatalf("DeactivatePatient: %v", err)
	}

	got, err := svc.GetPatient(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("deactivated patient is gone: %v", err)
	}
	if got.Active {
		t.Error("patient still active after deactivation")
	}
}

func TestSearchPatientsFallsBackToList(t *testing.T) {
	repo := newMockPatientRepo()
	svc := newTestService(repo, time.Now())
	for _, mrn := range []string{"MRN-6001", "MRN-6002"} {
		if err := svc.RegisterPatient(context.Background(), validPatient(mrn)); err != nil {
			t.Fatalf("RegisterPatient: %v", err)
		}
	}

	_, total, err := svc.SearchPatients(context.Background(), "", 20, 0)
	if err != nil {
		t.Fatalf("SearchPatients: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
}
