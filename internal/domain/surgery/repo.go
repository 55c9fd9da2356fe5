package surgery

import (
	"context"

	"github.com/google/uuid"
)

type SurgeryRepository interface {
	Create(ctx context.Context, s *Surgery) error
	GetByID(ctx context.Context, id uuid.UUID) (*Surgery, error)
	Update(ctx context.Context, s *Surgery) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Surgery, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Surgery, int, error)
	ListBySurgeon(ctx context.Context, surgeonID uuid.UUID, limit, offset int) ([]*Surgery, int, error)
}
