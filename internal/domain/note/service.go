package note

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, n *Note) error {
	return s.repo.Create(ctx, n)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Note, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) Update(ctx context.Context, id, patientID uuid.UUID, upd *UpdateRequest) (*Note, error) {
	return s.repo.Update(ctx, id, patientID, upd)
}

func (s *Service) Delete(ctx context.Context, id, patientID uuid.UUID) error {
	return s.repo.Delete(ctx, id, patientID)
}
