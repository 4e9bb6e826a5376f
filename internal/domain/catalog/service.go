package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Manager is the service layer for the catalog. The usual Service name is
// taken by the catalog entry itself.
type Manager struct {
	repo Repository
}

func NewManager(repo Repository) *Manager {
	return &Manager{repo: repo}
}

func (m *Manager) Create(ctx context.Context, s *Service) error {
	return m.repo.Create(ctx, s)
}

func (m *Manager) List(ctx context.Context) ([]*Service, error) {
	return m.repo.List(ctx)
}

func (m *Manager) Update(ctx context.Context, id uuid.UUID, upd *UpdateRequest) (*Service, error) {
	return m.repo.Update(ctx, id, upd)
}

func (m *Manager) Delete(ctx context.Context, id uuid.UUID) error {
	return m.repo.Delete(ctx, id)
}
