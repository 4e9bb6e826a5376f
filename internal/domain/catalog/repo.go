package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an update or delete matches no row.
var ErrNotFound = errors.New("service not found")

type Repository interface {
	Create(ctx context.Context, s *Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*Service, error)
	List(ctx context.Context) ([]*Service, error)
	Update(ctx context.Context, id uuid.UUID, upd *UpdateRequest) (*Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
