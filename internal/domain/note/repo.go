package note

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an update or delete matches no row.
var ErrNotFound = errors.New("note not found")

type Repository interface {
	Create(ctx context.Context, n *Note) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Note, error)
	Update(ctx context.Context, id, patientID uuid.UUID, upd *UpdateRequest) (*Note, error)
	Delete(ctx context.Context, id, patientID uuid.UUID) error
	DeleteByPatient(ctx context.Context, patientID uuid.UUID) error
}
