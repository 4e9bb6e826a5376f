package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("patient not found")

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	ListSummaries(ctx context.Context) ([]*Summary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
