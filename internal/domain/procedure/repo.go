package procedure

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an update or delete matches no row.
var ErrNotFound = errors.New("procedure not found")

type Repository interface {
	Create(ctx context.Context, p *Procedure) error
	GetByID(ctx context.Context, id, patientID uuid.UUID) (*Procedure, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Procedure, error)
	Update(ctx context.Context, id, patientID uuid.UUID, upd *UpdateRequest) error
	Delete(ctx context.Context, id, patientID uuid.UUID) error
	DeleteByPatient(ctx context.Context, patientID uuid.UUID) error

	// Doctor associations. AddDoctors inserts one join row per input id,
	// repeats included; ReplaceDoctors drops the existing set first.
	AddDoctors(ctx context.Context, procedureID uuid.UUID, doctorIDs []uuid.UUID) error
	ReplaceDoctors(ctx context.Context, procedureID uuid.UUID, doctorIDs []uuid.UUID) error
	DoctorsByProcedure(ctx context.Context, procedureIDs []uuid.UUID) (map[uuid.UUID][]DoctorRef, error)
}
