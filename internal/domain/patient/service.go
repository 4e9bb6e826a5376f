package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicbase/clinicd/internal/platform/db"
)

// NotePurger and ProcedurePurger are satisfied by the note and procedure
// repositories; the patient service only needs their cascade deletes.
type NotePurger interface {
	DeleteByPatient(ctx context.Context, patientID uuid.UUID) error
}

type ProcedurePurger interface {
	DeleteByPatient(ctx context.Context, patientID uuid.UUID) error
}

type Service struct {
	repo       Repository
	notes      NotePurger
	procedures ProcedurePurger
	tx         db.Transactor
}

func NewService(repo Repository, notes NotePurger, procedures ProcedurePurger, tx db.Transactor) *Service {
	return &Service{repo: repo, notes: notes, procedures: procedures, tx: tx}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	return s.repo.Create(ctx, p)
}

func (s *Service) ListSummaries(ctx context.Context) ([]*Summary, error) {
	return s.repo.ListSummaries(ctx)
}

// Delete removes the patient and everything hanging off them in one
// transaction. Procedure join rows go with the procedures through the
// FK cascade.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.notes.DeleteByPatient(ctx, id); err != nil {
			return err
		}
		if err := s.procedures.DeleteByPatient(ctx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
}
