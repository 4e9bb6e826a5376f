package procedure

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinicbase/clinicd/internal/platform/db"
)

type Service struct {
	repo Repository
	tx   db.Transactor
}

func NewService(repo Repository, tx db.Transactor) *Service {
	return &Service{repo: repo, tx: tx}
}

// Create inserts the procedure and its doctor associations in one
// transaction, then returns the fully joined record.
func (s *Service) Create(ctx context.Context, patientID uuid.UUID, req *CreateRequest) (*Procedure, error) {
	p := &Procedure{
		PatientID:   patientID,
		Description: req.Description,
		Date:        *req.Date,
		Price:       *req.Price,
		ServiceID:   req.ServiceID,
	}
	if req.Paid != nil {
		p.Paid = *req.Paid
	}
	doctorIDs := req.DoctorIDs
	if doctorIDs == nil && req.DoctorID != nil {
		doctorIDs = []uuid.UUID{*req.DoctorID}
	}
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, p); err != nil {
			return err
		}
		return s.repo.AddDoctors(ctx, p.ID, doctorIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, p.ID, patientID)
}

func (s *Service) Get(ctx context.Context, id, patientID uuid.UUID) (*Procedure, error) {
	p, err := s.repo.GetByID(ctx, id, patientID)
	if err != nil {
		return nil, err
	}
	if err := s.attachDoctors(ctx, []*Procedure{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Procedure, error) {
	items, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if err := s.attachDoctors(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Update applies the field changes and, when DoctorIDs is present,
// replaces the association set wholesale, all inside one transaction. A
// nil DoctorIDs leaves associations untouched; an empty slice clears
// them.
func (s *Service) Update(ctx context.Context, id, patientID uuid.UUID, req *UpdateRequest) (*Procedure, error) {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, id, patientID, req); err != nil {
			return err
		}
		if req.DoctorIDs != nil {
			return s.repo.ReplaceDoctors(ctx, id, *req.DoctorIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id, patientID)
}

func (s *Service) Delete(ctx context.Context, id, patientID uuid.UUID) error {
	return s.repo.Delete(ctx, id, patientID)
}

func (s *Service) attachDoctors(ctx context.Context, items []*Procedure) error {
	ids := make([]uuid.UUID, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}
	byProc, err := s.repo.DoctorsByProcedure(ctx, ids)
	if err != nil {
		return err
	}
	for _, p := range items {
		refs := byProc[p.ID]
		p.Doctors = make([]DoctorRef, 0, len(refs))
		p.DoctorIDs = make([]uuid.UUID, 0, len(refs))
		for _, ref := range refs {
			p.Doctors = append(p.Doctors, ref)
			p.DoctorIDs = append(p.DoctorIDs, ref.ID)
		}
	}
	return nil
}
