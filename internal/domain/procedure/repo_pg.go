package procedure

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicbase/clinicd/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

// Reads join the optional service so a single round trip yields the
// embedded service name/price alongside the procedure row.
const cols = `p.id, p.patient_id, p.description, p.date, p.price, p.paid,
	p.doctor_id, p.service_id, p.created_at, p.updated_at,
	s.id, s.name, s.price`

const fromJoined = ` FROM procedures p LEFT JOIN services s ON s.id = p.service_id`

func scanProcedure(row pgx.Row) (*Procedure, error) {
	var p Procedure
	var svcID *uuid.UUID
	var svcName *string
	var svcPrice *float64
	err := row.Scan(&p.ID, &p.PatientID, &p.Description, &p.Date, &p.Price, &p.Paid,
		&p.DoctorID, &p.ServiceID, &p.CreatedAt, &p.UpdatedAt,
		&svcID, &svcName, &svcPrice)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if svcID != nil {
		p.Service = &ServiceRef{ID: *svcID, Name: *svcName, Price: svcPrice}
	}
	p.Balance = p.Price - p.Paid
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Procedure) error {
	p.ID = uuid.New()
	row := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO procedures (id, patient_id, description, date, price, paid, doctor_id, service_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+bareCols,
		p.ID, p.PatientID, p.Description, p.Date, p.Price, p.Paid, p.DoctorID, p.ServiceID)
	got, err := scanProcedureBare(row)
	if err != nil {
		return err
	}
	*p = *got
	return nil
}

// scanProcedureBare scans a row from the procedures table alone, with no
// service join columns available.
func scanProcedureBare(row pgx.Row) (*Procedure, error) {
	var p Procedure
	err := row.Scan(&p.ID, &p.PatientID, &p.Description, &p.Date, &p.Price, &p.Paid,
		&p.DoctorID, &p.ServiceID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Balance = p.Price - p.Paid
	return &p, nil
}

const bareCols = `id, patient_id, description, date, price, paid, doctor_id, service_id, created_at, updated_at`

func (r *repoPG) GetByID(ctx context.Context, id, patientID uuid.UUID) (*Procedure, error) {
	return scanProcedure(r.conn(ctx).QueryRow(ctx,
		`SELECT `+cols+fromJoined+` WHERE p.id = $1 AND p.patient_id = $2`, id, patientID))
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Procedure, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+fromJoined+` WHERE p.patient_id = $1 ORDER BY p.date DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Procedure
	for rows.Next() {
		p, err := scanProcedure(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, id, patientID uuid.UUID, upd *UpdateRequest) error {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id, patientID}
	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Date != nil {
		add("date", *upd.Date)
	}
	if upd.Price != nil {
		add("price", *upd.Price)
	}
	if upd.Paid != nil {
		add("paid", *upd.Paid)
	}
	if upd.DoctorID != nil {
		add("doctor_id", *upd.DoctorID)
	}
	if upd.ServiceID != nil {
		add("service_id", *upd.ServiceID)
	}
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE procedures SET `+strings.Join(sets, ", ")+`
		WHERE id = $1 AND patient_id = $2`, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id, patientID uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM procedures WHERE id = $1 AND patient_id = $2`, id, patientID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) DeleteByPatient(ctx context.Context, patientID uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM procedures WHERE patient_id = $1`, patientID)
	return err
}

func (r *repoPG) AddDoctors(ctx context.Context, procedureID uuid.UUID, doctorIDs []uuid.UUID) error {
	if len(doctorIDs) == 0 {
		return nil
	}
	// unnest keeps one row per input element, so repeated ids insert
	// repeated associations.
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO procedure_doctors (procedure_id, doctor_id)
		SELECT $1, unnest($2::uuid[])`, procedureID, doctorIDs)
	return err
}

func (r *repoPG) ReplaceDoctors(ctx context.Context, procedureID uuid.UUID, doctorIDs []uuid.UUID) error {
	if _, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM procedure_doctors WHERE procedure_id = $1`, procedureID); err != nil {
		return err
	}
	return r.AddDoctors(ctx, procedureID, doctorIDs)
}

func (r *repoPG) DoctorsByProcedure(ctx context.Context, procedureIDs []uuid.UUID) (map[uuid.UUID][]DoctorRef, error) {
	out := make(map[uuid.UUID][]DoctorRef, len(procedureIDs))
	if len(procedureIDs) == 0 {
		return out, nil
	}
	// INNER JOIN drops associations whose doctor row has since been
	// removed.
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT pd.procedure_id, d.id, d.full_name
		FROM procedure_doctors pd
		JOIN doctors d ON d.id = pd.doctor_id
		WHERE pd.procedure_id = ANY($1::uuid[])
		ORDER BY pd.procedure_id, d.full_name ASC`, procedureIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var procID uuid.UUID
		var ref DoctorRef
		if err := rows.Scan(&procID, &ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		out[procID] = append(out[procID], ref)
	}
	return out, rows.Err()
}
