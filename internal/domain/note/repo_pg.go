package note

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

const cols = `id, patient_id, content, created_at, updated_at`

func scanNote(row pgx.Row) (*Note, error) {
	var n Note
	err := row.Scan(&n.ID, &n.PatientID, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &n, err
}

func (r *repoPG) Create(ctx context.Context, n *Note) error {
	n.ID = uuid.New()
	var row pgx.Row
	if n.CreatedAt.IsZero() {
		row = r.conn(ctx).QueryRow(ctx, `
			INSERT INTO notes (id, patient_id, content)
			VALUES ($1, $2, $3)
			RETURNING `+cols, n.ID, n.PatientID, n.Content)
	} else {
		row = r.conn(ctx).QueryRow(ctx, `
			INSERT INTO notes (id, patient_id, content, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING `+cols, n.ID, n.PatientID, n.Content, n.CreatedAt)
	}
	got, err := scanNote(row)
	if err != nil {
		return err
	}
	*n = *got
	return nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Note, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+cols+` FROM notes
		WHERE patient_id = $1
		ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, id, patientID uuid.UUID, upd *UpdateRequest) (*Note, error) {
	set := []string{"updated_at = NOW()"}
	args := []interface{}{id, patientID}
	add := func(col string, v interface{}) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Content != nil {
		add("content", *upd.Content)
	}
	if upd.CreatedAt != nil {
		add("created_at", *upd.CreatedAt)
	}

	row := r.conn(ctx).QueryRow(ctx, `
		UPDATE notes SET `+strings.Join(set, ", ")+`
		WHERE id = $1 AND patient_id = $2
		RETURNING `+cols, args...)
	return scanNote(row)
}

func (r *repoPG) Delete(ctx context.Context, id, patientID uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM notes WHERE id = $1 AND patient_id = $2`, id, patientID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) DeleteByPatient(ctx context.Context, patientID uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM notes WHERE patient_id = $1`, patientID)
	return err
}
