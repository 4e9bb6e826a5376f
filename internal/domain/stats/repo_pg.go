package stats

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

// ProcedureRows pulls every procedure with its service and patient names
// resolved in one pass; left joins keep procedures whose service was
// deleted.
func (r *repoPG) ProcedureRows(ctx context.Context) ([]ProcedureRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.price, p.paid, p.service_id, p.patient_id, s.name, pt.name
		FROM procedures p
		LEFT JOIN services s ON s.id = p.service_id
		LEFT JOIN patients pt ON pt.id = p.patient_id
		ORDER BY p.created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ProcedureRow
	for rows.Next() {
		var pr ProcedureRow
		if err := rows.Scan(&pr.ID, &pr.Price, &pr.Paid, &pr.ServiceID, &pr.PatientID, &pr.ServiceName, &pr.PatientName); err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, rows.Err()
}
