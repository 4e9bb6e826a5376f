package stats

import "context"

type Repository interface {
	ProcedureRows(ctx context.Context) ([]ProcedureRow, error)
}
