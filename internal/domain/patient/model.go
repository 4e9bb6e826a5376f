package patient

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Summary is the dashboard row: a patient with billing aggregates over
// all of their procedures. Balance is the net across procedures, so an
// overpayment on one offsets debt on another.
type Summary struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"full_name"`
	ProceduresCount int       `json:"procedures_count"`
	TotalPrice      float64   `json:"total_price"`
	TotalPaid       float64   `json:"total_paid"`
	Balance         float64   `json:"balance"`
}

type CreateRequest struct {
	Name string `json:"name"`
}
