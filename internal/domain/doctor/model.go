package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a catalog entry referenced by procedures through the
// procedure_doctors join table. Doctors are shared across patients and are
// never owned by a procedure.
type Doctor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"full_name" json:"full_name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CreateRequest is the POST /doctors payload.
type CreateRequest struct {
	Name string `json:"full_name"`
}

// UpdateRequest is the PATCH /doctors/:doctorId payload.
type UpdateRequest struct {
	Name *string `json:"full_name"`
}
