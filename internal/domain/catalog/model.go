// Package catalog manages the service catalog: named billable templates a
// procedure may reference (one service per procedure, optional).
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Service is a catalog entry: a name with an optional description and a
// suggested price. Procedures reference entries by id; deleting an entry does
// not touch the procedures that used it.
type Service struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Price       *float64  `db:"price" json:"price,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CreateRequest is the POST /services payload.
type CreateRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// UpdateRequest is the PATCH /services/:serviceId payload; nil fields are
// left untouched.
type UpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}
