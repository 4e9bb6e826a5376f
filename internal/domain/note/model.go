package note

import (
	"time"

	"github.com/google/uuid"
)

// Note is a free-text entry attached to a patient. The creation timestamp is
// client-settable so that old paper notes can be backdated.
type Note struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CreateRequest is the POST .../notes payload.
type CreateRequest struct {
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"created_at"`
}

// UpdateRequest is the PATCH .../notes/:noteId payload; nil fields are left
// untouched.
type UpdateRequest struct {
	Content   *string    `json:"content"`
	CreatedAt *time.Time `json:"created_at"`
}
