package procedure

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Date is a calendar day without a time component. It marshals as
// "2006-01-02" and accepts both that form and RFC 3339 on input.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// DoctorRef is a doctor as embedded in procedure responses.
type DoctorRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"full_name"`
}

// ServiceRef is the catalog entry a procedure references, resolved on read.
type ServiceRef struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
}

// Procedure is a billable clinical event performed on a patient. Balance is
// always price minus paid; paid above price yields a negative balance
// (patient credit) and is allowed. Doctors are attached through the
// procedure_doctors join table; DoctorID is the legacy single-doctor column
// kept for older clients.
type Procedure struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	PatientID   uuid.UUID  `db:"patient_id" json:"patient_id"`
	Description string     `db:"description" json:"description"`
	Date        Date       `db:"date" json:"date"`
	Price       float64    `db:"price" json:"price"`
	Paid        float64    `db:"paid" json:"paid"`
	Balance     float64    `json:"balance"`
	DoctorID    *uuid.UUID `db:"doctor_id" json:"doctor_id,omitempty"`
	ServiceID   *uuid.UUID `db:"service_id" json:"service_id,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`

	Doctors   []DoctorRef `json:"doctors"`
	DoctorIDs []uuid.UUID `json:"doctor_ids"`
	Service   *ServiceRef `json:"service,omitempty"`
}

// CreateRequest is the POST .../procedures payload. Description, date and
// price are required. doctor_id is accepted as a one-element fallback when
// doctor_ids is absent.
type CreateRequest struct {
	Description string      `json:"description"`
	Date        *Date       `json:"date"`
	Price       *float64    `json:"price"`
	Paid        *float64    `json:"paid"`
	DoctorID    *uuid.UUID  `json:"doctor_id"`
	DoctorIDs   []uuid.UUID `json:"doctor_ids"`
	ServiceID   *uuid.UUID  `json:"service_id"`
}

// UpdateRequest is the PATCH payload; nil fields are left untouched. A
// non-nil DoctorIDs replaces the full doctor association set, empty slice
// included.
type UpdateRequest struct {
	Description *string      `json:"description"`
	Date        *Date        `json:"date"`
	Price       *float64     `json:"price"`
	Paid        *float64     `json:"paid"`
	DoctorID    *uuid.UUID   `json:"doctor_id"`
	ServiceID   *uuid.UUID   `json:"service_id"`
	DoctorIDs   *[]uuid.UUID `json:"doctor_ids"`
}
