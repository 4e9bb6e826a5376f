package stats

import "github.com/google/uuid"

// Report is the three-part revenue breakdown served by GET /stats.
type Report struct {
	Revenue  RevenueStats    `json:"revenue"`
	Services []*ServiceStats `json:"services"`
	Patients []*PatientStats `json:"patients"`
}

type RevenueStats struct {
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalPaid           float64 `json:"totalPaid"`
	TotalBalance        float64 `json:"totalBalance"`
	ProceduresCount     int     `json:"proceduresCount"`
	TotalOwedToUs       float64 `json:"totalOwedToUs"`
	TotalOwedToPatients float64 `json:"totalOwedToPatients"`
}

type ServiceStats struct {
	ServiceID           *uuid.UUID `json:"service_id"`
	ServiceName         string     `json:"service_name"`
	TotalRevenue        float64    `json:"total_revenue"`
	TotalPaid           float64    `json:"total_paid"`
	TotalBalance        float64    `json:"total_balance"`
	TotalOwedToUs       float64    `json:"total_owed_to_us"`
	TotalOwedToPatients float64    `json:"total_owed_to_patients"`
	ProcedureCount      int        `json:"procedure_count"`
}

type PatientStats struct {
	PatientID           uuid.UUID `json:"patient_id"`
	PatientName         string    `json:"patient_name"`
	TotalRevenue        float64   `json:"total_revenue"`
	TotalPaid           float64   `json:"total_paid"`
	TotalBalance        float64   `json:"total_balance"`
	TotalOwedToUs       float64   `json:"total_owed_to_us"`
	TotalOwedToPatients float64   `json:"total_owed_to_patients"`
	ProcedureCount      int       `json:"procedure_count"`
}

// ProcedureRow is one procedure annotated with its resolvable service and
// patient names, the raw input to the report.
type ProcedureRow struct {
	ID          uuid.UUID
	Price       float64
	Paid        float64
	ServiceID   *uuid.UUID
	PatientID   uuid.UUID
	ServiceName *string
	PatientName *string
}
