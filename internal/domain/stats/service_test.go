package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func strp(s string) *string { return &s }

func row(patient uuid.UUID, price, paid float64) ProcedureRow {
	return ProcedureRow{ID: uuid.New(), PatientID: patient, Price: price, Paid: paid}
}

func TestBuildReport_Empty(t *testing.T) {
	r := BuildReport(nil)
	if r.Revenue.ProceduresCount != 0 {
		t.Errorf("proceduresCount = %d, want 0", r.Revenue.ProceduresCount)
	}
	if r.Services == nil || r.Patients == nil {
		t.Error("services and patients must be non-nil empty slices")
	}
}

func TestBuildReport_GlobalTotals(t *testing.T) {
	p1 := uuid.New()
	r := BuildReport([]ProcedureRow{
		row(p1, 100, 40),
		row(p1, 200, 200),
	})
	if r.Revenue.TotalRevenue != 300 || r.Revenue.TotalPaid != 240 || r.Revenue.TotalBalance != 60 {
		t.Errorf("revenue = %+v, want 300/240/60", r.Revenue)
	}
	if r.Revenue.ProceduresCount != 2 {
		t.Errorf("proceduresCount = %d, want 2", r.Revenue.ProceduresCount)
	}
}

// A patient overpaid on one procedure and underpaid on another by the same
// amount nets to zero and contributes nothing to the global owed totals,
// while the service breakdown still shows both sides of the split.
func TestBuildReport_MixedBalancesNetPerPatient(t *testing.T) {
	patient := uuid.New()
	svcA, svcB := uuid.New(), uuid.New()
	rows := []ProcedureRow{
		{ID: uuid.New(), PatientID: patient, Price: 100, Paid: 110,
			ServiceID: &svcA, ServiceName: strp("Cleaning")},
		{ID: uuid.New(), PatientID: patient, Price: 100, Paid: 90,
			ServiceID: &svcB, ServiceName: strp("Filling")},
	}
	r := BuildReport(rows)

	if r.Revenue.TotalOwedToUs != 0 || r.Revenue.TotalOwedToPatients != 0 {
		t.Errorf("global owed = %v/%v, want 0/0 from the patient net",
			r.Revenue.TotalOwedToUs, r.Revenue.TotalOwedToPatients)
	}
	if len(r.Patients) != 1 {
		t.Fatalf("patients len = %d, want 1", len(r.Patients))
	}
	p := r.Patients[0]
	if p.TotalOwedToUs != 0 || p.TotalOwedToPatients != 0 || p.TotalBalance != 0 {
		t.Errorf("patient owed = %+v, want zeroes", p)
	}

	var owedUs, owedPatients float64
	for _, s := range r.Services {
		owedUs += s.TotalOwedToUs
		owedPatients += s.TotalOwedToPatients
	}
	if owedUs != 10 || owedPatients != 10 {
		t.Errorf("service owed split = %v/%v, want 10/10 per procedure", owedUs, owedPatients)
	}
}

func TestBuildReport_ServiceRevenueSumsToGlobal(t *testing.T) {
	p1, p2 := uuid.New(), uuid.New()
	svcA := uuid.New()
	rows := []ProcedureRow{
		{ID: uuid.New(), PatientID: p1, Price: 120, Paid: 120, ServiceID: &svcA, ServiceName: strp("Cleaning")},
		{ID: uuid.New(), PatientID: p2, Price: 80, Paid: 0},
		{ID: uuid.New(), PatientID: p2, Price: 50, Paid: 25},
	}
	r := BuildReport(rows)

	var sum float64
	for _, s := range r.Services {
		sum += s.TotalRevenue
	}
	if sum != r.Revenue.TotalRevenue {
		t.Errorf("service revenue sum %v != global %v", sum, r.Revenue.TotalRevenue)
	}
}

func TestBuildReport_NoServiceBucket(t *testing.T) {
	p1 := uuid.New()
	r := BuildReport([]ProcedureRow{row(p1, 100, 0)})
	if len(r.Services) != 1 {
		t.Fatalf("services len = %d, want 1", len(r.Services))
	}
	s := r.Services[0]
	if s.ServiceID != nil || s.ServiceName != "No Service" {
		t.Errorf("null service bucket = %+v", s)
	}
}

func TestBuildReport_UnknownPatientName(t *testing.T) {
	r := BuildReport([]ProcedureRow{row(uuid.New(), 100, 0)})
	if r.Patients[0].PatientName != "Unknown" {
		t.Errorf("patient name = %q, want Unknown", r.Patients[0].PatientName)
	}
}

func TestBuildReport_SortedByRevenueDesc(t *testing.T) {
	p1, p2, p3 := uuid.New(), uuid.New(), uuid.New()
	r := BuildReport([]ProcedureRow{
		row(p1, 50, 0),
		row(p2, 300, 0),
		row(p3, 100, 0),
	})
	for i := 1; i < len(r.Patients); i++ {
		if r.Patients[i].TotalRevenue > r.Patients[i-1].TotalRevenue {
			t.Fatalf("patients not sorted by revenue desc: %v then %v",
				r.Patients[i-1].TotalRevenue, r.Patients[i].TotalRevenue)
		}
	}
}

func TestBuildReport_Top20Patients(t *testing.T) {
	var rows []ProcedureRow
	for i := 0; i < 25; i++ {
		rows = append(rows, row(uuid.New(), float64(100+i), 0))
	}
	r := BuildReport(rows)
	if len(r.Patients) != 20 {
		t.Errorf("patients len = %d, want 20", len(r.Patients))
	}
	// Truncation keeps the highest-revenue patients.
	if r.Patients[0].TotalRevenue != 124 {
		t.Errorf("top patient revenue = %v, want 124", r.Patients[0].TotalRevenue)
	}
}

type stubRepo struct {
	rows []ProcedureRow
	err  error
}

func (s *stubRepo) ProcedureRows(_ context.Context) ([]ProcedureRow, error) {
	return s.rows, s.err
}

func TestHandler_Get_JSONKeys(t *testing.T) {
	patient := uuid.New()
	h := NewHandler(NewService(&stubRepo{rows: []ProcedureRow{
		{ID: uuid.New(), PatientID: patient, PatientName: strp("Ana Costa"), Price: 100, Paid: 40},
	}}))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := rec.Body.String()
	for _, key := range []string{
		`"totalRevenue":100`, `"totalOwedToUs":60`, `"proceduresCount":1`,
		`"patient_name":"Ana Costa"`, `"total_owed_to_us":60`, `"procedure_count":1`,
	} {
		if !strings.Contains(body, key) {
			t.Errorf("body missing %s: %s", key, body)
		}
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	for _, k := range []string{"revenue", "services", "patients"} {
		if _, ok := decoded[k]; !ok {
			t.Errorf("missing top-level key %q", k)
		}
	}
}

func TestHandler_Get_RepoError(t *testing.T) {
	h := NewHandler(NewService(&stubRepo{err: fmt.Errorf("connection refused")}))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %v", err)
	}
}
