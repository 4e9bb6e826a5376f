package stats

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Report(ctx context.Context) (*Report, error) {
	rows, err := s.repo.ProcedureRows(ctx)
	if err != nil {
		return nil, err
	}
	return BuildReport(rows), nil
}

// BuildReport aggregates procedure rows into the stats report.
//
// The two breakdowns classify owed direction differently on purpose: the
// service breakdown splits each procedure's signed balance individually,
// while the patient breakdown (and the global owed totals derived from it)
// nets each patient's balance first. A patient who overpaid one procedure
// and underpaid another by the same amount contributes to the service
// split on both sides but nothing to the global owed totals.
func BuildReport(rows []ProcedureRow) *Report {
	report := &Report{
		Services: []*ServiceStats{},
		Patients: []*PatientStats{},
	}

	for _, r := range rows {
		report.Revenue.TotalRevenue += r.Price
		report.Revenue.TotalPaid += r.Paid
	}
	report.Revenue.TotalBalance = report.Revenue.TotalRevenue - report.Revenue.TotalPaid
	report.Revenue.ProceduresCount = len(rows)

	// Buckets keep first-seen order so the stable sort below breaks
	// revenue ties by earliest appearance.
	serviceIdx := make(map[uuid.UUID]*ServiceStats)
	var noService *ServiceStats
	for _, r := range rows {
		var bucket *ServiceStats
		if r.ServiceID == nil {
			if noService == nil {
				noService = &ServiceStats{ServiceName: "No Service"}
				report.Services = append(report.Services, noService)
			}
			bucket = noService
		} else {
			bucket = serviceIdx[*r.ServiceID]
			if bucket == nil {
				name := "No Service"
				if r.ServiceName != nil {
					name = *r.ServiceName
				}
				id := *r.ServiceID
				bucket = &ServiceStats{ServiceID: &id, ServiceName: name}
				serviceIdx[id] = bucket
				report.Services = append(report.Services, bucket)
			}
		}
		balance := r.Price - r.Paid
		bucket.TotalRevenue += r.Price
		bucket.TotalPaid += r.Paid
		bucket.TotalBalance += balance
		if balance > 0 {
			bucket.TotalOwedToUs += balance
		} else if balance < 0 {
			bucket.TotalOwedToPatients += math.Abs(balance)
		}
		bucket.ProcedureCount++
	}
	sort.SliceStable(report.Services, func(i, j int) bool {
		return report.Services[i].TotalRevenue > report.Services[j].TotalRevenue
	})

	patientIdx := make(map[uuid.UUID]*PatientStats)
	for _, r := range rows {
		bucket := patientIdx[r.PatientID]
		if bucket == nil {
			name := "Unknown"
			if r.PatientName != nil {
				name = *r.PatientName
			}
			bucket = &PatientStats{PatientID: r.PatientID, PatientName: name}
			patientIdx[r.PatientID] = bucket
			report.Patients = append(report.Patients, bucket)
		}
		bucket.TotalRevenue += r.Price
		bucket.TotalPaid += r.Paid
		bucket.TotalBalance += r.Price - r.Paid
		bucket.ProcedureCount++
	}

	// Owed direction per patient comes from the net balance, and the
	// global owed totals sum those nets.
	for _, b := range report.Patients {
		switch {
		case b.TotalBalance > 0:
			b.TotalOwedToUs = b.TotalBalance
			report.Revenue.TotalOwedToUs += b.TotalBalance
		case b.TotalBalance < 0:
			b.TotalOwedToPatients = math.Abs(b.TotalBalance)
			report.Revenue.TotalOwedToPatients += math.Abs(b.TotalBalance)
		}
	}

	sort.SliceStable(report.Patients, func(i, j int) bool {
		return report.Patients[i].TotalRevenue > report.Patients[j].TotalRevenue
	})
	if len(report.Patients) > 20 {
		report.Patients = report.Patients[:20]
	}
	return report
}
