// Package metrics assembles the doctor home-screen summary. It is a consumer
// of the filter and normalization layers: three independent appointment
// reads composed in application code, no aggregation pipeline.
package metrics

import (
	"context"
	"fmt"

	"github.com/docdor/docdor/internal/domain/appointment"
	"github.com/docdor/docdor/internal/platform/docstore"
)

// upcomingLimit caps the scheduled appointments shown on the home screen.
const upcomingLimit = 20

// Totals holds the appointment counters for one doctor.
type Totals struct {
	Appointments int `json:"appointments"`
	Completed    int `json:"completed"`
}

// UpcomingVisit is the reduced per-appointment view on the home screen.
type UpcomingVisit struct {
	PatientID     any    `json:"patient_id"`
	VisitCount    any    `json:"visit_count"`
	VisitKind     any    `json:"visit_kind"`
	Type          any    `json:"type"`
	ScheduledAt   any    `json:"scheduled_at"`
	AppointmentID string `json:"appointment_id"`
}

// DoctorSummary is the fixed-shape response of the doctor metrics endpoint.
type DoctorSummary struct {
	Totals   Totals          `json:"totals"`
	Upcoming []UpcomingVisit `json:"upcoming"`
}

type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

// DoctorSummary counts a doctor's total and completed appointments and
// projects their next scheduled ones.
func (s *Service) DoctorSummary(ctx context.Context, doctorID string) (*DoctorSummary, error) {
	byDoctor := docstore.NewFilter().Equal("doctor_id", doctorID)

	total, err := s.store.Count(ctx, appointment.Collection, byDoctor.Build())
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	completedFilter := docstore.NewFilter().
		Equal("doctor_id", doctorID).
		Equal("status", appointment.StatusCompleted).
		Build()
	completed, err := s.store.Count(ctx, appointment.Collection, completedFilter)
	if err != nil {
		return nil, fmt.Errorf("count completed appointments: %w", err)
	}

	upcomingFilter := docstore.NewFilter().
		Equal("doctor_id", doctorID).
		Equal("status", appointment.StatusScheduled).
		Build()
	upcoming, err := s.store.Query(ctx, appointment.Collection, upcomingFilter, upcomingLimit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming appointments: %w", err)
	}

	summary := &DoctorSummary{
		Totals:   Totals{Appointments: total, Completed: completed},
		Upcoming: make([]UpcomingVisit, 0, len(upcoming)),
	}
	for _, a := range upcoming {
		visit, err := projectVisit(a)
		if err != nil {
			return nil, err
		}
		summary.Upcoming = append(summary.Upcoming, visit)
	}
	return summary, nil
}

func projectVisit(a docstore.Document) (UpcomingVisit, error) {
	scheduledAt, err := docstore.NormalizeValue(a["scheduled_at"])
	if err != nil {
		return UpcomingVisit{}, err
	}
	apptID, err := docstore.NormalizeValue(a["_id"])
	if err != nil {
		return UpcomingVisit{}, err
	}

	visit := UpcomingVisit{
		PatientID:     a["patient_id"],
		VisitCount:    a["visit_count"],
		VisitKind:     a["visit_kind"],
		Type:          a["type"],
		ScheduledAt:   scheduledAt,
		AppointmentID: fmt.Sprintf("%v", apptID),
	}
	if visit.VisitCount == nil {
		visit.VisitCount = 1
	}
	if visit.VisitKind == nil {
		visit.VisitKind = appointment.VisitConsultation
	}
	return visit, nil
}
