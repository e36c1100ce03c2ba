package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/docdor/docdor/internal/platform/docstore"
)

// ErrInvalid marks record-validation failures.
var ErrInvalid = errors.New("invalid appointment")

// DefaultSearchLimit bounds appointment listings when the caller gives no limit.
const DefaultSearchLimit = 50

var (
	validTypes      = map[string]bool{TypeClinic: true, TypeOnline: true}
	validStatuses   = map[string]bool{StatusScheduled: true, StatusCompleted: true, StatusCancelled: true}
	validVisitKinds = map[string]bool{VisitConsultation: true, VisitFollowUp: true}
)

type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, a *Appointment) (string, error) {
	if a.DoctorID == "" {
		return "", fmt.Errorf("%w: doctor_id is required", ErrInvalid)
	}
	if a.PatientID == "" {
		return "", fmt.Errorf("%w: patient_id is required", ErrInvalid)
	}
	if !validTypes[a.Type] {
		return "", fmt.Errorf("%w: type must be clinic or online", ErrInvalid)
	}
	if a.ScheduledAt.IsZero() {
		return "", fmt.Errorf("%w: scheduled_at is required", ErrInvalid)
	}

	if a.Status == "" {
		a.Status = StatusScheduled
	} else if !validStatuses[a.Status] {
		return "", fmt.Errorf("%w: status must be scheduled, completed or cancelled", ErrInvalid)
	}
	if a.VisitKind == "" {
		a.VisitKind = VisitConsultation
	} else if !validVisitKinds[a.VisitKind] {
		return "", fmt.Errorf("%w: visit_kind must be consultation or follow-up", ErrInvalid)
	}
	if a.VisitCount == nil {
		one := 1
		a.VisitCount = &one
	} else if *a.VisitCount < 1 {
		return "", fmt.Errorf("%w: visit_count must be at least 1", ErrInvalid)
	}

	return s.store.Insert(ctx, Collection, a)
}

// Search lists appointments matching the present params, all combined with
// AND. The result filter depends only on which params are set, not on the
// order they are applied.
func (s *Service) Search(ctx context.Context, params SearchParams, limit int) ([]docstore.Document, error) {
	filter := docstore.NewFilter().
		Equal("doctor_id", params.DoctorID).
		Equal("patient_id", params.PatientID).
		Equal("status", params.Status).
		Equal("type", params.Type).
		Build()

	docs, err := s.store.Query(ctx, Collection, filter, limit)
	if err != nil {
		return nil, err
	}

	items := make([]docstore.Document, 0, len(docs))
	for _, doc := range docs {
		norm, err := docstore.NormalizeDocument(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, norm)
	}
	return items, nil
}
