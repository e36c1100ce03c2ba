package prescription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/docdor/docdor/internal/platform/docstore"
)

// ErrInvalid marks record-validation failures.
var ErrInvalid = errors.New("invalid prescription")

// DefaultSearchLimit bounds prescription listings when the caller gives no limit.
const DefaultSearchLimit = 100

type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, p *Prescription) (string, error) {
	if p.AppointmentID == "" {
		return "", fmt.Errorf("%w: appointment_id is required", ErrInvalid)
	}
	if p.DoctorID == "" {
		return "", fmt.Errorf("%w: doctor_id is required", ErrInvalid)
	}
	if p.PatientID == "" {
		return "", fmt.Errorf("%w: patient_id is required", ErrInvalid)
	}
	if len(p.Symptoms) == 0 {
		return "", fmt.Errorf("%w: at least one symptom is required", ErrInvalid)
	}
	for _, m := range p.Medications {
		if m.DrugName == "" || m.Dosage == "" || m.Frequency == "" || m.Duration == "" {
			return "", fmt.Errorf("%w: medication items need drug_name, dosage, frequency and duration", ErrInvalid)
		}
	}
	for _, l := range p.Labs {
		if l.TestName == "" {
			return "", fmt.Errorf("%w: lab items need test_name", ErrInvalid)
		}
	}
	if p.FollowUpDate != nil {
		if _, err := time.Parse("2006-01-02", *p.FollowUpDate); err != nil {
			return "", fmt.Errorf("%w: follow_up_date must be YYYY-MM-DD", ErrInvalid)
		}
	}

	if p.Medications == nil {
		p.Medications = []MedicationItem{}
	}
	if p.Labs == nil {
		p.Labs = []LabItem{}
	}
	return s.store.Insert(ctx, Collection, p)
}

// Search lists prescriptions filtered by the present reference ids.
func (s *Service) Search(ctx context.Context, patientID, appointmentID string, limit int) ([]docstore.Document, error) {
	filter := docstore.NewFilter().
		Equal("patient_id", patientID).
		Equal("appointment_id", appointmentID).
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
