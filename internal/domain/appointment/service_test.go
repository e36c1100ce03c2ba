package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/docdor/docdor/internal/platform/docstore"
)

var testTime = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func validAppointment() Appointment {
	return Appointment{
		DoctorID:    "doc-1",
		PatientID:   "pat-1",
		Type:        TypeClinic,
		ScheduledAt: testTime,
	}
}

func TestService_Create_Defaults(t *testing.T) {
	ctx := context.Background()
	svc := NewService(docstore.NewMemoryStore())

	a := validAppointment()
	id, err := svc.Create(ctx, &a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty id")
	}
	if a.Status != StatusScheduled {
		t.Errorf("expected status defaulted to scheduled, got %q", a.Status)
	}
	if a.VisitKind != VisitConsultation {
		t.Errorf("expected visit_kind defaulted to consultation, got %q", a.VisitKind)
	}
	if a.VisitCount == nil || *a.VisitCount != 1 {
		t.Errorf("expected visit_count defaulted to 1, got %v", a.VisitCount)
	}
}

func TestService_Create_KeepsExplicitValues(t *testing.T) {
	ctx := context.Background()
	svc := NewService(docstore.NewMemoryStore())

	three := 3
	a := validAppointment()
	a.Status = StatusCompleted
	a.VisitKind = VisitFollowUp
	a.VisitCount = &three

	if _, err := svc.Create(ctx, &a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != StatusCompleted || a.VisitKind != VisitFollowUp || *a.VisitCount != 3 {
		t.Errorf("explicit values were overwritten: %+v", a)
	}
}

func TestService_Create_Invalid(t *testing.T) {
	zero := 0
	tests := []struct {
		name   string
		mutate func(*Appointment)
	}{
		{"missing doctor_id", func(a *Appointment) { a.DoctorID = "" }},
		{"missing patient_id", func(a *Appointment) { a.PatientID = "" }},
		{"missing type", func(a *Appointment) { a.Type = "" }},
		{"bad type", func(a *Appointment) { a.Type = "home" }},
		{"missing scheduled_at", func(a *Appointment) { a.ScheduledAt = time.Time{} }},
		{"bad status", func(a *Appointment) { a.Status = "pending" }},
		{"bad visit_kind", func(a *Appointment) { a.VisitKind = "checkup" }},
		{"zero visit_count", func(a *Appointment) { a.VisitCount = &zero }},
	}

	svc := NewService(docstore.NewMemoryStore())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAppointment()
			tt.mutate(&a)
			_, err := svc.Create(context.Background(), &a)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestService_Search_CombinesParamsWithAnd(t *testing.T) {
	ctx := context.Background()
	svc := NewService(docstore.NewMemoryStore())

	seed := []Appointment{
		{DoctorID: "doc-1", PatientID: "pat-1", Type: TypeClinic, Status: StatusScheduled, ScheduledAt: testTime},
		{DoctorID: "doc-1", PatientID: "pat-2", Type: TypeOnline, Status: StatusCompleted, ScheduledAt: testTime},
		{DoctorID: "doc-2", PatientID: "pat-1", Type: TypeClinic, Status: StatusScheduled, ScheduledAt: testTime},
	}
	for i := range seed {
		if _, err := svc.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("no params lists everything", func(t *testing.T) {
		items, err := svc.Search(ctx, SearchParams{}, DefaultSearchLimit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 3 {
			t.Errorf("expected 3 results, got %d", len(items))
		}
	})

	t.Run("by doctor", func(t *testing.T) {
		items, err := svc.Search(ctx, SearchParams{DoctorID: "doc-1"}, DefaultSearchLimit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("expected 2 results, got %d", len(items))
		}
	})

	t.Run("by doctor and status", func(t *testing.T) {
		items, err := svc.Search(ctx, SearchParams{DoctorID: "doc-1", Status: StatusScheduled}, DefaultSearchLimit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 result, got %d", len(items))
		}
		if items[0]["patient_id"] != "pat-1" {
			t.Errorf("unexpected result: %v", items[0])
		}
	})

	t.Run("by type", func(t *testing.T) {
		items, err := svc.Search(ctx, SearchParams{Type: TypeOnline}, DefaultSearchLimit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Errorf("expected 1 result, got %d", len(items))
		}
	})
}

func TestService_Search_NormalizesTimestampLeaves(t *testing.T) {
	ctx := context.Background()
	svc := NewService(docstore.NewMemoryStore())

	a := validAppointment()
	if _, err := svc.Create(ctx, &a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := svc.Search(ctx, SearchParams{}, DefaultSearchLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 result, got %d", len(items))
	}
	if _, ok := items[0]["created_at"].(string); !ok {
		t.Errorf("expected created_at normalized to text, got %T", items[0]["created_at"])
	}
	if _, ok := items[0]["_id"].(string); !ok {
		t.Errorf("expected _id normalized to text, got %T", items[0]["_id"])
	}
}
