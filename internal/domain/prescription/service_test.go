package prescription

import (
	"context"
	"errors"
	"testing"

	"github.com/docdor/docdor/internal/platform/docstore"
)

func validPrescription() Prescription {
	return Prescription{
		AppointmentID: "apt-1",
		DoctorID:      "doc-1",
		PatientID:     "pat-1",
		Symptoms:      []string{"fever"},
		Medications: []MedicationItem{
			{DrugName: "Paracetamol", Dosage: "500mg", Frequency: "1-0-1", Duration: "5 days"},
		},
		Labs: []LabItem{{TestName: "CBC"}},
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewService(docstore.NewMemoryStore())

	p := validPrescription()
	id, err := svc.Create(ctx, &p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty id")
	}
}

func TestService_Create_DefaultsNilItemLists(t *testing.T) {
	ctx := context.Background()
	svc := NewService(docstore.NewMemoryStore())

	p := validPrescription()
	p.Medications = nil
	p.Labs = nil

	if _, err := svc.Create(ctx, &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Medications == nil || p.Labs == nil {
		t.Error("expected nil item lists replaced with empty slices")
	}
}

func TestService_Create_Invalid(t *testing.T) {
	followUp := "not-a-date"
	tests := []struct {
		name   string
		mutate func(*Prescription)
	}{
		{"missing appointment_id", func(p *Prescription) { p.AppointmentID = "" }},
		{"missing doctor_id", func(p *Prescription) { p.DoctorID = "" }},
		{"missing patient_id", func(p *Prescription) { p.PatientID = "" }},
		{"no symptoms", func(p *Prescription) { p.Symptoms = nil }},
		{"medication missing dosage", func(p *Prescription) { p.Medications[0].Dosage = "" }},
		{"lab missing test_name", func(p *Prescription) { p.Labs[0].TestName = "" }},
		{"bad follow_up_date", func(p *Prescription) { p.FollowUpDate = &followUp }},
	}

	svc := NewService(docstore.NewMemoryStore())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPrescription()
			tt.mutate(&p)
			_, err := svc.Create(context.Background(), &p)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()
	svc := NewService(docstore.NewMemoryStore())

	seed := []Prescription{
		{AppointmentID: "apt-1", DoctorID: "doc-1", PatientID: "pat-1", Symptoms: []string{"fever"}},
		{AppointmentID: "apt-2", DoctorID: "doc-1", PatientID: "pat-1", Symptoms: []string{"cough"}},
		{AppointmentID: "apt-3", DoctorID: "doc-2", PatientID: "pat-2", Symptoms: []string{"fatigue"}},
	}
	for i := range seed {
		if _, err := svc.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("by patient", func(t *testing.T) {
		items, err := svc.Search(ctx, "pat-1", "", DefaultSearchLimit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("expected 2 results, got %d", len(items))
		}
	})

	t.Run("by appointment", func(t *testing.T) {
		items, err := svc.Search(ctx, "", "apt-2", DefaultSearchLimit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 result, got %d", len(items))
		}
		if items[0]["appointment_id"] != "apt-2" {
			t.Errorf("unexpected result: %v", items[0])
		}
	})

	t.Run("both params", func(t *testing.T) {
		items, err := svc.Search(ctx, "pat-1", "apt-1", DefaultSearchLimit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Errorf("expected 1 result, got %d", len(items))
		}
	})

	t.Run("no params lists everything", func(t *testing.T) {
		items, err := svc.Search(ctx, "", "", DefaultSearchLimit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 3 {
			t.Errorf("expected 3 results, got %d", len(items))
		}
	})

	t.Run("nested items survive with shape intact", func(t *testing.T) {
		items, err := svc.Search(ctx, "pat-1", "apt-1", DefaultSearchLimit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 result, got %d", len(items))
		}
		symptoms, ok := items[0]["symptoms"].([]any)
		if !ok || len(symptoms) != 1 || symptoms[0] != "fever" {
			t.Errorf("nested symptoms changed: %v", items[0]["symptoms"])
		}
	})
}
