package metrics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/docdor/docdor/internal/domain/appointment"
	"github.com/docdor/docdor/internal/platform/docstore"
)

func seedAppointments(t *testing.T, store docstore.Store) {
	t.Helper()
	ctx := context.Background()
	when := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	two := 2
	records := []appointment.Appointment{
		{DoctorID: "doc-1", PatientID: "pat-1", Type: appointment.TypeClinic, Status: appointment.StatusScheduled, VisitKind: appointment.VisitFollowUp, VisitCount: &two, ScheduledAt: when},
		{DoctorID: "doc-1", PatientID: "pat-2", Type: appointment.TypeOnline, Status: appointment.StatusScheduled, VisitKind: appointment.VisitConsultation, ScheduledAt: when},
		{DoctorID: "doc-1", PatientID: "pat-3", Type: appointment.TypeClinic, Status: appointment.StatusCompleted, ScheduledAt: when},
		{DoctorID: "doc-1", PatientID: "pat-4", Type: appointment.TypeClinic, Status: appointment.StatusCancelled, ScheduledAt: when},
		{DoctorID: "doc-2", PatientID: "pat-5", Type: appointment.TypeClinic, Status: appointment.StatusScheduled, ScheduledAt: when},
	}
	svc := appointment.NewService(store)
	for i := range records {
		if _, err := svc.Create(ctx, &records[i]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestService_DoctorSummary(t *testing.T) {
	store := docstore.NewMemoryStore()
	seedAppointments(t, store)
	svc := NewService(store)

	summary, err := svc.DoctorSummary(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Totals.Appointments != 4 {
		t.Errorf("expected 4 total appointments, got %d", summary.Totals.Appointments)
	}
	if summary.Totals.Completed != 1 {
		t.Errorf("expected 1 completed appointment, got %d", summary.Totals.Completed)
	}
	if len(summary.Upcoming) != 2 {
		t.Fatalf("expected 2 upcoming visits, got %d", len(summary.Upcoming))
	}

	for _, v := range summary.Upcoming {
		if v.AppointmentID == "" {
			t.Error("expected appointment_id set")
		}
		if _, ok := v.ScheduledAt.(string); !ok {
			t.Errorf("expected scheduled_at as text, got %T", v.ScheduledAt)
		}
		if v.VisitCount == nil || v.VisitKind == nil {
			t.Errorf("expected visit defaults filled in: %+v", v)
		}
	}
}

func TestService_DoctorSummary_UnknownDoctor(t *testing.T) {
	store := docstore.NewMemoryStore()
	seedAppointments(t, store)
	svc := NewService(store)

	summary, err := svc.DoctorSummary(context.Background(), "doc-none")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Totals.Appointments != 0 || summary.Totals.Completed != 0 {
		t.Errorf("expected zero totals, got %+v", summary.Totals)
	}
	if len(summary.Upcoming) != 0 {
		t.Errorf("expected no upcoming visits, got %d", len(summary.Upcoming))
	}
}

func TestService_DoctorSummary_CancelledNeverUpcoming(t *testing.T) {
	store := docstore.NewMemoryStore()
	seedAppointments(t, store)
	svc := NewService(store)

	summary, err := svc.DoctorSummary(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range summary.Upcoming {
		if v.PatientID == "pat-4" {
			t.Error("cancelled appointment listed as upcoming")
		}
	}
}

func TestDoctorMetrics_Handler(t *testing.T) {
	store := docstore.NewMemoryStore()
	seedAppointments(t, store)
	h := NewHandler(NewService(store))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/metrics/doctor/:doctor_id")
	c.SetParamNames("doctor_id")
	c.SetParamValues("doc-1")

	if err := h.DoctorMetrics(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Totals struct {
			Appointments int `json:"appointments"`
			Completed    int `json:"completed"`
		} `json:"totals"`
		Upcoming []map[string]any `json:"upcoming"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Totals.Appointments != 4 || resp.Totals.Completed != 1 {
		t.Errorf("unexpected totals: %+v", resp.Totals)
	}
	if len(resp.Upcoming) != 2 {
		t.Errorf("expected 2 upcoming visits, got %d", len(resp.Upcoming))
	}
}
