package appointment

import (
	"time"

	"github.com/docdor/docdor/internal/platform/schema"
)

// Collection is the store collection appointment records live in.
const Collection = "appointment"

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

	TypeClinic = "clinic"
	TypeOnline = "online"

	VisitConsultation = "consultation"
	VisitFollowUp     = "follow-up"
)

// Appointment links a patient and a doctor at a scheduled time, either in
// clinic or online.
type Appointment struct {
	DoctorID       string    `json:"doctor_id"`
	PatientID      string    `json:"patient_id"`
	Type           string    `json:"type"`
	Status         string    `json:"status,omitempty"`
	VisitKind      string    `json:"visit_kind,omitempty"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	Reason         *string   `json:"reason,omitempty"`
	VisitCount     *int      `json:"visit_count,omitempty"`
	VideoSessionID *string   `json:"video_session_id,omitempty"` // session id for online visits
}

// SearchParams are the optional appointment list filters. A zero-value field
// contributes no constraint.
type SearchParams struct {
	DoctorID  string
	PatientID string
	Status    string
	Type      string
}

// SchemaModel describes the record for the /schema catalog.
func SchemaModel() schema.Model {
	return schema.Model{
		Name:       "Appointment",
		Collection: Collection,
		Fields: []schema.Field{
			{Name: "doctor_id", Type: "string", Required: true},
			{Name: "patient_id", Type: "string", Required: true},
			{Name: "type", Type: "string", Required: true, Enum: []string{TypeClinic, TypeOnline}},
			{Name: "status", Type: "string", Enum: []string{StatusScheduled, StatusCompleted, StatusCancelled}, Default: StatusScheduled},
			{Name: "visit_kind", Type: "string", Enum: []string{VisitConsultation, VisitFollowUp}, Default: VisitConsultation},
			{Name: "scheduled_at", Type: "datetime", Required: true},
			{Name: "reason", Type: "string"},
			{Name: "visit_count", Type: "integer", Default: 1},
			{Name: "video_session_id", Type: "string"},
		},
	}
}
