package prescription

import "github.com/docdor/docdor/internal/platform/schema"

// Collection is the store collection prescription records live in.
const Collection = "prescription"

// MedicationItem is one prescribed drug with its dosing instructions.
type MedicationItem struct {
	DrugName  string  `json:"drug_name"`
	Dosage    string  `json:"dosage"`    // e.g. 500mg
	Frequency string  `json:"frequency"` // e.g. 1-0-1
	Duration  string  `json:"duration"`  // e.g. 5 days
	Notes     *string `json:"notes,omitempty"`
}

// LabItem is one ordered lab test.
type LabItem struct {
	TestName string  `json:"test_name"`
	Notes    *string `json:"notes,omitempty"`
}

// Prescription records the outcome of an appointment: symptoms, medications
// and lab orders, plus optional advice and follow-up.
type Prescription struct {
	AppointmentID string           `json:"appointment_id"`
	DoctorID      string           `json:"doctor_id"`
	PatientID     string           `json:"patient_id"`
	Symptoms      []string         `json:"symptoms"`
	Medications   []MedicationItem `json:"medications"`
	Labs          []LabItem        `json:"labs"`
	Advice        *string          `json:"advice,omitempty"`
	FollowUpDate  *string          `json:"follow_up_date,omitempty"` // YYYY-MM-DD
	PDFURL        *string          `json:"pdf_url,omitempty"`        // generated eRx document, if any
}

// SchemaModel describes the record for the /schema catalog.
func SchemaModel() schema.Model {
	return schema.Model{
		Name:       "Prescription",
		Collection: Collection,
		Fields: []schema.Field{
			{Name: "appointment_id", Type: "string", Required: true},
			{Name: "doctor_id", Type: "string", Required: true},
			{Name: "patient_id", Type: "string", Required: true},
			{Name: "symptoms", Type: "array", Required: true},
			{Name: "medications", Type: "array"},
			{Name: "labs", Type: "array"},
			{Name: "advice", Type: "string"},
			{Name: "follow_up_date", Type: "string", Description: "YYYY-MM-DD"},
			{Name: "pdf_url", Type: "string"},
		},
	}
}
