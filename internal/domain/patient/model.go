package patient

import "github.com/docdor/docdor/internal/platform/schema"

// Collection is the store collection patient records live in.
const Collection = "patient"

// Patient is a clinic patient record. Patients may exist without a login,
// so user_id is optional.
type Patient struct {
	UserID         *string  `json:"user_id,omitempty"`
	Name           string   `json:"name"`
	Phone          string   `json:"phone"`
	DOB            *string  `json:"dob,omitempty"` // YYYY-MM-DD
	Age            *int     `json:"age,omitempty"`
	Gender         *string  `json:"gender,omitempty"`
	MedicalHistory []string `json:"medical_history,omitempty"`
	Allergies      []string `json:"allergies,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// SchemaModel describes the record for the /schema catalog.
func SchemaModel() schema.Model {
	return schema.Model{
		Name:       "Patient",
		Collection: Collection,
		Fields: []schema.Field{
			{Name: "user_id", Type: "string", Description: "Reference to user if registered"},
			{Name: "name", Type: "string", Required: true},
			{Name: "phone", Type: "string", Required: true},
			{Name: "dob", Type: "string", Description: "YYYY-MM-DD"},
			{Name: "age", Type: "integer"},
			{Name: "gender", Type: "string", Enum: []string{"male", "female", "other"}},
			{Name: "medical_history", Type: "array", Description: "Major conditions"},
			{Name: "allergies", Type: "array"},
			{Name: "notes", Type: "string"},
		},
	}
}
