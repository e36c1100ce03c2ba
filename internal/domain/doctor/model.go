package doctor

import "github.com/docdor/docdor/internal/platform/schema"

// Collection is the store collection doctor records live in.
const Collection = "doctor"

// Doctor is a practicing clinician profile linked to a user account.
type Doctor struct {
	UserID             string   `json:"user_id"`
	Specialization     string   `json:"specialization"`
	SubSpecializations []string `json:"sub_specializations,omitempty"`
	Qualification      *string  `json:"qualification,omitempty"`
	ExperienceYears    *int     `json:"experience_years,omitempty"`
	ClinicName         *string  `json:"clinic_name,omitempty"`
	ConsultationFee    *float64 `json:"consultation_fee,omitempty"`
	OnlineAvailable    *bool    `json:"online_available,omitempty"`
	ClinicAvailable    *bool    `json:"clinic_available,omitempty"`
}

// SchemaModel describes the record for the /schema catalog.
func SchemaModel() schema.Model {
	return schema.Model{
		Name:       "Doctor",
		Collection: Collection,
		Fields: []schema.Field{
			{Name: "user_id", Type: "string", Required: true, Description: "Reference to user"},
			{Name: "specialization", Type: "string", Required: true},
			{Name: "sub_specializations", Type: "array"},
			{Name: "qualification", Type: "string"},
			{Name: "experience_years", Type: "integer"},
			{Name: "clinic_name", Type: "string"},
			{Name: "consultation_fee", Type: "number"},
			{Name: "online_available", Type: "boolean", Default: true},
			{Name: "clinic_available", Type: "boolean", Default: true},
		},
	}
}
