package schema

// CatalogModels returns the record models that exist in the data model but
// have no HTTP surface yet: identities, chat, payments and the seed catalogs
// used by prescription search. They are published through /schema so client
// tooling shares one source of field names.
func CatalogModels() []Model {
	return []Model{
		{
			Name:       "User",
			Collection: "user",
			Fields: []Field{
				{Name: "role", Type: "string", Required: true, Enum: []string{"doctor", "receptionist", "patient"}},
				{Name: "email", Type: "string"},
				{Name: "phone", Type: "string", Required: true, Description: "Primary phone number"},
				{Name: "name", Type: "string", Required: true},
				{Name: "two_factor_enabled", Type: "boolean", Default: false},
				{Name: "is_active", Type: "boolean", Default: true},
			},
		},
		{
			Name:       "ChatMessage",
			Collection: "chat_message",
			Fields: []Field{
				{Name: "room_id", Type: "string", Required: true, Description: "patient-doctor room id"},
				{Name: "sender_id", Type: "string", Required: true},
				{Name: "receiver_id", Type: "string", Required: true},
				{Name: "body", Type: "string", Required: true},
				{Name: "media_url", Type: "string"},
				{Name: "sent_at", Type: "datetime"},
			},
		},
		{
			Name:       "Payment",
			Collection: "payment",
			Fields: []Field{
				{Name: "appointment_id", Type: "string", Required: true},
				{Name: "amount", Type: "number", Required: true},
				{Name: "currency", Type: "string", Enum: []string{"INR", "USD"}, Default: "INR"},
				{Name: "status", Type: "string", Enum: []string{"pending", "paid", "failed", "refunded"}, Default: "pending"},
				{Name: "provider", Type: "string", Required: true, Enum: []string{"stripe", "razorpay"}},
				{Name: "provider_payment_id", Type: "string"},
			},
		},
		{
			Name:       "Drug",
			Collection: "drug",
			Fields: []Field{
				{Name: "name", Type: "string", Required: true},
				{Name: "salt", Type: "string"},
			},
		},
		{
			Name:       "LabTest",
			Collection: "lab_test",
			Fields: []Field{
				{Name: "name", Type: "string", Required: true},
				{Name: "category", Type: "string"},
			},
		},
	}
}
