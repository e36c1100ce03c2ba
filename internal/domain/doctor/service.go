package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/docdor/docdor/internal/platform/docstore"
)

// ErrInvalid marks record-validation failures.
var ErrInvalid = errors.New("invalid doctor")

// DefaultSearchLimit bounds doctor searches when the caller gives no limit.
const DefaultSearchLimit = 50

type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, d *Doctor) (string, error) {
	if d.UserID == "" {
		return "", fmt.Errorf("%w: user_id is required", ErrInvalid)
	}
	if d.Specialization == "" {
		return "", fmt.Errorf("%w: specialization is required", ErrInvalid)
	}
	if d.ExperienceYears != nil && *d.ExperienceYears < 0 {
		return "", fmt.Errorf("%w: experience_years must not be negative", ErrInvalid)
	}
	if d.ConsultationFee != nil && *d.ConsultationFee < 0 {
		return "", fmt.Errorf("%w: consultation_fee must not be negative", ErrInvalid)
	}

	if d.OnlineAvailable == nil {
		t := true
		d.OnlineAvailable = &t
	}
	if d.ClinicAvailable == nil {
		t := true
		d.ClinicAvailable = &t
	}
	return s.store.Insert(ctx, Collection, d)
}

// Search lists doctors, optionally filtered by exact specialization, by
// online availability ("true" or "false") and by a free-text q matched
// against specialization and clinic name.
func (s *Service) Search(ctx context.Context, specialization, online, q string, limit int) ([]docstore.Document, error) {
	b := docstore.NewFilter().
		Equal("specialization", specialization).
		Equal("online_available", online)
	if q != "" {
		b.AnyOf(
			docstore.ContainsFold("specialization", q),
			docstore.ContainsFold("clinic_name", q),
		)
	}

	docs, err := s.store.Query(ctx, Collection, b.Build(), limit)
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
