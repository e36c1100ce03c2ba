package patient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/docdor/docdor/internal/platform/docstore"
)

// ErrInvalid marks record-validation failures so the handler can tell them
// apart from store failures.
var ErrInvalid = errors.New("invalid patient")

// DefaultSearchLimit bounds patient searches when the caller gives no limit.
const DefaultSearchLimit = 50

var validGenders = map[string]bool{
	"male": true, "female": true, "other": true,
}

type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, p *Patient) (string, error) {
	if p.Name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if p.Phone == "" {
		return "", fmt.Errorf("%w: phone is required", ErrInvalid)
	}
	if p.Gender != nil && !validGenders[*p.Gender] {
		return "", fmt.Errorf("%w: gender must be male, female or other", ErrInvalid)
	}
	if p.Age != nil && (*p.Age < 0 || *p.Age > 120) {
		return "", fmt.Errorf("%w: age must be between 0 and 120", ErrInvalid)
	}
	if p.DOB != nil {
		if _, err := time.Parse("2006-01-02", *p.DOB); err != nil {
			return "", fmt.Errorf("%w: dob must be YYYY-MM-DD", ErrInvalid)
		}
	}
	return s.store.Insert(ctx, Collection, p)
}

// Search finds patients whose name or phone contains q. The q text is
// matched literally (name case-insensitively, phone as digits); an empty q
// returns every patient up to limit. Documents come back normalized and
// ready for JSON encoding.
func (s *Service) Search(ctx context.Context, q string, limit int) ([]docstore.Document, error) {
	b := docstore.NewFilter()
	if q != "" {
		b.AnyOf(
			docstore.ContainsFold("name", q),
			docstore.Contains("phone", q),
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
