package docstore

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store used by tests and local tooling. It
// evaluates filters with the same text-projection semantics as the Postgres
// engine: a condition matches against the text form of the document's
// top-level field.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	payload, err := jsonAPI.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal %s record: %w", collection, err)
	}
	var doc Document
	if err := jsonAPI.Unmarshal(payload, &doc); err != nil {
		return "", fmt.Errorf("decode %s record: %w", collection, err)
	}

	id := uuid.New()
	now := time.Now().UTC()
	doc["_id"] = id
	doc["created_at"] = now
	doc["updated_at"] = now

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], doc)
	s.mu.Unlock()
	return id.String(), nil
}

func (s *MemoryStore) Query(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Document
	for _, doc := range s.collections[collection] {
		ok, err := matches(doc, filter)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		cp := make(Document, len(doc))
		for k, v := range doc {
			cp[k] = v
		}
		out = append(out, cp)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryStore) Count(ctx context.Context, collection string, filter Filter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, doc := range s.collections[collection] {
		ok, err := matches(doc, filter)
		if err != nil {
			return 0, err
		}
		if ok {
			total++
		}
	}
	return total, nil
}

func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func matches(doc Document, filter Filter) (bool, error) {
	for _, c := range filter.Conditions {
		ok, err := matchCondition(doc, c)
		if err != nil || !ok {
			return false, err
		}
	}
	for _, group := range filter.OrGroups {
		matched := false
		for _, c := range group {
			ok, err := matchCondition(doc, c)
			if err != nil {
				return false, err
			}
			if ok {
				matched = true
				break
			}
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}

func matchCondition(doc Document, c Condition) (bool, error) {
	raw, ok := doc[c.Field]
	if !ok || raw == nil {
		return false, nil
	}
	field := fieldText(raw)
	value := textValue(c.Value)

	switch c.Op {
	case MatchContains:
		return strings.Contains(field, value), nil
	case MatchContainsFold:
		return strings.Contains(strings.ToLower(field), strings.ToLower(value)), nil
	case MatchPattern:
		// Like the Postgres engine, an invalid expression errors the query.
		re, err := regexp.Compile("(?i)" + value)
		if err != nil {
			return false, fmt.Errorf("invalid pattern for %s: %w", c.Field, err)
		}
		return re.MatchString(field), nil
	default:
		return field == value, nil
	}
}

// fieldText mirrors the Postgres ->> projection for the leaf types documents
// carry in memory.
func fieldText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case uuid.UUID:
		return x.String()
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
