package docstore

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document is an untyped record as stored in and returned by the store:
// a tree of mappings, sequences and scalar leaves. Leaves produced by the
// store itself may include uuid.UUID and time.Time values, which are not
// directly JSON-safe.
type Document = map[string]any

// Kind classifies a runtime value into the closed set of value kinds the
// normalizer knows how to handle. KindUnknown is a deliberate catch-all so
// the best-effort passthrough is a visible branch, not a silent default.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindText
	KindIdentifier
	KindTimestamp
	KindSequence
	KindMapping
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindIdentifier:
		return "identifier"
	case KindTimestamp:
		return "timestamp"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// KindOf classifies v. Pointer forms of identifier and timestamp leaves are
// classified the same as their value forms since both appear in documents
// assembled from typed records.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int32, int64, float32, float64, json.Number:
		return KindNumber
	case string:
		return KindText
	case uuid.UUID, *uuid.UUID:
		return KindIdentifier
	case time.Time, *time.Time:
		return KindTimestamp
	case []any:
		return KindSequence
	case map[string]any:
		return KindMapping
	default:
		return KindUnknown
	}
}
