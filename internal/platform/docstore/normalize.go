package docstore

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// MaxDepth bounds the recursive walk in NormalizeValue. Store documents are
// application records a handful of levels deep; anything past this bound is
// rejected rather than risking unbounded stack growth.
const MaxDepth = 32

// ErrTooDeep is returned when a document nests deeper than MaxDepth.
var ErrTooDeep = errors.New("docstore: document too deeply nested")

// NormalizeDocument rewrites every leaf of doc into a JSON-safe value,
// preserving keys, order and shape. See NormalizeValue.
func NormalizeDocument(doc Document) (Document, error) {
	out, err := normalize(doc, 0)
	if err != nil {
		return nil, err
	}
	return out.(Document), nil
}

// NormalizeValue rewrites v into a JSON-safe value:
//
//   - opaque identifiers become their canonical text form
//   - timestamps become RFC 3339 text
//   - sequences and mappings are rebuilt with each element normalized
//   - every other scalar passes through unchanged
//
// The function is total over anything the store produces; values it cannot
// classify pass through as-is and any JSON-encoding failure they cause later
// is the caller's to surface.
func NormalizeValue(v any) (any, error) {
	return normalize(v, 0)
}

func normalize(v any, depth int) (any, error) {
	if depth > MaxDepth {
		return nil, ErrTooDeep
	}

	switch KindOf(v) {
	case KindIdentifier:
		switch id := v.(type) {
		case uuid.UUID:
			return id.String(), nil
		case *uuid.UUID:
			if id == nil {
				return nil, nil
			}
			return id.String(), nil
		}
	case KindTimestamp:
		switch t := v.(type) {
		case time.Time:
			return t.Format(time.RFC3339Nano), nil
		case *time.Time:
			if t == nil {
				return nil, nil
			}
			return t.Format(time.RFC3339Nano), nil
		}
	case KindSequence:
		seq := v.([]any)
		out := make([]any, len(seq))
		for i, el := range seq {
			norm, err := normalize(el, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = norm
		}
		return out, nil
	case KindMapping:
		m := v.(map[string]any)
		out := make(map[string]any, len(m))
		for k, el := range m {
			norm, err := normalize(el, depth+1)
			if err != nil {
				return nil, err
			}
			out[k] = norm
		}
		return out, nil
	}

	// Null, Bool, Number, Text and Unknown pass through unchanged.
	return v, nil
}
