package docstore

import "context"

// Store is the narrow boundary to the document database. The core constructs
// Filter values and hands them to a Store; connection management, indexing
// and the query language behind this interface are the store's business.
//
// Implementations must treat the empty Filter as match-all and must not
// mutate documents after returning them. Errors from the underlying database
// propagate unwrapped in meaning: callers surface them as service-level
// failures, the core never swallows them.
type Store interface {
	// Insert validates nothing itself; it serializes record and stores it
	// under collection, returning the new document's canonical id text.
	Insert(ctx context.Context, collection string, record any) (string, error)

	// Query returns up to limit documents from collection matching filter.
	// A limit <= 0 means no limit.
	Query(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)

	// Count returns the number of documents in collection matching filter.
	Count(ctx context.Context, collection string, filter Filter) (int, error)

	// Collections lists the distinct collection names present in the store.
	Collections(ctx context.Context) ([]string, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
