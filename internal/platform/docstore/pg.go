package docstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	jsoniter "github.com/json-iterator/go"
)

const (
	dialectPostgres = "postgres"
	documentTable   = "document"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// PGStore implements Store on a single Postgres table with a JSONB payload
// column. Filters compile to SQL over `data->>'field'` text projections, so
// one table serves every collection without per-collection schemas.
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// EnsureSchema creates the document table and its indexes if missing.
func (s *PGStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS document (
			id UUID PRIMARY KEY,
			collection TEXT NOT NULL,
			data JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS document_collection_idx
			ON document (collection, created_at DESC);
		CREATE INDEX IF NOT EXISTS document_data_idx
			ON document USING GIN (data);`)
	if err != nil {
		return fmt.Errorf("ensure document schema: %w", err)
	}
	return nil
}

func (s *PGStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	payload, err := jsonAPI.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal %s record: %w", collection, err)
	}

	id := uuid.New()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO document (id, collection, data) VALUES ($1, $2, $3)`,
		id, collection, payload)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return id.String(), nil
}

func (s *PGStore) Query(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	sql, err := buildSelectSQL(collection, filter, limit)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			id        uuid.UUID
			data      []byte
			createdAt time.Time
			updatedAt time.Time
		)
		if err := rows.Scan(&id, &data, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", collection, err)
		}

		var doc Document
		if err := jsonAPI.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode %s document %s: %w", collection, id, err)
		}
		// Column-backed leaves keep their native types; the normalizer
		// canonicalizes them at the response boundary.
		doc["_id"] = id
		doc["created_at"] = createdAt
		doc["updated_at"] = updatedAt
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *PGStore) Count(ctx context.Context, collection string, filter Filter) (int, error) {
	sql, err := buildCountSQL(collection, filter)
	if err != nil {
		return 0, err
	}

	var total int
	if err := s.pool.QueryRow(ctx, sql).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return total, nil
}

func (s *PGStore) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT collection FROM document ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *PGStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func buildSelectSQL(collection string, filter Filter, limit int) (string, error) {
	stmt := goqu.Dialect(dialectPostgres).
		From(documentTable).
		Select("id", "data", "created_at", "updated_at").
		Where(whereExpression(collection, filter)).
		Order(goqu.I("created_at").Desc())

	if limit > 0 {
		stmt = stmt.Limit(uint(limit))
	}

	sql, _, err := stmt.ToSQL()
	if err != nil {
		return "", fmt.Errorf("build select for %s: %w", collection, err)
	}
	return sql, nil
}

func buildCountSQL(collection string, filter Filter) (string, error) {
	stmt := goqu.Dialect(dialectPostgres).
		From(documentTable).
		Select(goqu.COUNT(goqu.Star())).
		Where(whereExpression(collection, filter))

	sql, _, err := stmt.ToSQL()
	if err != nil {
		return "", fmt.Errorf("build count for %s: %w", collection, err)
	}
	return sql, nil
}

func whereExpression(collection string, filter Filter) goqu.Expression {
	exprs := []goqu.Expression{goqu.C("collection").Eq(collection)}

	for _, c := range filter.Conditions {
		exprs = append(exprs, conditionExpression(c))
	}
	for _, group := range filter.OrGroups {
		ors := make([]goqu.Expression, 0, len(group))
		for _, c := range group {
			ors = append(ors, conditionExpression(c))
		}
		exprs = append(exprs, goqu.Or(ors...))
	}
	return goqu.And(exprs...)
}

func conditionExpression(c Condition) goqu.Expression {
	field := goqu.L("data->>" + quoteLiteral(c.Field))
	value := textValue(c.Value)

	switch c.Op {
	case MatchContains:
		return field.Like("%" + escapeLike(value) + "%")
	case MatchContainsFold:
		return field.ILike("%" + escapeLike(value) + "%")
	case MatchPattern:
		return field.RegexpILike(value)
	default:
		return field.Eq(value)
	}
}

// textValue renders a condition value the way Postgres renders the matching
// JSONB leaf through the ->> text projection.
func textValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", x)
	}
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
