package docstore

import "strings"

// MatchOp selects how a condition compares a field against its value.
//
// The contains ops treat the value as literal text: LIKE/regex metacharacters
// in caller-supplied search strings are neutralized before the store embeds
// them in a pattern. MatchPattern is the explicit opt-out — the value is used
// as a case-insensitive regular expression verbatim, which is what callers
// migrating from regex-based document stores may want, metacharacters and all.
type MatchOp int

const (
	MatchEqual        MatchOp = iota // exact equality on the field's text form
	MatchContains                    // literal substring
	MatchContainsFold                // literal substring, case-insensitive
	MatchPattern                     // case-insensitive regular expression, unescaped
)

// Condition is a single field-level match criterion.
type Condition struct {
	Field string
	Op    MatchOp
	Value any
}

// Filter is a structured query predicate over one collection. All Conditions
// must hold, and within each OrGroup at least one member must hold; groups
// themselves combine with the Conditions under AND. The zero Filter matches
// every document.
//
// A Filter is built fresh per request, never persisted, and holds no state
// beyond its criteria, so values are safe to share across goroutines.
type Filter struct {
	Conditions []Condition
	OrGroups   [][]Condition
}

// IsEmpty reports whether the filter matches every document.
func (f Filter) IsEmpty() bool {
	return len(f.Conditions) == 0 && len(f.OrGroups) == 0
}

// Eq builds an exact-match condition.
func Eq(field string, value any) Condition {
	return Condition{Field: field, Op: MatchEqual, Value: value}
}

// Contains builds a literal, case-sensitive substring condition.
func Contains(field, substr string) Condition {
	return Condition{Field: field, Op: MatchContains, Value: substr}
}

// ContainsFold builds a literal, case-insensitive substring condition.
func ContainsFold(field, substr string) Condition {
	return Condition{Field: field, Op: MatchContainsFold, Value: substr}
}

// Pattern builds a case-insensitive regular-expression condition. The value
// is not escaped; prefer Contains/ContainsFold for user-supplied text.
func Pattern(field, expr string) Condition {
	return Condition{Field: field, Op: MatchPattern, Value: expr}
}

// FilterBuilder assembles a Filter from optional request parameters. Absent
// parameters (empty strings) contribute nothing — absence means "no
// constraint on this field", not "field is empty". Building cannot fail.
type FilterBuilder struct {
	f Filter
}

// NewFilter starts an empty filter.
func NewFilter() *FilterBuilder {
	return &FilterBuilder{}
}

// Equal adds an exact-match condition when value is present.
func (b *FilterBuilder) Equal(field, value string) *FilterBuilder {
	if value != "" {
		b.f.Conditions = append(b.f.Conditions, Eq(field, value))
	}
	return b
}

// AnyOf adds a group of conditions of which at least one must match.
// Groups with no conditions are dropped.
func (b *FilterBuilder) AnyOf(conds ...Condition) *FilterBuilder {
	if len(conds) > 0 {
		b.f.OrGroups = append(b.f.OrGroups, conds)
	}
	return b
}

// Build returns the assembled filter.
func (b *FilterBuilder) Build() Filter {
	return b.f
}

// escapeLike neutralizes LIKE/ILIKE metacharacters so s matches literally
// inside a pattern.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
