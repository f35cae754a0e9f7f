package entity

// Document is a loosely typed record of a named collection.
type Document struct {
	ID   string         `json:"id"`
	Data map[string]any `json:"data"`
}

// SortDirection orders query results.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Filter is an equality condition on a top-level field.
type Filter struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// OrderBy sorts query results by a top-level field.
type OrderBy struct {
	Field     string        `json:"field"`
	Direction SortDirection `json:"direction"`
}

// Query is the constrained query supported by every document store backend:
// equality filters combined with AND, an optional ordering and an optional limit.
type Query struct {
	Filters []Filter `json:"filters,omitempty"`
	OrderBy *OrderBy `json:"order_by,omitempty"`
	Limit   int      `json:"limit,omitempty"`
}

// Where returns a copy of the query with an extra equality filter.
func (q Query) Where(field string, value any) Query {
	filters := make([]Filter, len(q.Filters), len(q.Filters)+1)
	copy(filters, q.Filters)
	q.Filters = append(filters, Filter{Field: field, Value: value})

	return q
}

// Ordered returns a copy of the query sorted by field.
func (q Query) Ordered(field string, direction SortDirection) Query {
	q.OrderBy = &OrderBy{Field: field, Direction: direction}

	return q
}

// Limited returns a copy of the query capped at n results.
func (q Query) Limited(n int) Query {
	q.Limit = n

	return q
}
