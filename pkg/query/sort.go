package query

// SortField identifies a projection field and direction for ORDER BY clauses.
type SortField struct {
	Field      string
	Descending bool
}
