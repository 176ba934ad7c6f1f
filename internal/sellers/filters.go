package sellers

import (
	"net/url"

	"github.com/storefront-labs/olist-api/pkg/query"
)

// Filters contains optional equality criteria for seller queries. Unset
// fields match all rows.
type Filters struct {
	City  *string
	State *string
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Construction never fails; blank parameters are treated as unset.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if city := values.Get("city"); city != "" {
		f.City = &city
	}
	if state := values.Get("state"); state != "" {
		f.State = &state
	}

	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.City != nil {
		b.WhereEquals("City", *f.City)
	}
	if f.State != nil {
		b.WhereEquals("State", *f.State)
	}
	return b
}
