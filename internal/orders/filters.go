package orders

import (
	"net/url"

	"github.com/storefront-labs/olist-api/pkg/query"
)

// Filters contains optional equality criteria for order queries. Unset
// fields match all rows.
type Filters struct {
	Status *string
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Construction never fails; blank parameters are treated as unset.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if status := values.Get("order_status"); status != "" {
		f.Status = &status
	}

	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Status != nil {
		b.WhereEquals("Status", *f.Status)
	}
	return b
}
