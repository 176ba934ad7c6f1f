package customers

import "github.com/storefront-labs/olist-api/pkg/query"

var projection = query.
	NewProjectionMap("public", "customers", "c").
	Project("customer_id", "ID").
	Project("customer_unique_id", "UniqueID").
	Project("customer_zip_code_prefix", "ZipCodePrefix").
	Project("customer_city", "City").
	Project("customer_state", "State").
	Project("created_at", "CreatedAt")

// Canonical listing order: newest customers first.
var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}
