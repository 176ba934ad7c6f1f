package sellers

import "github.com/storefront-labs/olist-api/pkg/query"

var projection = query.
	NewProjectionMap("public", "sellers", "s").
	Project("seller_id", "ID").
	Project("seller_zip_code_prefix", "ZipCodePrefix").
	Project("seller_city", "City").
	Project("seller_state", "State")

// Canonical listing order: seller identity ascending.
var defaultSort = query.SortField{Field: "ID"}
