package orders

import "github.com/storefront-labs/olist-api/pkg/query"

var projection = query.
	NewProjectionMap("public", "orders", "o").
	Project("order_id", "ID").
	Project("customer_id", "CustomerID").
	Project("order_status", "Status").
	Project("order_purchase_timestamp", "PurchaseTimestamp").
	Project("order_approved_at", "ApprovedAt").
	Project("order_delivered_carrier_date", "DeliveredCarrierDate").
	Project("order_delivered_customer_date", "DeliveredCustomerDate").
	Project("order_estimated_delivery_date", "EstimatedDeliveryDate")

// Canonical listing order: most recent purchases first.
var defaultSort = query.SortField{Field: "PurchaseTimestamp", Descending: true}
