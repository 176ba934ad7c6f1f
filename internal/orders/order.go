// Package orders provides order records: validated creation, identity
// lookup, status-filtered listing, and per-customer listing.
package orders

import "time"

// Order represents a stored order row. Orders reference a customer by
// identity; the relation is enforced by the store's own constraint.
type Order struct {
	ID                    string     `json:"order_id"`
	CustomerID            string     `json:"customer_id"`
	Status                string     `json:"order_status"`
	PurchaseTimestamp     time.Time  `json:"order_purchase_timestamp"`
	ApprovedAt            time.Time  `json:"order_approved_at"`
	DeliveredCarrierDate  *time.Time `json:"order_delivered_carrier_date"`
	DeliveredCustomerDate *time.Time `json:"order_delivered_customer_date"`
	EstimatedDeliveryDate time.Time  `json:"order_estimated_delivery_date"`
}

// CreateCommand contains the data needed to create a new order. The two
// delivered dates are optional; an order may not have shipped yet.
type CreateCommand struct {
	ID                    string     `json:"order_id" validate:"required"`
	CustomerID            string     `json:"customer_id" validate:"required"`
	Status                string     `json:"order_status" validate:"required"`
	PurchaseTimestamp     time.Time  `json:"order_purchase_timestamp" validate:"required"`
	ApprovedAt            time.Time  `json:"order_approved_at" validate:"required"`
	DeliveredCarrierDate  *time.Time `json:"order_delivered_carrier_date,omitempty"`
	DeliveredCustomerDate *time.Time `json:"order_delivered_customer_date,omitempty"`
	EstimatedDeliveryDate time.Time  `json:"order_estimated_delivery_date" validate:"required"`
}
