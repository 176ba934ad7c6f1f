package orders

import (
	"fmt"
	"time"
)

// timestampLayout matches the dataset's timestamp format.
const timestampLayout = "2006-01-02 15:04:05"

// DecodeRecord maps a dataset CSV row to a create command. Expected column
// order: order_id, customer_id, order_status, order_purchase_timestamp,
// order_approved_at, order_delivered_carrier_date,
// order_delivered_customer_date, order_estimated_delivery_date. The two
// delivered dates may be blank.
func DecodeRecord(record []string) (CreateCommand, error) {
	if len(record) < 8 {
		return CreateCommand{}, fmt.Errorf("expected 8 columns, got %d", len(record))
	}

	purchased, err := parseTimestamp(record[3])
	if err != nil {
		return CreateCommand{}, fmt.Errorf("order_purchase_timestamp: %w", err)
	}

	approved, err := parseTimestamp(record[4])
	if err != nil {
		return CreateCommand{}, fmt.Errorf("order_approved_at: %w", err)
	}

	carrier, err := parseOptionalTimestamp(record[5])
	if err != nil {
		return CreateCommand{}, fmt.Errorf("order_delivered_carrier_date: %w", err)
	}

	delivered, err := parseOptionalTimestamp(record[6])
	if err != nil {
		return CreateCommand{}, fmt.Errorf("order_delivered_customer_date: %w", err)
	}

	estimated, err := parseTimestamp(record[7])
	if err != nil {
		return CreateCommand{}, fmt.Errorf("order_estimated_delivery_date: %w", err)
	}

	return CreateCommand{
		ID:                    record[0],
		CustomerID:            record[1],
		Status:                record[2],
		PurchaseTimestamp:     purchased,
		ApprovedAt:            approved,
		DeliveredCarrierDate:  carrier,
		DeliveredCustomerDate: delivered,
		EstimatedDeliveryDate: estimated,
	}, nil
}

func parseTimestamp(value string) (time.Time, error) {
	return time.Parse(timestampLayout, value)
}

func parseOptionalTimestamp(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(timestampLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
