package orders

import "github.com/storefront-labs/olist-api/pkg/repository"

func scanOrder(s repository.Scanner) (Order, error) {
	var o Order
	err := s.Scan(
		&o.ID,
		&o.CustomerID,
		&o.Status,
		&o.PurchaseTimestamp,
		&o.ApprovedAt,
		&o.DeliveredCarrierDate,
		&o.DeliveredCustomerDate,
		&o.EstimatedDeliveryDate,
	)
	return o, err
}
