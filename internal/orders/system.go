package orders

import (
	"context"

	"github.com/storefront-labs/olist-api/pkg/pagination"
)

// System is the order domain surface consumed by handlers and the
// bulk loader.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*Order, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Order], error)
	ListByCustomer(ctx context.Context, customerID string, page pagination.PageRequest) (*pagination.PageResult[Order], error)
	Get(ctx context.Context, id string) (*Order, error)
}
