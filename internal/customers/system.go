package customers

import (
	"context"

	"github.com/storefront-labs/olist-api/pkg/pagination"
)

// System is the customer domain surface consumed by handlers and the
// bulk loader.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*Customer, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Customer], error)
	Get(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, id string, cmd UpdateCommand) (*Customer, error)
	Delete(ctx context.Context, id string) error
}
