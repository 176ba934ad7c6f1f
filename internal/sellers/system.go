package sellers

import (
	"context"

	"github.com/storefront-labs/olist-api/pkg/pagination"
)

// System is the seller domain surface consumed by handlers and the
// bulk loader.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*Seller, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Seller], error)
	Get(ctx context.Context, id string) (*Seller, error)
	Update(ctx context.Context, id string, cmd UpdateCommand) (*Seller, error)
	Delete(ctx context.Context, id string) error
}
