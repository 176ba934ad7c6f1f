package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/storefront-labs/olist-api/pkg/pagination"
	"github.com/storefront-labs/olist-api/pkg/query"
	"github.com/storefront-labs/olist-api/pkg/repository"
)

// Repository executes order operations against the store. Orders are
// immutable once created; there is no update or delete path.
type Repository interface {
	Create(ctx context.Context, cmd CreateCommand) (*Order, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) ([]Order, int64, error)
	ListByCustomer(ctx context.Context, customerID string, page pagination.PageRequest) ([]Order, int64, error)
	Find(ctx context.Context, id string) (*Order, error)
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewRepository creates a PostgreSQL-backed order repository.
func NewRepository(db *sql.DB, logger *slog.Logger) Repository {
	return &repo{
		db:     db,
		logger: logger.With("system", "orders"),
	}
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Order, error) {
	q := `
		INSERT INTO orders (
			order_id, customer_id, order_status,
			order_purchase_timestamp, order_approved_at,
			order_delivered_carrier_date, order_delivered_customer_date,
			order_estimated_delivery_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING order_id, customer_id, order_status,
			order_purchase_timestamp, order_approved_at,
			order_delivered_carrier_date, order_delivered_customer_date,
			order_estimated_delivery_date`

	order, err := repository.QueryOne(ctx, r.db, q, []any{
		cmd.ID, cmd.CustomerID, cmd.Status,
		cmd.PurchaseTimestamp, cmd.ApprovedAt,
		cmd.DeliveredCarrierDate, cmd.DeliveredCustomerDate,
		cmd.EstimatedDeliveryDate,
	}, scanOrder)

	if err != nil {
		r.logger.Error("create order failed", "id", cmd.ID, "error", err)
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("order created", "id", order.ID, "customer", order.CustomerID)
	return &order, nil
}

// List runs a count and an ordered page as two independent reads with no
// shared transaction.
func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) ([]Order, int64, error) {
	qb := query.NewBuilder(projection, defaultSort)
	filters.Apply(qb)

	return r.page(ctx, qb, page)
}

// ListByCustomer pages a single customer's orders, most recent first.
func (r *repo) ListByCustomer(ctx context.Context, customerID string, page pagination.PageRequest) ([]Order, int64, error) {
	qb := query.NewBuilder(projection, defaultSort).
		WhereEquals("CustomerID", customerID)

	return r.page(ctx, qb, page)
}

func (r *repo) page(ctx context.Context, qb *query.Builder, page pagination.PageRequest) ([]Order, int64, error) {
	countSQL, countArgs := qb.BuildCount()
	var total int64
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		r.logger.Error("count orders failed", "error", err)
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanOrder)
	if err != nil {
		r.logger.Error("query orders failed", "error", err)
		return nil, 0, fmt.Errorf("query orders: %w", err)
	}

	return items, total, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Order, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)

	order, err := repository.QueryOne(ctx, r.db, q, args, scanOrder)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("find order failed", "id", id, "error", err)
		return nil, err
	}

	return &order, nil
}
