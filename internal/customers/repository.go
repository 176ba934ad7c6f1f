package customers

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

// Repository executes customer operations against the store. Absence is
// reported as a nil row, never as an error; translation into domain errors
// is the service's concern.
type Repository interface {
	Create(ctx context.Context, cmd CreateCommand) (*Customer, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) ([]Customer, int64, error)
	Find(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, id string, cmd UpdateCommand) (*Customer, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewRepository creates a PostgreSQL-backed customer repository.
func NewRepository(db *sql.DB, logger *slog.Logger) Repository {
	return &repo{
		db:     db,
		logger: logger.With("system", "customers"),
	}
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Customer, error) {
	q := `
		INSERT INTO customers (customer_id, customer_unique_id, customer_zip_code_prefix, customer_city, customer_state)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING customer_id, customer_unique_id, customer_zip_code_prefix, customer_city, customer_state, created_at`

	customer, err := repository.QueryOne(ctx, r.db, q, []any{
		cmd.ID, cmd.UniqueID, cmd.ZipCodePrefix, cmd.City, cmd.State,
	}, scanCustomer)

	if err != nil {
		r.logger.Error("create customer failed", "id", cmd.ID, "error", err)
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("customer created", "id", customer.ID)
	return &customer, nil
}

// List runs two independent reads: a count under the filter and an ordered
// page. Without a shared transaction the pair is not guaranteed mutually
// consistent under concurrent writes.
func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) ([]Customer, int64, error) {
	qb := query.NewBuilder(projection, defaultSort)
	filters.Apply(qb)

	countSQL, countArgs := qb.BuildCount()
	var total int64
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		r.logger.Error("count customers failed", "error", err)
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanCustomer)
	if err != nil {
		r.logger.Error("query customers failed", "error", err)
		return nil, 0, fmt.Errorf("query customers: %w", err)
	}

	return items, total, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Customer, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)

	customer, err := repository.QueryOne(ctx, r.db, q, args, scanCustomer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("find customer failed", "id", id, "error", err)
		return nil, err
	}

	return &customer, nil
}

// Update merges the patch store-side: COALESCE keeps the stored value for
// every field the patch leaves nil.
func (r *repo) Update(ctx context.Context, id string, cmd UpdateCommand) (*Customer, error) {
	q := `
		UPDATE customers
		SET customer_unique_id = COALESCE($2, customer_unique_id),
			customer_zip_code_prefix = COALESCE($3, customer_zip_code_prefix),
			customer_city = COALESCE($4, customer_city),
			customer_state = COALESCE($5, customer_state)
		WHERE customer_id = $1
		RETURNING customer_id, customer_unique_id, customer_zip_code_prefix, customer_city, customer_state, created_at`

	customer, err := repository.QueryOne(ctx, r.db, q, []any{
		id, cmd.UniqueID, cmd.ZipCodePrefix, cmd.City, cmd.State,
	}, scanCustomer)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Info("customer not found for update", "id", id)
			return nil, nil
		}
		r.logger.Error("update customer failed", "id", id, "error", err)
		return nil, err
	}

	r.logger.Info("customer updated", "id", customer.ID)
	return &customer, nil
}

func (r *repo) Delete(ctx context.Context, id string) (int64, error) {
	q := `DELETE FROM customers WHERE customer_id = $1`

	rows, err := repository.ExecRowsAffected(ctx, r.db, q, id)
	if err != nil {
		r.logger.Error("delete customer failed", "id", id, "error", err)
		return 0, err
	}

	if rows > 0 {
		r.logger.Info("customer deleted", "id", id)
	}
	return rows, nil
}
