package sellers

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

// Repository executes seller operations against the store. Absence is
// reported as a nil row, never as an error.
type Repository interface {
	Create(ctx context.Context, cmd CreateCommand) (*Seller, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) ([]Seller, int64, error)
	Find(ctx context.Context, id string) (*Seller, error)
	Update(ctx context.Context, id string, cmd UpdateCommand) (*Seller, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewRepository creates a PostgreSQL-backed seller repository.
func NewRepository(db *sql.DB, logger *slog.Logger) Repository {
	return &repo{
		db:     db,
		logger: logger.With("system", "sellers"),
	}
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Seller, error) {
	q := `
		INSERT INTO sellers (seller_id, seller_zip_code_prefix, seller_city, seller_state)
		VALUES ($1, $2, $3, $4)
		RETURNING seller_id, seller_zip_code_prefix, seller_city, seller_state`

	seller, err := repository.QueryOne(ctx, r.db, q, []any{
		cmd.ID, cmd.ZipCodePrefix, cmd.City, cmd.State,
	}, scanSeller)

	if err != nil {
		r.logger.Error("create seller failed", "id", cmd.ID, "error", err)
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("seller created", "id", seller.ID)
	return &seller, nil
}

// List runs a count and an ordered page as two independent reads with no
// shared transaction.
func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) ([]Seller, int64, error) {
	qb := query.NewBuilder(projection, defaultSort)
	filters.Apply(qb)

	countSQL, countArgs := qb.BuildCount()
	var total int64
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		r.logger.Error("count sellers failed", "error", err)
		return nil, 0, fmt.Errorf("count sellers: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanSeller)
	if err != nil {
		r.logger.Error("query sellers failed", "error", err)
		return nil, 0, fmt.Errorf("query sellers: %w", err)
	}

	return items, total, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Seller, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)

	seller, err := repository.QueryOne(ctx, r.db, q, args, scanSeller)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("find seller failed", "id", id, "error", err)
		return nil, err
	}

	return &seller, nil
}

func (r *repo) Update(ctx context.Context, id string, cmd UpdateCommand) (*Seller, error) {
	q := `
		UPDATE sellers
		SET seller_zip_code_prefix = COALESCE($2, seller_zip_code_prefix),
			seller_city = COALESCE($3, seller_city),
			seller_state = COALESCE($4, seller_state)
		WHERE seller_id = $1
		RETURNING seller_id, seller_zip_code_prefix, seller_city, seller_state`

	seller, err := repository.QueryOne(ctx, r.db, q, []any{
		id, cmd.ZipCodePrefix, cmd.City, cmd.State,
	}, scanSeller)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Info("seller not found for update", "id", id)
			return nil, nil
		}
		r.logger.Error("update seller failed", "id", id, "error", err)
		return nil, err
	}

	r.logger.Info("seller updated", "id", seller.ID)
	return &seller, nil
}

func (r *repo) Delete(ctx context.Context, id string) (int64, error) {
	q := `DELETE FROM sellers WHERE seller_id = $1`

	rows, err := repository.ExecRowsAffected(ctx, r.db, q, id)
	if err != nil {
		r.logger.Error("delete seller failed", "id", id, "error", err)
		return 0, err
	}

	if rows > 0 {
		r.logger.Info("seller deleted", "id", id)
	}
	return rows, nil
}
