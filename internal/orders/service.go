package orders

import (
	"context"

	"github.com/storefront-labs/olist-api/pkg/pagination"
	"github.com/storefront-labs/olist-api/pkg/validation"
)

type service struct {
	repo      Repository
	validator *validation.Validator
	pages     pagination.Config
}

// NewService creates the order system over the given repository.
func NewService(repo Repository, validator *validation.Validator, pages pagination.Config) System {
	return &service{
		repo:      repo,
		validator: validator,
		pages:     pages,
	}
}

func (s *service) Create(ctx context.Context, cmd CreateCommand) (*Order, error) {
	if err := s.validator.Struct(cmd); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, cmd)
}

func (s *service) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Order], error) {
	page.Normalize(s.pages)

	items, total, err := s.repo.List(ctx, page, filters)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (s *service) ListByCustomer(ctx context.Context, customerID string, page pagination.PageRequest) (*pagination.PageResult[Order], error) {
	page.Normalize(s.pages)

	items, total, err := s.repo.ListByCustomer(ctx, customerID, page)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (s *service) Get(ctx context.Context, id string) (*Order, error) {
	order, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}
