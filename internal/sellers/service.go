package sellers

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

// NewService creates the seller system over the given repository.
func NewService(repo Repository, validator *validation.Validator, pages pagination.Config) System {
	return &service{
		repo:      repo,
		validator: validator,
		pages:     pages,
	}
}

func (s *service) Create(ctx context.Context, cmd CreateCommand) (*Seller, error) {
	if err := s.validator.Struct(cmd); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, cmd)
}

func (s *service) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Seller], error) {
	page.Normalize(s.pages)

	items, total, err := s.repo.List(ctx, page, filters)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (s *service) Get(ctx context.Context, id string) (*Seller, error) {
	seller, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, ErrNotFound
	}
	return seller, nil
}

// Update rejects an empty patch before touching the store.
func (s *service) Update(ctx context.Context, id string, cmd UpdateCommand) (*Seller, error) {
	if cmd.Empty() {
		return nil, ErrNoChanges
	}
	if err := s.validator.Struct(cmd); err != nil {
		return nil, err
	}

	seller, err := s.repo.Update(ctx, id, cmd)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, ErrNotFound
	}
	return seller, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
