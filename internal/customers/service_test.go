package customers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/storefront-labs/olist-api/internal/customers"
	"github.com/storefront-labs/olist-api/pkg/pagination"
	"github.com/storefront-labs/olist-api/pkg/validation"
)

// fakeRepo counts every call so tests can prove short-circuit behavior.
type fakeRepo struct {
	calls int

	createResult *customers.Customer
	createErr    error
	listResult   []customers.Customer
	listTotal    int64
	findResult   *customers.Customer
	findErr      error
	updateResult *customers.Customer
	deleteRows   int64
}

func (f *fakeRepo) Create(ctx context.Context, cmd customers.CreateCommand) (*customers.Customer, error) {
	f.calls++
	return f.createResult, f.createErr
}

func (f *fakeRepo) List(ctx context.Context, page pagination.PageRequest, filters customers.Filters) ([]customers.Customer, int64, error) {
	f.calls++
	return f.listResult, f.listTotal, nil
}

func (f *fakeRepo) Find(ctx context.Context, id string) (*customers.Customer, error) {
	f.calls++
	return f.findResult, f.findErr
}

func (f *fakeRepo) Update(ctx context.Context, id string, cmd customers.UpdateCommand) (*customers.Customer, error) {
	f.calls++
	return f.updateResult, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) (int64, error) {
	f.calls++
	return f.deleteRows, nil
}

func newService(repo customers.Repository) customers.System {
	return customers.NewService(repo, validation.New(), pagination.Config{
		DefaultPageSize: 10,
		MaxPageSize:     100,
	})
}

func validCreate() customers.CreateCommand {
	return customers.CreateCommand{
		ID:            "c1",
		UniqueID:      "u1",
		ZipCodePrefix: "01310",
		City:          "sao paulo",
		State:         "SP",
	}
}

func TestService_Create_Valid(t *testing.T) {
	want := customers.Customer{ID: "c1"}
	repo := &fakeRepo{createResult: &want}
	svc := newService(repo)

	got, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.ID != want.ID {
		t.Errorf("ID = %q, want %q", got.ID, want.ID)
	}
	if repo.calls != 1 {
		t.Errorf("repository calls = %d, want 1", repo.calls)
	}
}

func TestService_Create_InvalidSkipsRepository(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cmd *customers.CreateCommand)
	}{
		{
			name:   "missing id",
			mutate: func(cmd *customers.CreateCommand) { cmd.ID = "" },
		},
		{
			name:   "short zip",
			mutate: func(cmd *customers.CreateCommand) { cmd.ZipCodePrefix = "123" },
		},
		{
			name:   "three character state",
			mutate: func(cmd *customers.CreateCommand) { cmd.State = "SPX" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := newService(repo)

			cmd := validCreate()
			tt.mutate(&cmd)

			_, err := svc.Create(context.Background(), cmd)

			var vErr *validation.Error
			if !errors.As(err, &vErr) {
				t.Fatalf("error type = %T, want *validation.Error", err)
			}
			if repo.calls != 0 {
				t.Errorf("repository calls = %d, want 0", repo.calls)
			}
		})
	}
}

func TestService_Update_EmptyPatchShortCircuits(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo)

	_, err := svc.Update(context.Background(), "c1", customers.UpdateCommand{})

	if !errors.Is(err, customers.ErrNoChanges) {
		t.Errorf("Update() error = %v, want ErrNoChanges", err)
	}
	if repo.calls != 0 {
		t.Errorf("repository calls = %d, want 0", repo.calls)
	}
}

func TestService_Update_AbsentRowIsNotFound(t *testing.T) {
	repo := &fakeRepo{updateResult: nil}
	svc := newService(repo)

	city := "campinas"
	_, err := svc.Update(context.Background(), "missing", customers.UpdateCommand{City: &city})

	if !errors.Is(err, customers.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
	if repo.calls != 1 {
		t.Errorf("repository calls = %d, want 1", repo.calls)
	}
}

func TestService_Get_AbsentRowIsNotFound(t *testing.T) {
	svc := newService(&fakeRepo{findResult: nil})

	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, customers.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestService_Delete_ZeroRowsIsNotFound(t *testing.T) {
	svc := newService(&fakeRepo{deleteRows: 0})

	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, customers.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestService_Delete_Idempotent(t *testing.T) {
	repo := &fakeRepo{deleteRows: 1}
	svc := newService(repo)

	if err := svc.Delete(context.Background(), "c1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	repo.deleteRows = 0
	err := svc.Delete(context.Background(), "c1")
	if !errors.Is(err, customers.ErrNotFound) {
		t.Errorf("repeated Delete() error = %v, want ErrNotFound", err)
	}
}

func TestService_List_WrapsPageResult(t *testing.T) {
	repo := &fakeRepo{
		listResult: make([]customers.Customer, 5),
		listTotal:  12,
	}
	svc := newService(repo)

	result, err := svc.List(context.Background(), pagination.PageRequest{Page: 2, PageSize: 5}, customers.Filters{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(result.Data) != 5 {
		t.Errorf("len(Data) = %d, want 5", len(result.Data))
	}
	if result.Meta.TotalRecords != 12 {
		t.Errorf("TotalRecords = %d, want 12", result.Meta.TotalRecords)
	}
	if result.Meta.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", result.Meta.TotalPages)
	}
	if result.Meta.Page != 2 {
		t.Errorf("Page = %d, want 2", result.Meta.Page)
	}
}

func TestService_List_NormalizesPageRequest(t *testing.T) {
	repo := &fakeRepo{listResult: []customers.Customer{}, listTotal: 0}
	svc := newService(repo)

	result, err := svc.List(context.Background(), pagination.PageRequest{Page: 0, PageSize: 1000}, customers.Filters{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if result.Meta.Page != 1 {
		t.Errorf("Page = %d, want 1", result.Meta.Page)
	}
	if result.Meta.PageSize != 100 {
		t.Errorf("PageSize = %d, want 100", result.Meta.PageSize)
	}
	if result.Meta.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1 for empty set", result.Meta.TotalPages)
	}
}
