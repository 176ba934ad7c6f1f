package query_test

import (
	"reflect"
	"testing"

	"github.com/storefront-labs/olist-api/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "customers", "c").
		Project("customer_id", "ID").
		Project("customer_city", "City").
		Project("customer_state", "State").
		Project("created_at", "CreatedAt")
}

func testSort() query.SortField {
	return query.SortField{Field: "CreatedAt", Descending: true}
}

func TestBuilder_BuildCount(t *testing.T) {
	tests := []struct {
		name     string
		build    func(b *query.Builder)
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "no conditions",
			build:    func(b *query.Builder) {},
			wantSQL:  "SELECT COUNT(*) FROM public.customers c",
			wantArgs: nil,
		},
		{
			name: "single equality",
			build: func(b *query.Builder) {
				b.WhereEquals("City", "sao paulo")
			},
			wantSQL:  "SELECT COUNT(*) FROM public.customers c WHERE c.customer_city = $1",
			wantArgs: []any{"sao paulo"},
		},
		{
			name: "conditions are anded with renumbered params",
			build: func(b *query.Builder) {
				b.WhereEquals("City", "sao paulo")
				b.WhereEquals("State", "SP")
			},
			wantSQL:  "SELECT COUNT(*) FROM public.customers c WHERE c.customer_city = $1 AND c.customer_state = $2",
			wantArgs: []any{"sao paulo", "SP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(testProjection(), testSort())
			tt.build(b)

			sql, args := b.BuildCount()
			if sql != tt.wantSQL {
				t.Errorf("sql = %q, want %q", sql, tt.wantSQL)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	b := query.NewBuilder(testProjection(), testSort())
	b.WhereEquals("State", "SP")

	sql, args := b.BuildPage(3, 25)

	want := "SELECT c.customer_id, c.customer_city, c.customer_state, c.created_at " +
		"FROM public.customers c WHERE c.customer_state = $1 " +
		"ORDER BY c.created_at DESC LIMIT 25 OFFSET 50"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"SP"}) {
		t.Errorf("args = %v, want [SP]", args)
	}
}

func TestBuilder_BuildPage_DefaultSort(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "ID"})

	sql, _ := b.BuildPage(1, 10)

	want := "SELECT c.customer_id, c.customer_city, c.customer_state, c.created_at " +
		"FROM public.customers c ORDER BY c.customer_id ASC LIMIT 10 OFFSET 0"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestBuilder_BuildPage_ExplicitSortOverridesDefault(t *testing.T) {
	b := query.NewBuilder(testProjection(), testSort())
	b.OrderBy("City", false)

	sql, _ := b.BuildPage(1, 10)

	want := "SELECT c.customer_id, c.customer_city, c.customer_state, c.created_at " +
		"FROM public.customers c ORDER BY c.customer_city ASC LIMIT 10 OFFSET 0"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	b := query.NewBuilder(testProjection(), testSort())

	sql, args := b.BuildSingle("ID", "abc123")

	want := "SELECT c.customer_id, c.customer_city, c.customer_state, c.created_at " +
		"FROM public.customers c WHERE c.customer_id = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"abc123"}) {
		t.Errorf("args = %v, want [abc123]", args)
	}
}

func TestBuilder_WhereContains(t *testing.T) {
	b := query.NewBuilder(testProjection(), testSort())
	city := "campinas"
	b.WhereContains("City", &city)

	sql, args := b.BuildCount()

	want := "SELECT COUNT(*) FROM public.customers c WHERE c.customer_city ILIKE $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"%campinas%"}) {
		t.Errorf("args = %v, want [%%campinas%%]", args)
	}
}

func TestBuilder_NilValuesIgnored(t *testing.T) {
	b := query.NewBuilder(testProjection(), testSort())
	b.WhereEquals("City", nil)
	b.WhereContains("State", nil)

	sql, args := b.BuildCount()

	if sql != "SELECT COUNT(*) FROM public.customers c" {
		t.Errorf("sql = %q, want no WHERE clause", sql)
	}
	if args != nil {
		t.Errorf("args = %v, want nil", args)
	}
}

func TestProjectionMap_UnregisteredFieldPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unregistered field")
		}
	}()

	testProjection().Column("Missing")
}
