package bulkload_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/storefront-labs/olist-api/internal/bulkload"
)

type row struct {
	ID   string
	Name string
}

func decodeRow(record []string) (row, error) {
	if len(record) < 2 {
		return row{}, errors.New("expected 2 columns")
	}
	if record[0] == "" {
		return row{}, errors.New("missing id")
	}
	return row{ID: record[0], Name: record[1]}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoader_PartialFailure(t *testing.T) {
	// Row 2 fails decode; the remaining rows still load.
	source := strings.NewReader(
		"a1,alpha\n" +
			",broken\n" +
			"c3,gamma\n" +
			"d4,delta\n")

	var submitted []row
	submit := func(ctx context.Context, r row) error {
		submitted = append(submitted, r)
		return nil
	}

	loader := bulkload.NewLoader(decodeRow, submit, false, discardLogger())
	report, err := loader.Load(context.Background(), source)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if report.Succeeded != 3 {
		t.Errorf("Succeeded = %d, want 3", report.Succeeded)
	}
	if report.Failed != 1 {
		t.Errorf("Failed = %d, want 1", report.Failed)
	}
	if len(submitted) != 3 {
		t.Errorf("submitted rows = %d, want 3", len(submitted))
	}
}

func TestLoader_SkipHeader(t *testing.T) {
	source := strings.NewReader(
		"id,name\n" +
			"a1,alpha\n")

	var submitted []row
	submit := func(ctx context.Context, r row) error {
		submitted = append(submitted, r)
		return nil
	}

	loader := bulkload.NewLoader(decodeRow, submit, true, discardLogger())
	report, err := loader.Load(context.Background(), source)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if report.Succeeded != 1 || report.Failed != 0 {
		t.Errorf("report = %+v, want 1 succeeded 0 failed", report)
	}
	if len(submitted) != 1 || submitted[0].ID != "a1" {
		t.Errorf("submitted = %v, header row should be skipped", submitted)
	}
}

func TestLoader_MalformedHeaderDiscarded(t *testing.T) {
	// The bare quote makes row 1 unparseable; a skipped header is
	// discarded either way, so it must not count as a failure.
	source := strings.NewReader(
		"id\",name\n" +
			"a1,alpha\n")

	var submitted []row
	submit := func(ctx context.Context, r row) error {
		submitted = append(submitted, r)
		return nil
	}

	loader := bulkload.NewLoader(decodeRow, submit, true, discardLogger())
	report, err := loader.Load(context.Background(), source)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if report.Succeeded != 1 || report.Failed != 0 {
		t.Errorf("report = %+v, want 1 succeeded 0 failed", report)
	}
	if len(submitted) != 1 || submitted[0].ID != "a1" {
		t.Errorf("submitted = %v, malformed header should be discarded", submitted)
	}
}

func TestLoader_MalformedDataRowCounted(t *testing.T) {
	source := strings.NewReader(
		"id,name\n" +
			"a1\",alpha\n" +
			"b2,beta\n")

	loader := bulkload.NewLoader(decodeRow, func(ctx context.Context, r row) error {
		return nil
	}, true, discardLogger())

	report, err := loader.Load(context.Background(), source)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if report.Succeeded != 1 || report.Failed != 1 {
		t.Errorf("report = %+v, want 1 succeeded 1 failed", report)
	}
}

func TestLoader_SubmitFailureCountsRow(t *testing.T) {
	source := strings.NewReader(
		"a1,alpha\n" +
			"b2,beta\n")

	submit := func(ctx context.Context, r row) error {
		if r.ID == "b2" {
			return errors.New("conflict")
		}
		return nil
	}

	loader := bulkload.NewLoader(decodeRow, submit, false, discardLogger())
	report, err := loader.Load(context.Background(), source)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if report.Succeeded != 1 || report.Failed != 1 {
		t.Errorf("report = %+v, want 1 succeeded 1 failed", report)
	}
}

func TestLoader_EmptySource(t *testing.T) {
	loader := bulkload.NewLoader(decodeRow, func(ctx context.Context, r row) error {
		return nil
	}, true, discardLogger())

	report, err := loader.Load(context.Background(), strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if report.Succeeded != 0 || report.Failed != 0 {
		t.Errorf("report = %+v, want empty report", report)
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := bulkload.NewLoader(decodeRow, func(ctx context.Context, r row) error {
		return nil
	}, false, discardLogger())

	_, err := loader.Load(ctx, strings.NewReader("a1,alpha\n"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestHTTPSubmitter(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{
			name:   "created",
			status: http.StatusCreated,
		},
		{
			name:    "conflict",
			status:  http.StatusConflict,
			wantErr: true,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("method = %s, want POST", r.Method)
				}
				if ct := r.Header.Get("Content-Type"); ct != "application/json" {
					t.Errorf("content type = %q, want application/json", ct)
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			submit := bulkload.HTTPSubmitter[row](srv.Client(), srv.URL)
			err := submit(context.Background(), row{ID: "a1", Name: "alpha"})

			if tt.wantErr && err == nil {
				t.Error("expected submit error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("submit error = %v", err)
			}
		})
	}
}

func TestSystemSubmitter(t *testing.T) {
	type entity struct{ ID string }

	create := func(ctx context.Context, r row) (*entity, error) {
		if r.ID == "bad" {
			return nil, errors.New("rejected")
		}
		return &entity{ID: r.ID}, nil
	}

	submit := bulkload.SystemSubmitter(create)

	if err := submit(context.Background(), row{ID: "a1"}); err != nil {
		t.Errorf("submit error = %v", err)
	}
	if err := submit(context.Background(), row{ID: "bad"}); err == nil {
		t.Error("expected submit error")
	}
}
