package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storefront-labs/olist-api/internal/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSystem_WrapOrder(t *testing.T) {
	var order []string

	tag := func(name string) middleware.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	mw := middleware.New()
	mw.Use(tag("first"))
	mw.Use(tag("second"))

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	mw.Wrap(okHandler()).ServeHTTP(rec, req)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("execution order = %v, want [first second]", order)
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		cfg        middleware.CORSConfig
		origin     string
		wantOrigin string
	}{
		{
			name: "disabled sets no headers",
			cfg: middleware.CORSConfig{
				Enabled: false,
				Origins: []string{"*"},
			},
			origin:     "https://example.com",
			wantOrigin: "",
		},
		{
			name: "wildcard allows any origin",
			cfg: middleware.CORSConfig{
				Enabled: true,
				Origins: []string{"*"},
			},
			origin:     "https://example.com",
			wantOrigin: "*",
		},
		{
			name: "listed origin echoed",
			cfg: middleware.CORSConfig{
				Enabled: true,
				Origins: []string{"https://app.example.com"},
			},
			origin:     "https://app.example.com",
			wantOrigin: "https://app.example.com",
		},
		{
			name: "unlisted origin not allowed",
			cfg: middleware.CORSConfig{
				Enabled: true,
				Origins: []string{"https://app.example.com"},
			},
			origin:     "https://evil.example.com",
			wantOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CORS(&tt.cfg)(okHandler())

			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	cfg := middleware.CORSConfig{
		Enabled:        true,
		Origins:        []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		MaxAge:         300,
	}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest("OPTIONS", "/customers", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	middleware.CORS(&cfg)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if called {
		t.Error("preflight should not reach the next handler")
	}
	if got := rec.Header().Get("Access-Control-Max-Age"); got != "300" {
		t.Errorf("Access-Control-Max-Age = %q, want 300", got)
	}
}

func TestRequestID(t *testing.T) {
	handler := middleware.RequestID()(okHandler())

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Header().Get(middleware.RequestIDHeader) == "" {
			t.Error("request id should be assigned")
		}
	})

	t.Run("client id preserved", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "client-supplied")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get(middleware.RequestIDHeader); got != "client-supplied" {
			t.Errorf("request id = %q, want client-supplied", got)
		}
	})
}

func TestTrimSlash(t *testing.T) {
	handler := middleware.TrimSlash()(okHandler())

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{
			name:       "canonical path passes through",
			path:       "/customers",
			wantStatus: http.StatusOK,
		},
		{
			name:         "trailing slash redirects",
			path:         "/customers/",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "/customers",
		},
		{
			name:       "root preserved",
			path:       "/",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" {
				if got := rec.Header().Get("Location"); got != tt.wantLocation {
					t.Errorf("Location = %q, want %q", got, tt.wantLocation)
				}
			}
		})
	}
}
