package main

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/storefront-labs/olist-api/internal/bulkload"
	"github.com/storefront-labs/olist-api/internal/config"
	"github.com/storefront-labs/olist-api/internal/customers"
	"github.com/storefront-labs/olist-api/internal/middleware"
	"github.com/storefront-labs/olist-api/internal/orders"
	"github.com/storefront-labs/olist-api/internal/routes"
	"github.com/storefront-labs/olist-api/internal/sellers"
	pkgroutes "github.com/storefront-labs/olist-api/pkg/routes"
	"github.com/storefront-labs/olist-api/pkg/validation"
)

// buildHandler wires repositories, services, handlers, bulk loaders, and
// the middleware stack into the server's root handler.
func buildHandler(cfg *config.Config, db *sql.DB, logger *slog.Logger) http.Handler {
	validator := validation.New()

	customerSys := customers.NewService(customers.NewRepository(db, logger), validator, cfg.Pagination)
	sellerSys := sellers.NewService(sellers.NewRepository(db, logger), validator, cfg.Pagination)
	orderSys := orders.NewService(orders.NewRepository(db, logger), validator, cfg.Pagination)

	customerHandler := customers.NewHandler(customerSys, logger, cfg.Pagination)
	sellerHandler := sellers.NewHandler(sellerSys, logger, cfg.Pagination)
	orderHandler := orders.NewHandler(orderSys, logger, cfg.Pagination)

	router := routes.New(logger)
	router.RegisterGroup(customerHandler.Routes())
	router.RegisterGroup(sellerHandler.Routes())
	router.RegisterGroup(orderHandler.Routes())
	router.RegisterGroup(orderHandler.CustomerRoutes())
	router.RegisterGroup(loadRoutes(cfg, logger, customerSys, sellerSys, orderSys))
	router.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: healthz,
	})

	mw := middleware.New()
	mw.Use(middleware.RequestID())
	mw.Use(middleware.Logger(logger))
	mw.Use(middleware.CORS(&cfg.CORS))
	mw.Use(middleware.TrimSlash())

	return mw.Wrap(router.Build())
}

// loadRoutes builds the bulk-load endpoints. Uploaded CSVs are replayed
// through the same creation path the direct endpoints use, with dataset
// header rows skipped.
func loadRoutes(
	cfg *config.Config,
	logger *slog.Logger,
	customerSys customers.System,
	sellerSys sellers.System,
	orderSys orders.System,
) pkgroutes.Group {
	maxBytes := cfg.Loader.MaxUploadSizeBytes()

	customerLoader := bulkload.NewLoader(
		customers.DecodeRecord,
		bulkload.SystemSubmitter(customerSys.Create),
		true,
		logger,
	)
	sellerLoader := bulkload.NewLoader(
		sellers.DecodeRecord,
		bulkload.SystemSubmitter(sellerSys.Create),
		true,
		logger,
	)
	orderLoader := bulkload.NewLoader(
		orders.DecodeRecord,
		bulkload.SystemSubmitter(orderSys.Create),
		true,
		logger,
	)

	return pkgroutes.Group{
		Routes: []pkgroutes.Route{
			{Method: "POST", Pattern: "/load-customers", Handler: bulkload.UploadHandler(customerLoader, logger, maxBytes)},
			{Method: "POST", Pattern: "/load-sellers", Handler: bulkload.UploadHandler(sellerLoader, logger, maxBytes)},
			{Method: "POST", Pattern: "/load-orders", Handler: bulkload.UploadHandler(orderLoader, logger, maxBytes)},
		},
	}
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
