package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/docker/go-units"

	"github.com/storefront-labs/olist-api/internal/bulkload"
	"github.com/storefront-labs/olist-api/internal/customers"
	"github.com/storefront-labs/olist-api/internal/orders"
	"github.com/storefront-labs/olist-api/internal/sellers"
	"github.com/storefront-labs/olist-api/pkg/logging"
)

// countingReader tracks how many bytes the loader has consumed so the
// final report can state the processed volume.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func main() {
	var (
		file    = flag.String("file", "", "path to the CSV file to load")
		entity  = flag.String("entity", "", "target entity: customers, sellers, or orders")
		target  = flag.String("target", "http://localhost:3000", "base URL of a running server")
		header  = flag.Bool("header", true, "skip the first row as a header")
		timeout = flag.Duration("timeout", 30*time.Minute, "overall load timeout")
	)
	flag.Parse()

	logger := logging.New(&logging.Config{
		Level:  logging.LevelInfo,
		Format: logging.FormatText,
	})

	if *file == "" || *entity == "" {
		flag.Usage()
		os.Exit(2)
	}

	source, err := os.Open(*file)
	if err != nil {
		logger.Error("failed to open source", "file", *file, "error", err)
		os.Exit(1)
	}
	defer source.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := &http.Client{Timeout: 30 * time.Second}
	base := strings.TrimSuffix(*target, "/")
	counted := &countingReader{r: source}

	var report bulkload.Report

	switch *entity {
	case "customers":
		loader := bulkload.NewLoader(
			customers.DecodeRecord,
			bulkload.HTTPSubmitter[customers.CreateCommand](client, base+"/customers"),
			*header,
			logger,
		)
		report, err = loader.Load(ctx, counted)
	case "sellers":
		loader := bulkload.NewLoader(
			sellers.DecodeRecord,
			bulkload.HTTPSubmitter[sellers.CreateCommand](client, base+"/sellers"),
			*header,
			logger,
		)
		report, err = loader.Load(ctx, counted)
	case "orders":
		loader := bulkload.NewLoader(
			orders.DecodeRecord,
			bulkload.HTTPSubmitter[orders.CreateCommand](client, base+"/orders"),
			*header,
			logger,
		)
		report, err = loader.Load(ctx, counted)
	default:
		logger.Error("unknown entity", "entity", *entity)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("load aborted", "error", err)
		os.Exit(1)
	}

	fmt.Printf(
		"loaded %s: %d succeeded, %d failed (%s processed)\n",
		*entity, report.Succeeded, report.Failed, units.HumanSize(float64(counted.n)),
	)
}
