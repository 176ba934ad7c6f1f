// Package bulkload replays CSV rows through an entity creation path with
// row-level partial-failure accounting. A malformed or rejected row counts
// against the report and never aborts the run.
package bulkload

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Decoder converts a raw CSV record into an entity creation command.
type Decoder[T any] func(record []string) (T, error)

// Submitter delivers a decoded command to a creation endpoint. An error
// return marks the row as failed.
type Submitter[T any] func(ctx context.Context, cmd T) error

// Report accumulates per-row outcomes for a single load run.
type Report struct {
	Succeeded int `json:"success_count"`
	Failed    int `json:"error_count"`
}

// Loader streams CSV rows through decode and submit, one record at a time.
type Loader[T any] struct {
	decode     Decoder[T]
	submit     Submitter[T]
	skipHeader bool
	logger     *slog.Logger
}

// NewLoader creates a Loader for the given decode and submit pair. When
// skipHeader is set the first record is discarded.
func NewLoader[T any](decode Decoder[T], submit Submitter[T], skipHeader bool, logger *slog.Logger) *Loader[T] {
	return &Loader[T]{
		decode:     decode,
		submit:     submit,
		skipHeader: skipHeader,
		logger:     logger.With("system", "bulkload"),
	}
}

// Load consumes the CSV stream until exhaustion and returns the row
// accounting. The only fatal errors are context cancellation and a reader
// failure that is not a per-record parse problem; everything row-scoped
// increments Failed and moves on.
func (l *Loader[T]) Load(ctx context.Context, source io.Reader) (Report, error) {
	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1

	var report Report
	row := 0

	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				row++
				// A discarded header row never counts against the report,
				// malformed or not.
				if row == 1 && l.skipHeader {
					continue
				}
				report.Failed++
				l.logger.Warn("malformed row", "row", row, "error", err)
				continue
			}
			return report, fmt.Errorf("read source: %w", err)
		}

		row++
		if row == 1 && l.skipHeader {
			continue
		}

		cmd, err := l.decode(record)
		if err != nil {
			report.Failed++
			l.logger.Warn("row decode failed", "row", row, "error", err)
			continue
		}

		if err := l.submit(ctx, cmd); err != nil {
			report.Failed++
			l.logger.Warn("row submit failed", "row", row, "error", err)
			continue
		}

		report.Succeeded++
	}

	l.logger.Info("load complete", "succeeded", report.Succeeded, "failed", report.Failed)
	return report, nil
}
