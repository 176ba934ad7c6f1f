package pagination

import (
	"net/url"
	"strconv"
)

// PageRequest represents a client request for a page of data.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize adjusts the request to ensure valid pagination values based on
// the config. A zero PageSize means "not supplied" and takes the configured
// default; out-of-range values clamp to [1, MaxPageSize].
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize == 0 {
		r.PageSize = cfg.DefaultPageSize
	}
	if r.PageSize < 1 {
		r.PageSize = 1
	}
	if r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
}

// Limit returns the row window size.
func (r PageRequest) Limit() int {
	return r.PageSize
}

// Offset calculates the number of records to skip based on page and page size.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageRequestFromQuery parses pagination parameters from URL query values.
// Supported parameters: page, page_size. An explicitly supplied numeric
// page_size below 1 clamps to 1 rather than falling back to the default, so
// "?page_size=0" requests the smallest window instead of the default one.
// A value that does not parse as an integer is treated as absent. The
// result is normalized according to the provided config.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	page, _ := strconv.Atoi(values.Get("page"))

	req := PageRequest{Page: page}
	if values.Has("page_size") {
		if size, err := strconv.Atoi(values.Get("page_size")); err == nil {
			if size < 1 {
				size = 1
			}
			req.PageSize = size
		}
	}

	req.Normalize(cfg)
	return req
}

// PageMeta describes the full result set a page was drawn from.
type PageMeta struct {
	TotalRecords int64 `json:"total_records"`
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	TotalPages   int   `json:"total_pages"`
}

// PageResult holds a page of data along with pagination metadata.
type PageResult[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// NewPageResult creates a PageResult with calculated total pages. An empty
// result set still reports one page.
func NewPageResult[T any](data []T, total int64, page, pageSize int) PageResult[T] {
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data: data,
		Meta: PageMeta{
			TotalRecords: total,
			Page:         page,
			PageSize:     pageSize,
			TotalPages:   totalPages,
		},
	}
}
