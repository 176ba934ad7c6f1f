package orders

import (
	"errors"
	"net/http"

	"github.com/storefront-labs/olist-api/pkg/validation"
)

// Domain errors for order operations.
var (
	ErrNotFound  = errors.New("order not found")
	ErrDuplicate = errors.New("order already exists")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}

	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
