package customers

import (
	"errors"
	"net/http"

	"github.com/storefront-labs/olist-api/pkg/validation"
)

// Domain errors for customer operations.
var (
	ErrNotFound  = errors.New("customer not found")
	ErrDuplicate = errors.New("customer already exists")
	ErrNoChanges = errors.New("no valid fields provided for update")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrNoChanges) {
		return http.StatusBadRequest
	}

	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
