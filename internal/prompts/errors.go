package prompts

import (
	"errors"
	"net/http"
)

// Domain errors for prompt registry operations.
var (
	ErrNotFound         = errors.New("prompt not found")
	ErrNoActive         = errors.New("no active prompt for category")
	ErrInvalidCategory  = errors.New("category must be analysis, negotiation, summary, or custom")
	ErrCategoryConflict = errors.New("category has more than one active prompt")
)

// MapHTTPStatus maps prompt domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrNoActive) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidCategory) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
