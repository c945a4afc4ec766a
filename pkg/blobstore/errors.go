package blobstore

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound indicates the requested blob does not exist.
	ErrNotFound = errors.New("blob not found")
	// ErrEmptyKey indicates an empty blob key was provided.
	ErrEmptyKey = errors.New("blob key must not be empty")
	// ErrInvalidKey indicates the blob key contains a path traversal segment.
	ErrInvalidKey = errors.New("blob key contains invalid path segment")
)

// MapHTTPStatus maps blob store errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrEmptyKey) || errors.Is(err, ErrInvalidKey) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
