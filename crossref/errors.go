package crossref

import (
	"errors"
	"fmt"
)

// Common errors returned by the Crossref client.
var (
	// ErrNotFound indicates the DOI is not registered with Crossref.
	ErrNotFound = errors.New("DOI not found in Crossref")

	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("Crossref rate limit exceeded")

	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error communicating with Crossref")

	// ErrInvalidResponse indicates an unexpected or unparseable response.
	ErrInvalidResponse = errors.New("invalid response from Crossref")
)

// APIError represents an error response from the Crossref API.
type APIError struct {
	StatusCode int
	DOI        string
	Message    string
}

func (e *APIError) Error() string {
	if e.DOI != "" {
		return fmt.Sprintf("Crossref API error (status %d): %s (doi: %s)", e.StatusCode, e.Message, e.DOI)
	}
	return fmt.Sprintf("Crossref API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound returns true if the error indicates the DOI was not found.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsInvalidResponse returns true if the error indicates the response body
// was malformed or unexpected.
func IsInvalidResponse(err error) bool {
	return errors.Is(err, ErrInvalidResponse)
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}
