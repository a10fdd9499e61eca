package bookingapi

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// APIError is a non-2xx response from the booking API. Body holds the raw
// (truncated) response text for logging; it is never rendered to users.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("booking api: status %d", e.Status)
	}
	return fmt.Sprintf("booking api: status %d: %s", e.Status, e.Body)
}

// statusOf extracts an HTTP status from an error chain, covering both this
// client's APIError and oauth2's token retrieval errors. Returns 0 for
// transport-level failures.
func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		return retrieveErr.Response.StatusCode
	}
	return 0
}

// IsAuthFailure reports whether the API rejected the caller's credentials
// or token (401/403).
func IsAuthFailure(err error) bool {
	status := statusOf(err)
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

// IsNotFoundOrConflict reports whether the request targeted a missing or
// conflicting resource, e.g. deleting an event that no longer exists.
func IsNotFoundOrConflict(err error) bool {
	status := statusOf(err)
	return status == http.StatusNotFound || status == http.StatusConflict
}

// IsValidationFailure reports whether the API rejected the request body.
func IsValidationFailure(err error) bool {
	status := statusOf(err)
	return status == http.StatusBadRequest || status == http.StatusUnprocessableEntity
}
