package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrUnauthorized is returned on a 401. The stored credentials have
	// already been cleared by the time callers see this.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned on a 403.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned on a 404.
	ErrNotFound = errors.New("not found")
)

// APIError is an error response from the StitchDesk backend. The adapter
// handles 401 and 403 side effects itself; everything else is surfaced to the
// calling page unmodified so it can decide between an inline message, an
// alert, or ignoring the failure.
type APIError struct {
	StatusCode int
	ErrorClass ErrorClass
	Message    string
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("stitchdesk %s error (status %d): %s",
			e.ErrorClass, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("stitchdesk %s error (status %d)", e.ErrorClass, e.StatusCode)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// errorBody is the union of the backend's error payload shapes. Endpoints
// variously use "error", "message" and "detail".
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// parseErrorMessage extracts the most specific human-readable message from an
// error response body. Returns "" for bodies that are not JSON objects.
func parseErrorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	switch {
	case eb.Message != "":
		return eb.Message
	case eb.Error != "":
		return eb.Error
	default:
		return eb.Detail
	}
}
