package reddit

import (
	"errors"
	"fmt"
)

// RequestError represents a failed forum API call. Like stats feed errors,
// forum errors are fatal for the run; the next scheduled invocation retries
// from scratch.
type RequestError struct {
	// Op names the API operation that failed.
	Op string

	// Status is the HTTP status code, when a response arrived.
	Status int

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("DATA_FETCH: reddit %s (status=%d): %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("DATA_FETCH: reddit %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsRequestError reports whether err is a forum API failure.
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}
