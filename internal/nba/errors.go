package nba

import (
	"errors"
	"fmt"
)

// FeedError represents a failure talking to or understanding the stats
// provider. Every feed error is fatal for the current run: the pipeline
// never retries and never renders from partial data.
type FeedError struct {
	// Code identifies the error category.
	Code FeedErrorCode

	// URL is the request that failed.
	URL string

	// Status is the HTTP status code, when the response arrived at all.
	Status int

	// Err is the underlying cause.
	Err error
}

// FeedErrorCode categorizes feed errors.
type FeedErrorCode string

const (
	// ErrCodeDataFetch indicates a network or HTTP failure.
	ErrCodeDataFetch FeedErrorCode = "DATA_FETCH"

	// ErrCodeMalformedData indicates a response that did not decode into
	// the expected shape.
	ErrCodeMalformedData FeedErrorCode = "MALFORMED_DATA"
)

// Error implements the error interface.
func (e *FeedError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status=%d): %v", e.Code, e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.URL, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *FeedError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err is a network/HTTP feed failure.
func IsFetchError(err error) bool {
	var fe *FeedError
	return errors.As(err, &fe) && fe.Code == ErrCodeDataFetch
}

// IsMalformedDataError reports whether err is a feed shape failure.
func IsMalformedDataError(err error) bool {
	var fe *FeedError
	return errors.As(err, &fe) && fe.Code == ErrCodeMalformedData
}

func newFetchError(url string, status int, err error) *FeedError {
	return &FeedError{Code: ErrCodeDataFetch, URL: url, Status: status, Err: err}
}

func newMalformedError(url string, err error) *FeedError {
	return &FeedError{Code: ErrCodeMalformedData, URL: url, Err: err}
}
