package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrTooManyRetries is returned when a scrape request keeps failing after
// its retry budget is exhausted.
var ErrTooManyRetries = errors.New("too many retries")

// ErrBadPage is returned when LinkedIn serves a structurally valid page
// with the job content missing. That is how the guest API signals rate
// limiting without a 429, so callers treat it as retryable.
var ErrBadPage = errors.New("page missing expected job content")

// HTTPError wraps an HTTP status code so retry logic can inspect it.
type HTTPError struct {
	StatusCode int
	RetryAfter time.Duration // from Retry-After header, zero if absent
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}
