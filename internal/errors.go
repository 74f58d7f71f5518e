package internal

import (
	"errors"
	"fmt"
)

var (
	ErrDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrValidation = errors.New("validation error")

	ErrMalformedRecord = errors.New("sales record is missing a required field")
	ErrNoRecords       = errors.New("no records")

	ErrStorageUnavailable = errors.New("storage connectivity check failed")
	ErrNoLocations        = errors.New("no locations to process")
)

// APIError is returned for transport failures and non-2xx responses from
// the Square API. Pagination aborts at the failing page; there is no retry.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("square api error: status %d: %s", e.StatusCode, e.Body)
}
