package utils

import "errors"

// Common application errors used across services.
var (
	ErrUnsupportedCity = errors.New("UNSUPPORTED_CITY")
	ErrProductNotFound = errors.New("PRODUCT_NOT_FOUND")
	ErrLookupFailed    = errors.New("LOOKUP_FAILED")
	ErrScanNotFound    = errors.New("SCAN_NOT_FOUND")
	ErrInvalidPeriod   = errors.New("INVALID_PERIOD")
)
