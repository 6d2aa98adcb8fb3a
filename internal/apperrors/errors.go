package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// It is returned both when a transaction does not exist and when it
// belongs to a different user, so callers cannot probe for existence.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidAmount indicates a monetary amount that is not positive.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidCurrencyFormat indicates a currency code that is not exactly
// three ASCII letters.
var ErrInvalidCurrencyFormat = errors.New("currency must be a 3-letter code")

// ErrUnsupportedCurrency indicates a well-formed currency code that is
// not in the supported currency registry.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrConversionUnavailable is the only classification of a currency
// conversion failure that crosses the API boundary. The underlying
// detail stays in the logs.
var ErrConversionUnavailable = errors.New("currency conversion failed")

// ErrStorageUnavailable indicates a storage-level I/O failure.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ConversionError carries the internal detail of a failed currency
// conversion. It unwraps to ErrConversionUnavailable so handlers can
// classify it with errors.Is without exposing Detail to a client.
type ConversionError struct {
	Detail string
}

func (e *ConversionError) Error() string {
	return e.Detail
}

func (e *ConversionError) Unwrap() error {
	return ErrConversionUnavailable
}

// NewConversionError wraps an internal failure description in a ConversionError.
func NewConversionError(detail string) *ConversionError {
	return &ConversionError{Detail: detail}
}
