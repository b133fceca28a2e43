package api

import (
	"errors"
	"fmt"
)

// Error kinds for client operations. Callers branch with errors.Is; every
// failure from this package wraps exactly one of these, except generic
// provider failures which surface as a bare *APIError.
var (
	// ErrInvalidInput indicates bad caller input or provider-flagged
	// invalid input (err_code E_INVLDINPUT).
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates bad or missing credentials
	// (err_code E_UNAUTH).
	ErrUnauthorized = errors.New("authentication failed")

	// ErrRateLimited indicates the provider call-volume limit was hit
	// (err_code E_MAXAPI).
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrTransport indicates a network or timeout failure before any
	// provider response was obtained.
	ErrTransport = errors.New("transport failure")
)

// APIError is a provider-reported failure. It preserves the original
// result marker and message text from the response envelope.
type APIError struct {
	Result  string // the raw "result" field, e.g. "error"
	Code    string // the "err_code" field, empty when absent
	Message string // the "msg" field

	kind error // one of the sentinel kinds above, nil for generic failures
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %s: %s (result %q)", e.Code, e.Message, e.Result)
	}
	return fmt.Sprintf("api error: %s (result %q)", e.Message, e.Result)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// IsInvalidInput returns true if the error indicates invalid input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnauthorized returns true if the error indicates authentication failed.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsRateLimited returns true if the error indicates the provider rate limit was hit.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsTransport returns true if the error indicates a network or timeout failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// AsAPIError extracts the provider-reported error, if any. This includes
// generic failures that carry no specific kind.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
