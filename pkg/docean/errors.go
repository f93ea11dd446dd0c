package docean

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// APIError represents a failure reported by the API via a non-2xx status and
// a structured {id, message} error body.
type APIError struct {
	Status    int    `json:"-"          yaml:"-"`
	ID        string `json:"id"         yaml:"id"`
	Message   string `json:"message"    yaml:"message"`
	RequestID string `json:"request_id" yaml:"request_id"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status: %d)", e.ID, e.Message, e.Status)
}

// RateLimitError is returned when the request quota was exhausted and the
// retry budget did not recover it. RetryAfter reports how long the API asked
// us to wait before the last attempt.
type RateLimitError struct {
	APIError

	RetryAfter time.Duration
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited: %s (retry after %s)", e.Message, e.RetryAfter)
}

// Unwrap exposes the underlying APIError so callers can match either kind.
func (e *RateLimitError) Unwrap() error {
	return &e.APIError
}

// TransportError represents a network-level failure: connection refused, DNS
// resolution, TLS handshake, or a timeout before any response was received.
type TransportError struct {
	Op  string
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError represents a response body that did not match the expected
// schema. Unlike APIError this is never transient: it signals contract drift
// between the client and the API, or a client bug.
type DecodeError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Common error IDs reported by the API.
const (
	ErrorIDNotFound        = "not_found"
	ErrorIDUnauthorized    = "unauthorized"
	ErrorIDForbidden       = "forbidden"
	ErrorIDTooManyRequests = "too_many_requests"
	ErrorIDUnprocessable   = "unprocessable_entity"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired         = errors.New("config is required")
	ErrBaseURLRequired        = errors.New("base URL is required")
	ErrNoMoreItems            = errors.New("no more items")
	ErrUnrecognizedErrorShape = errors.New("error body does not match the {id, message} shape")
	ErrStaticTokenNoRefresh   = errors.New("static token cannot be refreshed")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == 404 || apiErr.ID == ErrorIDNotFound
	}

	return false
}

// IsUnauthorized checks if the error reports a missing or invalid credential.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == 401 || apiErr.ID == ErrorIDUnauthorized
	}

	return false
}

// IsForbidden checks if the error reports insufficient permissions.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == 403 || apiErr.ID == ErrorIDForbidden
	}

	return false
}

// IsRateLimited checks if the error is a rate limit error that survived the
// retry budget.
func IsRateLimited(err error) bool {
	rateErr := &RateLimitError{}

	return errors.As(err, &rateErr)
}

// IsTransport checks if the error is a network-level failure.
func IsTransport(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsDecode checks if the error is a schema mismatch.
func IsDecode(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

// ParseErrorResponse parses a non-2xx response body into an APIError. A body
// that is not valid JSON, or that lacks both id and message, yields a
// DecodeError instead: deviations from the documented error shape must
// surface as contract drift, not be coerced into a guessed APIError.
func ParseErrorResponse(status int, body []byte) (*APIError, error) {
	var apiErr APIError

	err := json.Unmarshal(body, &apiErr)
	if err != nil {
		return nil, &DecodeError{Op: "parsing error response", Err: err}
	}

	if apiErr.ID == "" && apiErr.Message == "" {
		return nil, &DecodeError{Op: "parsing error response", Err: ErrUnrecognizedErrorShape}
	}

	apiErr.Status = status

	return &apiErr, nil
}
