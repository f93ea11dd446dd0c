package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for a single HTTP exchange.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry budget.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 4

	// DefaultRetryWaitMin is the base wait of the exponential backoff.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax caps the backoff and any header-derived wait.
	DefaultRetryWaitMax = 60 * time.Second
)

// Rate-limit headers reported by the API.
const (
	// HeaderRateLimit is the per-window request quota.
	HeaderRateLimit = "RateLimit-Limit"

	// HeaderRateRemaining is the number of requests left in the window.
	HeaderRateRemaining = "RateLimit-Remaining"

	// HeaderRateReset is the epoch second at which the window resets.
	HeaderRateReset = "RateLimit-Reset"

	// HeaderRetryAfter is the standard backoff hint on 429 responses.
	HeaderRetryAfter = "Retry-After"
)

// Backoff shape.
const (
	// ExponentialBackoffBase is the base for exponential backoff.
	ExponentialBackoffBase = 2

	// TokenExpirationBuffer is the slack applied before a token's expiry
	// when deciding whether to refresh it.
	TokenExpirationBuffer = 30 * time.Second
)
