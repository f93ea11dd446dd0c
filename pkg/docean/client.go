package docean

import (
	"time"

	"golang.org/x/oauth2"
)

// ComputeClients provides access to compute resource clients.
type ComputeClients interface {
	Droplets() DropletsClient
	DropletActions() DropletActionsClient
	Images() ImagesClient
	Snapshots() SnapshotsClient
	Regions() RegionsClient
	Sizes() SizesClient
	SSHKeys() SSHKeysClient
}

// NetworkingClients provides access to networking resource clients.
type NetworkingClients interface {
	FloatingIPs() FloatingIPsClient
	FloatingIPActions() FloatingIPActionsClient
	LoadBalancers() LoadBalancersClient
	Certificates() CertificatesClient
}

// StorageClients provides access to block storage resource clients.
type StorageClients interface {
	Volumes() VolumesClient
}

// DNSClients provides access to DNS resource clients.
type DNSClients interface {
	Domains() DomainsClient
	DomainRecords() DomainRecordsClient
}

// MetaClients provides access to account-level resource clients.
type MetaClients interface {
	Account() AccountClient
	Actions() ActionsClient
	Tags() TagsClient
}

// Client is the full typed surface of the API. Concrete implementations are
// constructed by the doclient package.
type Client interface {
	// Composite interfaces for related resource groups
	ComputeClients
	NetworkingClients
	StorageClients
	DNSClients
	MetaClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// The configuration is read once at construction and never mutated
// afterwards; multiple clients with different configs can coexist.
//
// # Authentication
//
// Provide exactly one of:
//  1. Token: a personal access token, sent as a static Bearer credential.
//  2. TokenSource: an oauth2.TokenSource; the current token is fetched per
//     request, which allows rotation without rebuilding the client.
//  3. Neither: requests are sent without an Authorization header.
//
// # Timeouts and retries
//
// Per-request deadlines are controlled by the context passed to client
// methods; HTTPTimeout is a safety net on the whole exchange. Rate-limit and
// transient-failure retry behavior is tuned via RetryMax, RetryWaitMin and
// RetryWaitMax; waits derived from RateLimit-Reset / Retry-After headers are
// capped at RetryWaitMax.
type Config struct {
	// Token is a personal access token used as a static Bearer credential.
	Token string
	// TokenSource supplies OAuth2 tokens; takes precedence over Token.
	TokenSource oauth2.TokenSource
	// BaseURL overrides the default API endpoint
	// (https://api.digitalocean.com). doclient.New normalizes the value by
	// trimming a trailing slash and adding "https://" if no scheme is present.
	BaseURL string
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// HTTPTimeout bounds a single HTTP exchange. Zero uses the default.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of retries for rate-limited and
	// transient failures. Zero uses the default budget.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries and the cap applied
	// to header-derived waits.
	RetryWaitMax time.Duration
	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// Interceptors is an optional chain run around every request.
	Interceptors *InterceptorChain
}
