// Package client implements the typed resource clients on top of the
// internal HTTP transport.
package client

import (
	"context"

	"github.com/bluewater-io/docean/v2/internal/auth"
	"github.com/bluewater-io/docean/v2/internal/constants"
	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// Client implements docean.Client.
type Client struct {
	config     *docean.Config
	httpClient *internalhttp.Client

	account           *AccountClient
	actions           *ActionsClient
	droplets          *DropletsClient
	dropletActions    *DropletActionsClient
	domains           *DomainsClient
	domainRecords     *DomainRecordsClient
	volumes           *VolumesClient
	snapshots         *SnapshotsClient
	images            *ImagesClient
	regions           *RegionsClient
	sizes             *SizesClient
	floatingIPs       *FloatingIPsClient
	floatingIPActions *FloatingIPActionsClient
	sshKeys           *SSHKeysClient
	tags              *TagsClient
	certificates      *CertificatesClient
	loadBalancers     *LoadBalancersClient
}

// New creates a client from the given configuration. The config must carry a
// base URL; doclient.New fills in the default endpoint before calling here.
func New(_ context.Context, config *docean.Config) (*Client, error) {
	if config == nil {
		return nil, docean.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, docean.ErrBaseURLRequired
	}

	tokenManager := createTokenManager(config)
	httpClient := internalhttp.NewClient(config.BaseURL, tokenManager, createHTTPClientOptions(config)...)

	c := &Client{
		config:     config,
		httpClient: httpClient,
	}
	c.initializeResourceClients()

	return c, nil
}

// createTokenManager picks the credential strategy: an OAuth2 token source
// when provided, a static token otherwise, or nil for unauthenticated use.
func createTokenManager(config *docean.Config) auth.TokenManager {
	if config.TokenSource != nil {
		return auth.NewTokenSourceManager(config.TokenSource)
	}

	if config.Token != "" {
		return auth.NewStaticTokenManager(config.Token)
	}

	return nil
}

func createHTTPClientOptions(config *docean.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 || config.RetryWaitMin > 0 || config.RetryWaitMax > 0 {
		retryMax := config.RetryMax
		if retryMax == 0 {
			retryMax = constants.DefaultRetryMax
		}

		waitMin := config.RetryWaitMin
		if waitMin == 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax == 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, internalhttp.WithRetryConfig(retryMax, waitMin, waitMax))
	}

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.Interceptors != nil {
		opts = append(opts, internalhttp.WithInterceptors(config.Interceptors))
	}

	return opts
}

func (c *Client) initializeResourceClients() {
	c.account = NewAccountClient(c.httpClient)
	c.actions = NewActionsClient(c.httpClient)
	c.droplets = NewDropletsClient(c.httpClient)
	c.dropletActions = NewDropletActionsClient(c.httpClient)
	c.domains = NewDomainsClient(c.httpClient)
	c.domainRecords = NewDomainRecordsClient(c.httpClient)
	c.volumes = NewVolumesClient(c.httpClient)
	c.snapshots = NewSnapshotsClient(c.httpClient)
	c.images = NewImagesClient(c.httpClient)
	c.regions = NewRegionsClient(c.httpClient)
	c.sizes = NewSizesClient(c.httpClient)
	c.floatingIPs = NewFloatingIPsClient(c.httpClient)
	c.floatingIPActions = NewFloatingIPActionsClient(c.httpClient)
	c.sshKeys = NewSSHKeysClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
	c.certificates = NewCertificatesClient(c.httpClient)
	c.loadBalancers = NewLoadBalancersClient(c.httpClient)
}

// Account returns the account client.
func (c *Client) Account() docean.AccountClient { return c.account }

// Actions returns the actions client.
func (c *Client) Actions() docean.ActionsClient { return c.actions }

// Droplets returns the droplets client.
func (c *Client) Droplets() docean.DropletsClient { return c.droplets }

// DropletActions returns the droplet actions client.
func (c *Client) DropletActions() docean.DropletActionsClient { return c.dropletActions }

// Domains returns the domains client.
func (c *Client) Domains() docean.DomainsClient { return c.domains }

// DomainRecords returns the domain records client.
func (c *Client) DomainRecords() docean.DomainRecordsClient { return c.domainRecords }

// Volumes returns the volumes client.
func (c *Client) Volumes() docean.VolumesClient { return c.volumes }

// Snapshots returns the snapshots client.
func (c *Client) Snapshots() docean.SnapshotsClient { return c.snapshots }

// Images returns the images client.
func (c *Client) Images() docean.ImagesClient { return c.images }

// Regions returns the regions client.
func (c *Client) Regions() docean.RegionsClient { return c.regions }

// Sizes returns the sizes client.
func (c *Client) Sizes() docean.SizesClient { return c.sizes }

// FloatingIPs returns the floating IPs client.
func (c *Client) FloatingIPs() docean.FloatingIPsClient { return c.floatingIPs }

// FloatingIPActions returns the floating IP actions client.
func (c *Client) FloatingIPActions() docean.FloatingIPActionsClient { return c.floatingIPActions }

// SSHKeys returns the SSH keys client.
func (c *Client) SSHKeys() docean.SSHKeysClient { return c.sshKeys }

// Tags returns the tags client.
func (c *Client) Tags() docean.TagsClient { return c.tags }

// Certificates returns the certificates client.
func (c *Client) Certificates() docean.CertificatesClient { return c.certificates }

// LoadBalancers returns the load balancers client.
func (c *Client) LoadBalancers() docean.LoadBalancersClient { return c.loadBalancers }
