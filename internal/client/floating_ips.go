package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// FloatingIPsClient implements docean.FloatingIPsClient.
type FloatingIPsClient struct {
	httpClient *internalhttp.Client
}

// NewFloatingIPsClient creates a new floating IPs client.
func NewFloatingIPsClient(httpClient *internalhttp.Client) *FloatingIPsClient {
	return &FloatingIPsClient{httpClient: httpClient}
}

type floatingIPRoot struct {
	FloatingIP *docean.FloatingIP `json:"floating_ip"`
}

type floatingIPsRoot struct {
	FloatingIPs []docean.FloatingIP `json:"floating_ips"`
	Links       docean.Links        `json:"links"`
	Meta        docean.Meta         `json:"meta"`
}

// Create reserves a floating IP, either assigned to a droplet or held in a
// region.
func (c *FloatingIPsClient) Create(ctx context.Context, request *docean.FloatingIPCreateRequest) (*docean.FloatingIP, error) {
	resp, err := c.httpClient.Post(ctx, "/v2/floating_ips", request)
	if err != nil {
		return nil, fmt.Errorf("creating floating IP: %w", err)
	}

	var root floatingIPRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.FloatingIP, nil
}

// Get retrieves a floating IP by address.
func (c *FloatingIPsClient) Get(ctx context.Context, ip string) (*docean.FloatingIP, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/floating_ips/"+url.PathEscape(ip), nil)
	if err != nil {
		return nil, fmt.Errorf("getting floating IP %q: %w", ip, err)
	}

	var root floatingIPRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.FloatingIP, nil
}

func (c *FloatingIPsClient) listPage(ctx context.Context, pageURL string, opts *docean.ListOptions) (*docean.Page[docean.FloatingIP], error) {
	resp, err := c.httpClient.Get(ctx, pageURL, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing floating IPs: %w", err)
	}

	var root floatingIPsRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.FloatingIP]{Items: root.FloatingIPs, Links: root.Links, Meta: root.Meta}, nil
}

// List retrieves one page of floating IPs.
func (c *FloatingIPsClient) List(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.FloatingIP], error) {
	return c.listPage(ctx, "/v2/floating_ips", opts)
}

// ListAll retrieves every floating IP across all pages.
func (c *FloatingIPsClient) ListAll(ctx context.Context, opts *docean.ListOptions) ([]docean.FloatingIP, error) {
	return docean.FetchAllPages(ctx, docean.PageListerFunc[docean.FloatingIP](c.listPage), "/v2/floating_ips", opts, docean.DefaultPaginationOptions())
}

// Iterate returns an iterator over all floating IPs.
func (c *FloatingIPsClient) Iterate(ctx context.Context, opts *docean.ListOptions) *docean.PageIterator[docean.FloatingIP] {
	return docean.NewPageIterator(ctx, docean.PageListerFunc[docean.FloatingIP](c.listPage), "/v2/floating_ips", opts)
}

// Delete releases a floating IP.
func (c *FloatingIPsClient) Delete(ctx context.Context, ip string) error {
	_, err := c.httpClient.Delete(ctx, "/v2/floating_ips/"+url.PathEscape(ip))
	if err != nil {
		return fmt.Errorf("deleting floating IP %q: %w", ip, err)
	}

	return nil
}
