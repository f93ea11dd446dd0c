package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// LoadBalancersClient implements docean.LoadBalancersClient.
type LoadBalancersClient struct {
	httpClient *internalhttp.Client
}

// NewLoadBalancersClient creates a new load balancers client.
func NewLoadBalancersClient(httpClient *internalhttp.Client) *LoadBalancersClient {
	return &LoadBalancersClient{httpClient: httpClient}
}

type loadBalancerRoot struct {
	LoadBalancer *docean.LoadBalancer `json:"load_balancer"`
}

type loadBalancersRoot struct {
	LoadBalancers []docean.LoadBalancer `json:"load_balancers"`
	Links         docean.Links          `json:"links"`
	Meta          docean.Meta           `json:"meta"`
}

func (c *LoadBalancersClient) listPage(ctx context.Context, pageURL string, opts *docean.ListOptions) (*docean.Page[docean.LoadBalancer], error) {
	resp, err := c.httpClient.Get(ctx, pageURL, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing load balancers: %w", err)
	}

	var root loadBalancersRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.LoadBalancer]{Items: root.LoadBalancers, Links: root.Links, Meta: root.Meta}, nil
}

// List retrieves one page of load balancers.
func (c *LoadBalancersClient) List(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.LoadBalancer], error) {
	return c.listPage(ctx, "/v2/load_balancers", opts)
}

// ListAll retrieves every load balancer across all pages.
func (c *LoadBalancersClient) ListAll(ctx context.Context, opts *docean.ListOptions) ([]docean.LoadBalancer, error) {
	return docean.FetchAllPages(ctx, docean.PageListerFunc[docean.LoadBalancer](c.listPage), "/v2/load_balancers", opts, docean.DefaultPaginationOptions())
}

// Get retrieves a load balancer by ID.
func (c *LoadBalancersClient) Get(ctx context.Context, loadBalancerID string) (*docean.LoadBalancer, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/load_balancers/"+url.PathEscape(loadBalancerID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting load balancer %q: %w", loadBalancerID, err)
	}

	var root loadBalancerRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.LoadBalancer, nil
}

// Create provisions a new load balancer.
func (c *LoadBalancersClient) Create(ctx context.Context, request *docean.LoadBalancerRequest) (*docean.LoadBalancer, error) {
	resp, err := c.httpClient.Post(ctx, "/v2/load_balancers", request)
	if err != nil {
		return nil, fmt.Errorf("creating load balancer: %w", err)
	}

	var root loadBalancerRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.LoadBalancer, nil
}

// Update replaces the full configuration of a load balancer.
func (c *LoadBalancersClient) Update(ctx context.Context, loadBalancerID string, request *docean.LoadBalancerRequest) (*docean.LoadBalancer, error) {
	resp, err := c.httpClient.Put(ctx, "/v2/load_balancers/"+url.PathEscape(loadBalancerID), request)
	if err != nil {
		return nil, fmt.Errorf("updating load balancer %q: %w", loadBalancerID, err)
	}

	var root loadBalancerRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.LoadBalancer, nil
}

// Delete destroys a load balancer by ID.
func (c *LoadBalancersClient) Delete(ctx context.Context, loadBalancerID string) error {
	_, err := c.httpClient.Delete(ctx, "/v2/load_balancers/"+url.PathEscape(loadBalancerID))
	if err != nil {
		return fmt.Errorf("deleting load balancer %q: %w", loadBalancerID, err)
	}

	return nil
}

// AddDroplets attaches droplets to a load balancer's pool.
func (c *LoadBalancersClient) AddDroplets(ctx context.Context, loadBalancerID string, dropletIDs ...int64) error {
	_, err := c.httpClient.Post(ctx, "/v2/load_balancers/"+url.PathEscape(loadBalancerID)+"/droplets",
		map[string]interface{}{"droplet_ids": dropletIDs})
	if err != nil {
		return fmt.Errorf("adding droplets to load balancer %q: %w", loadBalancerID, err)
	}

	return nil
}

// RemoveDroplets detaches droplets from a load balancer's pool.
func (c *LoadBalancersClient) RemoveDroplets(ctx context.Context, loadBalancerID string, dropletIDs ...int64) error {
	_, err := c.httpClient.DeleteWithBody(ctx, "/v2/load_balancers/"+url.PathEscape(loadBalancerID)+"/droplets",
		map[string]interface{}{"droplet_ids": dropletIDs})
	if err != nil {
		return fmt.Errorf("removing droplets from load balancer %q: %w", loadBalancerID, err)
	}

	return nil
}
