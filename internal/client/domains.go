package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// DomainsClient implements docean.DomainsClient.
type DomainsClient struct {
	httpClient *internalhttp.Client
}

// NewDomainsClient creates a new domains client.
func NewDomainsClient(httpClient *internalhttp.Client) *DomainsClient {
	return &DomainsClient{httpClient: httpClient}
}

type domainRoot struct {
	Domain *docean.Domain `json:"domain"`
}

type domainsRoot struct {
	Domains []docean.Domain `json:"domains"`
	Links   docean.Links    `json:"links"`
	Meta    docean.Meta     `json:"meta"`
}

// Create registers a new DNS zone.
func (c *DomainsClient) Create(ctx context.Context, request *docean.DomainCreateRequest) (*docean.Domain, error) {
	resp, err := c.httpClient.Post(ctx, "/v2/domains", request)
	if err != nil {
		return nil, fmt.Errorf("creating domain: %w", err)
	}

	var root domainRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Domain, nil
}

// Get retrieves a DNS zone by name.
func (c *DomainsClient) Get(ctx context.Context, name string) (*docean.Domain, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/domains/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting domain %q: %w", name, err)
	}

	var root domainRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Domain, nil
}

func (c *DomainsClient) listPage(ctx context.Context, pageURL string, opts *docean.ListOptions) (*docean.Page[docean.Domain], error) {
	resp, err := c.httpClient.Get(ctx, pageURL, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing domains: %w", err)
	}

	var root domainsRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.Domain]{Items: root.Domains, Links: root.Links, Meta: root.Meta}, nil
}

// List retrieves one page of DNS zones.
func (c *DomainsClient) List(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.Domain], error) {
	return c.listPage(ctx, "/v2/domains", opts)
}

// ListAll retrieves every DNS zone across all pages.
func (c *DomainsClient) ListAll(ctx context.Context, opts *docean.ListOptions) ([]docean.Domain, error) {
	return docean.FetchAllPages(ctx, docean.PageListerFunc[docean.Domain](c.listPage), "/v2/domains", opts, docean.DefaultPaginationOptions())
}

// Iterate returns an iterator over all DNS zones.
func (c *DomainsClient) Iterate(ctx context.Context, opts *docean.ListOptions) *docean.PageIterator[docean.Domain] {
	return docean.NewPageIterator(ctx, docean.PageListerFunc[docean.Domain](c.listPage), "/v2/domains", opts)
}

// Delete removes a DNS zone and all its records.
func (c *DomainsClient) Delete(ctx context.Context, name string) error {
	_, err := c.httpClient.Delete(ctx, "/v2/domains/"+url.PathEscape(name))
	if err != nil {
		return fmt.Errorf("deleting domain %q: %w", name, err)
	}

	return nil
}
