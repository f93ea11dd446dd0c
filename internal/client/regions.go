package client

import (
	"context"
	"fmt"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// RegionsClient implements docean.RegionsClient.
type RegionsClient struct {
	httpClient *internalhttp.Client
}

// NewRegionsClient creates a new regions client.
func NewRegionsClient(httpClient *internalhttp.Client) *RegionsClient {
	return &RegionsClient{httpClient: httpClient}
}

type regionsRoot struct {
	Regions []docean.Region `json:"regions"`
	Links   docean.Links    `json:"links"`
	Meta    docean.Meta     `json:"meta"`
}

func (c *RegionsClient) listPage(ctx context.Context, pageURL string, opts *docean.ListOptions) (*docean.Page[docean.Region], error) {
	resp, err := c.httpClient.Get(ctx, pageURL, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing regions: %w", err)
	}

	var root regionsRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.Region]{Items: root.Regions, Links: root.Links, Meta: root.Meta}, nil
}

// List retrieves one page of datacenter regions.
func (c *RegionsClient) List(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.Region], error) {
	return c.listPage(ctx, "/v2/regions", opts)
}

// ListAll retrieves every region across all pages.
func (c *RegionsClient) ListAll(ctx context.Context, opts *docean.ListOptions) ([]docean.Region, error) {
	return docean.FetchAllPages(ctx, docean.PageListerFunc[docean.Region](c.listPage), "/v2/regions", opts, docean.DefaultPaginationOptions())
}
