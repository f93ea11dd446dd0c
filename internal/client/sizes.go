package client

import (
	"context"
	"fmt"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// SizesClient implements docean.SizesClient.
type SizesClient struct {
	httpClient *internalhttp.Client
}

// NewSizesClient creates a new sizes client.
func NewSizesClient(httpClient *internalhttp.Client) *SizesClient {
	return &SizesClient{httpClient: httpClient}
}

type sizesRoot struct {
	Sizes []docean.Size `json:"sizes"`
	Links docean.Links  `json:"links"`
	Meta  docean.Meta   `json:"meta"`
}

func (c *SizesClient) listPage(ctx context.Context, pageURL string, opts *docean.ListOptions) (*docean.Page[docean.Size], error) {
	resp, err := c.httpClient.Get(ctx, pageURL, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing sizes: %w", err)
	}

	var root sizesRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.Size]{Items: root.Sizes, Links: root.Links, Meta: root.Meta}, nil
}

// List retrieves one page of droplet sizes.
func (c *SizesClient) List(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.Size], error) {
	return c.listPage(ctx, "/v2/sizes", opts)
}

// ListAll retrieves every size across all pages.
func (c *SizesClient) ListAll(ctx context.Context, opts *docean.ListOptions) ([]docean.Size, error) {
	return docean.FetchAllPages(ctx, docean.PageListerFunc[docean.Size](c.listPage), "/v2/sizes", opts, docean.DefaultPaginationOptions())
}
