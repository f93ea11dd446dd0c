package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// TagsClient implements docean.TagsClient.
type TagsClient struct {
	httpClient *internalhttp.Client
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *internalhttp.Client) *TagsClient {
	return &TagsClient{httpClient: httpClient}
}

type tagRoot struct {
	Tag *docean.Tag `json:"tag"`
}

type tagsRoot struct {
	Tags  []docean.Tag `json:"tags"`
	Links docean.Links `json:"links"`
	Meta  docean.Meta  `json:"meta"`
}

func (c *TagsClient) listPage(ctx context.Context, pageURL string, opts *docean.ListOptions) (*docean.Page[docean.Tag], error) {
	resp, err := c.httpClient.Get(ctx, pageURL, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var root tagsRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.Tag]{Items: root.Tags, Links: root.Links, Meta: root.Meta}, nil
}

// List retrieves one page of tags.
func (c *TagsClient) List(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.Tag], error) {
	return c.listPage(ctx, "/v2/tags", opts)
}

// ListAll retrieves every tag across all pages.
func (c *TagsClient) ListAll(ctx context.Context, opts *docean.ListOptions) ([]docean.Tag, error) {
	return docean.FetchAllPages(ctx, docean.PageListerFunc[docean.Tag](c.listPage), "/v2/tags", opts, docean.DefaultPaginationOptions())
}

// Iterate returns an iterator over all tags.
func (c *TagsClient) Iterate(ctx context.Context, opts *docean.ListOptions) *docean.PageIterator[docean.Tag] {
	return docean.NewPageIterator(ctx, docean.PageListerFunc[docean.Tag](c.listPage), "/v2/tags", opts)
}

// Get retrieves a tag by name.
func (c *TagsClient) Get(ctx context.Context, name string) (*docean.Tag, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/tags/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting tag %q: %w", name, err)
	}

	var root tagRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Tag, nil
}

// Create registers a new tag name.
func (c *TagsClient) Create(ctx context.Context, request *docean.TagCreateRequest) (*docean.Tag, error) {
	resp, err := c.httpClient.Post(ctx, "/v2/tags", request)
	if err != nil {
		return nil, fmt.Errorf("creating tag: %w", err)
	}

	var root tagRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Tag, nil
}

// Delete removes a tag and untags every resource carrying it.
func (c *TagsClient) Delete(ctx context.Context, name string) error {
	_, err := c.httpClient.Delete(ctx, "/v2/tags/"+url.PathEscape(name))
	if err != nil {
		return fmt.Errorf("deleting tag %q: %w", name, err)
	}

	return nil
}

// TagResources applies a tag to the given resources.
func (c *TagsClient) TagResources(ctx context.Context, name string, request *docean.TagResourcesRequest) error {
	_, err := c.httpClient.Post(ctx, "/v2/tags/"+url.PathEscape(name)+"/resources", request)
	if err != nil {
		return fmt.Errorf("tagging resources with %q: %w", name, err)
	}

	return nil
}

// UntagResources removes a tag from the given resources.
func (c *TagsClient) UntagResources(ctx context.Context, name string, request *docean.TagResourcesRequest) error {
	_, err := c.httpClient.DeleteWithBody(ctx, "/v2/tags/"+url.PathEscape(name)+"/resources", request)
	if err != nil {
		return fmt.Errorf("untagging resources with %q: %w", name, err)
	}

	return nil
}
