package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// ImagesClient implements docean.ImagesClient.
type ImagesClient struct {
	httpClient *internalhttp.Client
}

// NewImagesClient creates a new images client.
func NewImagesClient(httpClient *internalhttp.Client) *ImagesClient {
	return &ImagesClient{httpClient: httpClient}
}

type imageRoot struct {
	Image *docean.Image `json:"image"`
}

type imagesRoot struct {
	Images []docean.Image `json:"images"`
	Links  docean.Links   `json:"links"`
	Meta   docean.Meta    `json:"meta"`
}

func (c *ImagesClient) listPage(ctx context.Context, pageURL string, opts *docean.ListOptions) (*docean.Page[docean.Image], error) {
	resp, err := c.httpClient.Get(ctx, pageURL, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}

	var root imagesRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.Image]{Items: root.Images, Links: root.Links, Meta: root.Meta}, nil
}

// List retrieves one page of images of any type.
func (c *ImagesClient) List(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.Image], error) {
	return c.listPage(ctx, "/v2/images", opts)
}

// ListAll retrieves every image across all pages.
func (c *ImagesClient) ListAll(ctx context.Context, opts *docean.ListOptions) ([]docean.Image, error) {
	return docean.FetchAllPages(ctx, docean.PageListerFunc[docean.Image](c.listPage), "/v2/images", opts, docean.DefaultPaginationOptions())
}

// Iterate returns an iterator over all images.
func (c *ImagesClient) Iterate(ctx context.Context, opts *docean.ListOptions) *docean.PageIterator[docean.Image] {
	return docean.NewPageIterator(ctx, docean.PageListerFunc[docean.Image](c.listPage), "/v2/images", opts)
}

// ListDistribution retrieves one page of base distribution images.
func (c *ImagesClient) ListDistribution(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.Image], error) {
	return c.listType(ctx, "distribution", opts)
}

// ListApplication retrieves one page of one-click application images.
func (c *ImagesClient) ListApplication(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.Image], error) {
	return c.listType(ctx, "application", opts)
}

// ListUser retrieves one page of the account's own images.
func (c *ImagesClient) ListUser(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.Image], error) {
	return c.listPage(ctx, "/v2/images", opts.Clone().WithFilter("private", "true"))
}

func (c *ImagesClient) listType(ctx context.Context, imageType string, opts *docean.ListOptions) (*docean.Page[docean.Image], error) {
	return c.listPage(ctx, "/v2/images", opts.Clone().WithFilter("type", imageType))
}

// Get retrieves an image by numeric ID.
func (c *ImagesClient) Get(ctx context.Context, imageID int64) (*docean.Image, error) {
	return c.get(ctx, fmt.Sprintf("/v2/images/%d", imageID))
}

// GetBySlug retrieves a public image by its slug.
func (c *ImagesClient) GetBySlug(ctx context.Context, slug string) (*docean.Image, error) {
	return c.get(ctx, "/v2/images/"+url.PathEscape(slug))
}

func (c *ImagesClient) get(ctx context.Context, path string) (*docean.Image, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting image: %w", err)
	}

	var root imageRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Image, nil
}

// Create imports a custom image from a URL.
func (c *ImagesClient) Create(ctx context.Context, request *docean.CustomImageCreateRequest) (*docean.Image, error) {
	resp, err := c.httpClient.Post(ctx, "/v2/images", request)
	if err != nil {
		return nil, fmt.Errorf("creating custom image: %w", err)
	}

	var root imageRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Image, nil
}

// Update changes an image's metadata.
func (c *ImagesClient) Update(ctx context.Context, imageID int64, request *docean.ImageUpdateRequest) (*docean.Image, error) {
	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("/v2/images/%d", imageID), request)
	if err != nil {
		return nil, fmt.Errorf("updating image %d: %w", imageID, err)
	}

	var root imageRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Image, nil
}

// Delete destroys an image by ID.
func (c *ImagesClient) Delete(ctx context.Context, imageID int64) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/v2/images/%d", imageID))
	if err != nil {
		return fmt.Errorf("deleting image %d: %w", imageID, err)
	}

	return nil
}
