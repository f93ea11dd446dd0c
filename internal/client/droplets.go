package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// DropletsClient implements docean.DropletsClient.
type DropletsClient struct {
	httpClient *internalhttp.Client
}

// NewDropletsClient creates a new droplets client.
func NewDropletsClient(httpClient *internalhttp.Client) *DropletsClient {
	return &DropletsClient{httpClient: httpClient}
}

type dropletRoot struct {
	Droplet *docean.Droplet `json:"droplet"`
}

type dropletsRoot struct {
	Droplets []docean.Droplet `json:"droplets"`
	Links    docean.Links     `json:"links"`
	Meta     docean.Meta      `json:"meta"`
}

type kernelsRoot struct {
	Kernels []docean.Kernel `json:"kernels"`
	Links   docean.Links    `json:"links"`
	Meta    docean.Meta     `json:"meta"`
}

// Create provisions a new droplet.
func (c *DropletsClient) Create(ctx context.Context, request *docean.DropletCreateRequest) (*docean.Droplet, error) {
	resp, err := c.httpClient.Post(ctx, "/v2/droplets", request)
	if err != nil {
		return nil, fmt.Errorf("creating droplet: %w", err)
	}

	var root dropletRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Droplet, nil
}

// Get retrieves a droplet by ID.
func (c *DropletsClient) Get(ctx context.Context, dropletID int64) (*docean.Droplet, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v2/droplets/%d", dropletID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting droplet %d: %w", dropletID, err)
	}

	var root dropletRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Droplet, nil
}

func (c *DropletsClient) listPage(ctx context.Context, pageURL string, opts *docean.ListOptions) (*docean.Page[docean.Droplet], error) {
	resp, err := c.httpClient.Get(ctx, pageURL, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing droplets: %w", err)
	}

	var root dropletsRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.Droplet]{Items: root.Droplets, Links: root.Links, Meta: root.Meta}, nil
}

// List retrieves one page of droplets.
func (c *DropletsClient) List(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.Droplet], error) {
	return c.listPage(ctx, "/v2/droplets", opts)
}

// ListAll retrieves every droplet across all pages.
func (c *DropletsClient) ListAll(ctx context.Context, opts *docean.ListOptions) ([]docean.Droplet, error) {
	return docean.FetchAllPages(ctx, docean.PageListerFunc[docean.Droplet](c.listPage), "/v2/droplets", opts, docean.DefaultPaginationOptions())
}

// Iterate returns an iterator over all droplets.
func (c *DropletsClient) Iterate(ctx context.Context, opts *docean.ListOptions) *docean.PageIterator[docean.Droplet] {
	return docean.NewPageIterator(ctx, docean.PageListerFunc[docean.Droplet](c.listPage), "/v2/droplets", opts)
}

// ListByTag retrieves one page of droplets carrying the given tag.
func (c *DropletsClient) ListByTag(ctx context.Context, tag string, opts *docean.ListOptions) (*docean.Page[docean.Droplet], error) {
	return c.listPage(ctx, "/v2/droplets", opts.Clone().WithFilter("tag_name", tag))
}

// Delete destroys a droplet by ID.
func (c *DropletsClient) Delete(ctx context.Context, dropletID int64) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/v2/droplets/%d", dropletID))
	if err != nil {
		return fmt.Errorf("deleting droplet %d: %w", dropletID, err)
	}

	return nil
}

// DeleteByTag destroys every droplet carrying the given tag.
func (c *DropletsClient) DeleteByTag(ctx context.Context, tag string) error {
	query := url.Values{}
	query.Set("tag_name", tag)

	_, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method: http.MethodDelete,
		Path:   "/v2/droplets",
		Query:  query,
	})
	if err != nil {
		return fmt.Errorf("deleting droplets by tag %q: %w", tag, err)
	}

	return nil
}

// Kernels retrieves one page of kernels available to a droplet.
func (c *DropletsClient) Kernels(ctx context.Context, dropletID int64, opts *docean.ListOptions) (*docean.Page[docean.Kernel], error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v2/droplets/%d/kernels", dropletID), listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing kernels for droplet %d: %w", dropletID, err)
	}

	var root kernelsRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.Kernel]{Items: root.Kernels, Links: root.Links, Meta: root.Meta}, nil
}

// Snapshots retrieves one page of snapshot images taken from a droplet.
func (c *DropletsClient) Snapshots(ctx context.Context, dropletID int64, opts *docean.ListOptions) (*docean.Page[docean.Image], error) {
	return c.listImages(ctx, fmt.Sprintf("/v2/droplets/%d/snapshots", dropletID), opts)
}

// Backups retrieves one page of backup images taken from a droplet.
func (c *DropletsClient) Backups(ctx context.Context, dropletID int64, opts *docean.ListOptions) (*docean.Page[docean.Image], error) {
	return c.listImages(ctx, fmt.Sprintf("/v2/droplets/%d/backups", dropletID), opts)
}

func (c *DropletsClient) listImages(ctx context.Context, path string, opts *docean.ListOptions) (*docean.Page[docean.Image], error) {
	resp, err := c.httpClient.Get(ctx, path, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing droplet images: %w", err)
	}

	var root imagesRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.Image]{Items: root.Images, Links: root.Links, Meta: root.Meta}, nil
}

// Neighbors retrieves the droplets sharing physical hardware with a droplet.
func (c *DropletsClient) Neighbors(ctx context.Context, dropletID int64) ([]docean.Droplet, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v2/droplets/%d/neighbors", dropletID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing neighbors for droplet %d: %w", dropletID, err)
	}

	var root dropletsRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Droplets, nil
}
