package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// SnapshotsClient implements docean.SnapshotsClient.
type SnapshotsClient struct {
	httpClient *internalhttp.Client
}

// NewSnapshotsClient creates a new snapshots client.
func NewSnapshotsClient(httpClient *internalhttp.Client) *SnapshotsClient {
	return &SnapshotsClient{httpClient: httpClient}
}

type snapshotRoot struct {
	Snapshot *docean.Snapshot `json:"snapshot"`
}

type snapshotsRoot struct {
	Snapshots []docean.Snapshot `json:"snapshots"`
	Links     docean.Links      `json:"links"`
	Meta      docean.Meta       `json:"meta"`
}

func (c *SnapshotsClient) listPage(ctx context.Context, pageURL string, opts *docean.ListOptions) (*docean.Page[docean.Snapshot], error) {
	resp, err := c.httpClient.Get(ctx, pageURL, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}

	var root snapshotsRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.Snapshot]{Items: root.Snapshots, Links: root.Links, Meta: root.Meta}, nil
}

// List retrieves one page of snapshots of any origin.
func (c *SnapshotsClient) List(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.Snapshot], error) {
	return c.listPage(ctx, "/v2/snapshots", opts)
}

// ListAll retrieves every snapshot across all pages.
func (c *SnapshotsClient) ListAll(ctx context.Context, opts *docean.ListOptions) ([]docean.Snapshot, error) {
	return docean.FetchAllPages(ctx, docean.PageListerFunc[docean.Snapshot](c.listPage), "/v2/snapshots", opts, docean.DefaultPaginationOptions())
}

// Iterate returns an iterator over all snapshots.
func (c *SnapshotsClient) Iterate(ctx context.Context, opts *docean.ListOptions) *docean.PageIterator[docean.Snapshot] {
	return docean.NewPageIterator(ctx, docean.PageListerFunc[docean.Snapshot](c.listPage), "/v2/snapshots", opts)
}

// ListDroplet retrieves one page of droplet snapshots.
func (c *SnapshotsClient) ListDroplet(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.Snapshot], error) {
	return c.listResourceType(ctx, "droplet", opts)
}

// ListVolume retrieves one page of volume snapshots.
func (c *SnapshotsClient) ListVolume(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.Snapshot], error) {
	return c.listResourceType(ctx, "volume", opts)
}

func (c *SnapshotsClient) listResourceType(ctx context.Context, resourceType string, opts *docean.ListOptions) (*docean.Page[docean.Snapshot], error) {
	return c.listPage(ctx, "/v2/snapshots", opts.Clone().WithFilter("resource_type", resourceType))
}

// Get retrieves a snapshot by ID.
func (c *SnapshotsClient) Get(ctx context.Context, snapshotID string) (*docean.Snapshot, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/snapshots/"+url.PathEscape(snapshotID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting snapshot %q: %w", snapshotID, err)
	}

	var root snapshotRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Snapshot, nil
}

// Delete destroys a snapshot by ID.
func (c *SnapshotsClient) Delete(ctx context.Context, snapshotID string) error {
	_, err := c.httpClient.Delete(ctx, "/v2/snapshots/"+url.PathEscape(snapshotID))
	if err != nil {
		return fmt.Errorf("deleting snapshot %q: %w", snapshotID, err)
	}

	return nil
}
