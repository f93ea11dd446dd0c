package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// VolumesClient implements docean.VolumesClient.
type VolumesClient struct {
	httpClient *internalhttp.Client
}

// NewVolumesClient creates a new volumes client.
func NewVolumesClient(httpClient *internalhttp.Client) *VolumesClient {
	return &VolumesClient{httpClient: httpClient}
}

type volumeRoot struct {
	Volume *docean.Volume `json:"volume"`
}

type volumesRoot struct {
	Volumes []docean.Volume `json:"volumes"`
	Links   docean.Links    `json:"links"`
	Meta    docean.Meta     `json:"meta"`
}

// Create provisions a new block storage volume.
func (c *VolumesClient) Create(ctx context.Context, request *docean.VolumeCreateRequest) (*docean.Volume, error) {
	resp, err := c.httpClient.Post(ctx, "/v2/volumes", request)
	if err != nil {
		return nil, fmt.Errorf("creating volume: %w", err)
	}

	var root volumeRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Volume, nil
}

// Get retrieves a volume by ID.
func (c *VolumesClient) Get(ctx context.Context, volumeID string) (*docean.Volume, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/volumes/"+url.PathEscape(volumeID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting volume %q: %w", volumeID, err)
	}

	var root volumeRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Volume, nil
}

// GetByName retrieves the volume with the given name in a region. Volume
// names are unique per region, so the match is at most one.
func (c *VolumesClient) GetByName(ctx context.Context, name, region string) (*docean.Volume, error) {
	query := url.Values{}
	query.Set("name", name)
	query.Set("region", region)

	resp, err := c.httpClient.Get(ctx, "/v2/volumes", query)
	if err != nil {
		return nil, fmt.Errorf("getting volume %q in region %q: %w", name, region, err)
	}

	var root volumesRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	if len(root.Volumes) == 0 {
		return nil, &docean.APIError{
			Status:  http.StatusNotFound,
			ID:      docean.ErrorIDNotFound,
			Message: fmt.Sprintf("volume %q not found in region %q", name, region),
		}
	}

	return &root.Volumes[0], nil
}

func (c *VolumesClient) listPage(ctx context.Context, pageURL string, opts *docean.ListOptions) (*docean.Page[docean.Volume], error) {
	resp, err := c.httpClient.Get(ctx, pageURL, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing volumes: %w", err)
	}

	var root volumesRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.Volume]{Items: root.Volumes, Links: root.Links, Meta: root.Meta}, nil
}

// List retrieves one page of volumes.
func (c *VolumesClient) List(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.Volume], error) {
	return c.listPage(ctx, "/v2/volumes", opts)
}

// ListAll retrieves every volume across all pages.
func (c *VolumesClient) ListAll(ctx context.Context, opts *docean.ListOptions) ([]docean.Volume, error) {
	return docean.FetchAllPages(ctx, docean.PageListerFunc[docean.Volume](c.listPage), "/v2/volumes", opts, docean.DefaultPaginationOptions())
}

// Iterate returns an iterator over all volumes.
func (c *VolumesClient) Iterate(ctx context.Context, opts *docean.ListOptions) *docean.PageIterator[docean.Volume] {
	return docean.NewPageIterator(ctx, docean.PageListerFunc[docean.Volume](c.listPage), "/v2/volumes", opts)
}

// Delete destroys a volume by ID.
func (c *VolumesClient) Delete(ctx context.Context, volumeID string) error {
	_, err := c.httpClient.Delete(ctx, "/v2/volumes/"+url.PathEscape(volumeID))
	if err != nil {
		return fmt.Errorf("deleting volume %q: %w", volumeID, err)
	}

	return nil
}

// DeleteByName destroys the volume with the given name in a region.
func (c *VolumesClient) DeleteByName(ctx context.Context, name, region string) error {
	query := url.Values{}
	query.Set("name", name)
	query.Set("region", region)

	_, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method: http.MethodDelete,
		Path:   "/v2/volumes",
		Query:  query,
	})
	if err != nil {
		return fmt.Errorf("deleting volume %q in region %q: %w", name, region, err)
	}

	return nil
}

// Snapshots retrieves one page of the snapshots taken from a volume.
func (c *VolumesClient) Snapshots(ctx context.Context, volumeID string, opts *docean.ListOptions) (*docean.Page[docean.Snapshot], error) {
	resp, err := c.httpClient.Get(ctx, "/v2/volumes/"+url.PathEscape(volumeID)+"/snapshots", listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing snapshots for volume %q: %w", volumeID, err)
	}

	var root snapshotsRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.Snapshot]{Items: root.Snapshots, Links: root.Links, Meta: root.Meta}, nil
}

// CreateSnapshot takes a snapshot of a volume.
func (c *VolumesClient) CreateSnapshot(ctx context.Context, volumeID string, request *docean.SnapshotCreateRequest) (*docean.Snapshot, error) {
	resp, err := c.httpClient.Post(ctx, "/v2/volumes/"+url.PathEscape(volumeID)+"/snapshots", request)
	if err != nil {
		return nil, fmt.Errorf("creating snapshot of volume %q: %w", volumeID, err)
	}

	var root snapshotRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Snapshot, nil
}
