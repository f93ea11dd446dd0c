package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// SSHKeysClient implements docean.SSHKeysClient.
type SSHKeysClient struct {
	httpClient *internalhttp.Client
}

// NewSSHKeysClient creates a new SSH keys client.
func NewSSHKeysClient(httpClient *internalhttp.Client) *SSHKeysClient {
	return &SSHKeysClient{httpClient: httpClient}
}

type sshKeyRoot struct {
	SSHKey *docean.SSHKey `json:"ssh_key"`
}

type sshKeysRoot struct {
	SSHKeys []docean.SSHKey `json:"ssh_keys"`
	Links   docean.Links    `json:"links"`
	Meta    docean.Meta     `json:"meta"`
}

func (c *SSHKeysClient) listPage(ctx context.Context, pageURL string, opts *docean.ListOptions) (*docean.Page[docean.SSHKey], error) {
	resp, err := c.httpClient.Get(ctx, pageURL, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing SSH keys: %w", err)
	}

	var root sshKeysRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.SSHKey]{Items: root.SSHKeys, Links: root.Links, Meta: root.Meta}, nil
}

// List retrieves one page of registered SSH keys.
func (c *SSHKeysClient) List(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.SSHKey], error) {
	return c.listPage(ctx, "/v2/account/keys", opts)
}

// ListAll retrieves every SSH key across all pages.
func (c *SSHKeysClient) ListAll(ctx context.Context, opts *docean.ListOptions) ([]docean.SSHKey, error) {
	return docean.FetchAllPages(ctx, docean.PageListerFunc[docean.SSHKey](c.listPage), "/v2/account/keys", opts, docean.DefaultPaginationOptions())
}

// Iterate returns an iterator over all SSH keys.
func (c *SSHKeysClient) Iterate(ctx context.Context, opts *docean.ListOptions) *docean.PageIterator[docean.SSHKey] {
	return docean.NewPageIterator(ctx, docean.PageListerFunc[docean.SSHKey](c.listPage), "/v2/account/keys", opts)
}

// Get retrieves an SSH key by numeric ID.
func (c *SSHKeysClient) Get(ctx context.Context, keyID int64) (*docean.SSHKey, error) {
	return c.get(ctx, fmt.Sprintf("/v2/account/keys/%d", keyID))
}

// GetByFingerprint retrieves an SSH key by fingerprint.
func (c *SSHKeysClient) GetByFingerprint(ctx context.Context, fingerprint string) (*docean.SSHKey, error) {
	return c.get(ctx, "/v2/account/keys/"+url.PathEscape(fingerprint))
}

func (c *SSHKeysClient) get(ctx context.Context, path string) (*docean.SSHKey, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting SSH key: %w", err)
	}

	var root sshKeyRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.SSHKey, nil
}

// Create registers a public key with the account.
func (c *SSHKeysClient) Create(ctx context.Context, request *docean.SSHKeyCreateRequest) (*docean.SSHKey, error) {
	resp, err := c.httpClient.Post(ctx, "/v2/account/keys", request)
	if err != nil {
		return nil, fmt.Errorf("creating SSH key: %w", err)
	}

	var root sshKeyRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.SSHKey, nil
}

// Update renames a registered SSH key.
func (c *SSHKeysClient) Update(ctx context.Context, keyID int64, request *docean.SSHKeyUpdateRequest) (*docean.SSHKey, error) {
	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("/v2/account/keys/%d", keyID), request)
	if err != nil {
		return nil, fmt.Errorf("updating SSH key %d: %w", keyID, err)
	}

	var root sshKeyRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.SSHKey, nil
}

// Delete removes an SSH key by numeric ID.
func (c *SSHKeysClient) Delete(ctx context.Context, keyID int64) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/v2/account/keys/%d", keyID))
	if err != nil {
		return fmt.Errorf("deleting SSH key %d: %w", keyID, err)
	}

	return nil
}

// DeleteByFingerprint removes an SSH key by fingerprint.
func (c *SSHKeysClient) DeleteByFingerprint(ctx context.Context, fingerprint string) error {
	_, err := c.httpClient.Delete(ctx, "/v2/account/keys/"+url.PathEscape(fingerprint))
	if err != nil {
		return fmt.Errorf("deleting SSH key %q: %w", fingerprint, err)
	}

	return nil
}
