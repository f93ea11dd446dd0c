package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// CertificatesClient implements docean.CertificatesClient.
type CertificatesClient struct {
	httpClient *internalhttp.Client
}

// NewCertificatesClient creates a new certificates client.
func NewCertificatesClient(httpClient *internalhttp.Client) *CertificatesClient {
	return &CertificatesClient{httpClient: httpClient}
}

type certificateRoot struct {
	Certificate *docean.Certificate `json:"certificate"`
}

type certificatesRoot struct {
	Certificates []docean.Certificate `json:"certificates"`
	Links        docean.Links         `json:"links"`
	Meta         docean.Meta          `json:"meta"`
}

func (c *CertificatesClient) listPage(ctx context.Context, pageURL string, opts *docean.ListOptions) (*docean.Page[docean.Certificate], error) {
	resp, err := c.httpClient.Get(ctx, pageURL, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing certificates: %w", err)
	}

	var root certificatesRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.Certificate]{Items: root.Certificates, Links: root.Links, Meta: root.Meta}, nil
}

// List retrieves one page of certificates.
func (c *CertificatesClient) List(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.Certificate], error) {
	return c.listPage(ctx, "/v2/certificates", opts)
}

// ListAll retrieves every certificate across all pages.
func (c *CertificatesClient) ListAll(ctx context.Context, opts *docean.ListOptions) ([]docean.Certificate, error) {
	return docean.FetchAllPages(ctx, docean.PageListerFunc[docean.Certificate](c.listPage), "/v2/certificates", opts, docean.DefaultPaginationOptions())
}

// Get retrieves a certificate by ID.
func (c *CertificatesClient) Get(ctx context.Context, certificateID string) (*docean.Certificate, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/certificates/"+url.PathEscape(certificateID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting certificate %q: %w", certificateID, err)
	}

	var root certificateRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Certificate, nil
}

// Create uploads a custom certificate or requests a managed one.
func (c *CertificatesClient) Create(ctx context.Context, request *docean.CertificateCreateRequest) (*docean.Certificate, error) {
	resp, err := c.httpClient.Post(ctx, "/v2/certificates", request)
	if err != nil {
		return nil, fmt.Errorf("creating certificate: %w", err)
	}

	var root certificateRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Certificate, nil
}

// Delete removes a certificate by ID.
func (c *CertificatesClient) Delete(ctx context.Context, certificateID string) error {
	_, err := c.httpClient.Delete(ctx, "/v2/certificates/"+url.PathEscape(certificateID))
	if err != nil {
		return fmt.Errorf("deleting certificate %q: %w", certificateID, err)
	}

	return nil
}
