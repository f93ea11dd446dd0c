package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// DomainRecordsClient implements docean.DomainRecordsClient.
type DomainRecordsClient struct {
	httpClient *internalhttp.Client
}

// NewDomainRecordsClient creates a new domain records client.
func NewDomainRecordsClient(httpClient *internalhttp.Client) *DomainRecordsClient {
	return &DomainRecordsClient{httpClient: httpClient}
}

type domainRecordRoot struct {
	DomainRecord *docean.DomainRecord `json:"domain_record"`
}

type domainRecordsRoot struct {
	DomainRecords []docean.DomainRecord `json:"domain_records"`
	Links         docean.Links          `json:"links"`
	Meta          docean.Meta           `json:"meta"`
}

func recordsPath(domain string) string {
	return "/v2/domains/" + url.PathEscape(domain) + "/records"
}

func (c *DomainRecordsClient) listPage(ctx context.Context, pageURL string, opts *docean.ListOptions) (*docean.Page[docean.DomainRecord], error) {
	resp, err := c.httpClient.Get(ctx, pageURL, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing domain records: %w", err)
	}

	var root domainRecordsRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.DomainRecord]{Items: root.DomainRecords, Links: root.Links, Meta: root.Meta}, nil
}

// List retrieves one page of records in a DNS zone.
func (c *DomainRecordsClient) List(ctx context.Context, domain string, opts *docean.ListOptions) (*docean.Page[docean.DomainRecord], error) {
	return c.listPage(ctx, recordsPath(domain), opts)
}

// ListAll retrieves every record in a DNS zone across all pages.
func (c *DomainRecordsClient) ListAll(ctx context.Context, domain string, opts *docean.ListOptions) ([]docean.DomainRecord, error) {
	return docean.FetchAllPages(ctx, docean.PageListerFunc[docean.DomainRecord](c.listPage), recordsPath(domain), opts, docean.DefaultPaginationOptions())
}

// Iterate returns an iterator over the records in a DNS zone.
func (c *DomainRecordsClient) Iterate(ctx context.Context, domain string, opts *docean.ListOptions) *docean.PageIterator[docean.DomainRecord] {
	return docean.NewPageIterator(ctx, docean.PageListerFunc[docean.DomainRecord](c.listPage), recordsPath(domain), opts)
}

// Get retrieves one record of a DNS zone.
func (c *DomainRecordsClient) Get(ctx context.Context, domain string, recordID int64) (*docean.DomainRecord, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("%s/%d", recordsPath(domain), recordID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting record %d of domain %q: %w", recordID, domain, err)
	}

	var root domainRecordRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.DomainRecord, nil
}

// Create adds a record to a DNS zone.
func (c *DomainRecordsClient) Create(ctx context.Context, domain string, request *docean.DomainRecordEditRequest) (*docean.DomainRecord, error) {
	resp, err := c.httpClient.Post(ctx, recordsPath(domain), request)
	if err != nil {
		return nil, fmt.Errorf("creating record in domain %q: %w", domain, err)
	}

	var root domainRecordRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.DomainRecord, nil
}

// Update modifies an existing record of a DNS zone.
func (c *DomainRecordsClient) Update(ctx context.Context, domain string, recordID int64, request *docean.DomainRecordEditRequest) (*docean.DomainRecord, error) {
	resp, err := c.httpClient.Put(ctx, fmt.Sprintf("%s/%d", recordsPath(domain), recordID), request)
	if err != nil {
		return nil, fmt.Errorf("updating record %d of domain %q: %w", recordID, domain, err)
	}

	var root domainRecordRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.DomainRecord, nil
}

// Delete removes a record from a DNS zone.
func (c *DomainRecordsClient) Delete(ctx context.Context, domain string, recordID int64) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("%s/%d", recordsPath(domain), recordID))
	if err != nil {
		return fmt.Errorf("deleting record %d of domain %q: %w", recordID, domain, err)
	}

	return nil
}
