package client

import (
	"context"
	"fmt"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// ActionsClient implements docean.ActionsClient.
type ActionsClient struct {
	httpClient *internalhttp.Client
}

// NewActionsClient creates a new actions client.
func NewActionsClient(httpClient *internalhttp.Client) *ActionsClient {
	return &ActionsClient{httpClient: httpClient}
}

type actionRoot struct {
	Action *docean.Action `json:"action"`
}

type actionsRoot struct {
	Actions []docean.Action `json:"actions"`
	Links   docean.Links    `json:"links"`
	Meta    docean.Meta     `json:"meta"`
}

func (c *ActionsClient) listPage(ctx context.Context, pageURL string, opts *docean.ListOptions) (*docean.Page[docean.Action], error) {
	resp, err := c.httpClient.Get(ctx, pageURL, listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing actions: %w", err)
	}

	var root actionsRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.Action]{Items: root.Actions, Links: root.Links, Meta: root.Meta}, nil
}

// List retrieves one page of the account-wide action history.
func (c *ActionsClient) List(ctx context.Context, opts *docean.ListOptions) (*docean.Page[docean.Action], error) {
	return c.listPage(ctx, "/v2/actions", opts)
}

// ListAll retrieves every action across all pages.
func (c *ActionsClient) ListAll(ctx context.Context, opts *docean.ListOptions) ([]docean.Action, error) {
	return docean.FetchAllPages(ctx, docean.PageListerFunc[docean.Action](c.listPage), "/v2/actions", opts, docean.DefaultPaginationOptions())
}

// Iterate returns an iterator over the action history.
func (c *ActionsClient) Iterate(ctx context.Context, opts *docean.ListOptions) *docean.PageIterator[docean.Action] {
	return docean.NewPageIterator(ctx, docean.PageListerFunc[docean.Action](c.listPage), "/v2/actions", opts)
}

// Get retrieves a single action by ID.
func (c *ActionsClient) Get(ctx context.Context, actionID int64) (*docean.Action, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v2/actions/%d", actionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting action %d: %w", actionID, err)
	}

	var root actionRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Action, nil
}
