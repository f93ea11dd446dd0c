package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// FloatingIPActionsClient implements docean.FloatingIPActionsClient.
type FloatingIPActionsClient struct {
	httpClient *internalhttp.Client
}

// NewFloatingIPActionsClient creates a new floating IP actions client.
func NewFloatingIPActionsClient(httpClient *internalhttp.Client) *FloatingIPActionsClient {
	return &FloatingIPActionsClient{httpClient: httpClient}
}

func (c *FloatingIPActionsClient) doAction(ctx context.Context, ip string, request map[string]interface{}) (*docean.Action, error) {
	resp, err := c.httpClient.Post(ctx, "/v2/floating_ips/"+url.PathEscape(ip)+"/actions", request)
	if err != nil {
		return nil, fmt.Errorf("running %v on floating IP %q: %w", request["type"], ip, err)
	}

	var root actionRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Action, nil
}

// Assign points a floating IP at a droplet.
func (c *FloatingIPActionsClient) Assign(ctx context.Context, ip string, dropletID int64) (*docean.Action, error) {
	return c.doAction(ctx, ip, map[string]interface{}{
		"type":       "assign",
		"droplet_id": dropletID,
	})
}

// Unassign detaches a floating IP from its droplet, keeping it reserved.
func (c *FloatingIPActionsClient) Unassign(ctx context.Context, ip string) (*docean.Action, error) {
	return c.doAction(ctx, ip, map[string]interface{}{"type": "unassign"})
}

// Get retrieves one action previously triggered on a floating IP.
func (c *FloatingIPActionsClient) Get(ctx context.Context, ip string, actionID int64) (*docean.Action, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v2/floating_ips/%s/actions/%d", url.PathEscape(ip), actionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting action %d for floating IP %q: %w", actionID, ip, err)
	}

	var root actionRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Action, nil
}
