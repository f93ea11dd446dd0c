package client

import (
	"context"
	"fmt"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// DropletActionsClient implements docean.DropletActionsClient.
type DropletActionsClient struct {
	httpClient *internalhttp.Client
}

// NewDropletActionsClient creates a new droplet actions client.
func NewDropletActionsClient(httpClient *internalhttp.Client) *DropletActionsClient {
	return &DropletActionsClient{httpClient: httpClient}
}

// doAction posts one action request and decodes the resulting action record.
func (c *DropletActionsClient) doAction(ctx context.Context, dropletID int64, request map[string]interface{}) (*docean.Action, error) {
	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/v2/droplets/%d/actions", dropletID), request)
	if err != nil {
		return nil, fmt.Errorf("running %v on droplet %d: %w", request["type"], dropletID, err)
	}

	var root actionRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Action, nil
}

// Reboot gracefully reboots a droplet.
func (c *DropletActionsClient) Reboot(ctx context.Context, dropletID int64) (*docean.Action, error) {
	return c.doAction(ctx, dropletID, map[string]interface{}{"type": "reboot"})
}

// PowerCycle hard-resets a droplet.
func (c *DropletActionsClient) PowerCycle(ctx context.Context, dropletID int64) (*docean.Action, error) {
	return c.doAction(ctx, dropletID, map[string]interface{}{"type": "power_cycle"})
}

// PowerOn powers a droplet on.
func (c *DropletActionsClient) PowerOn(ctx context.Context, dropletID int64) (*docean.Action, error) {
	return c.doAction(ctx, dropletID, map[string]interface{}{"type": "power_on"})
}

// PowerOff hard-stops a droplet.
func (c *DropletActionsClient) PowerOff(ctx context.Context, dropletID int64) (*docean.Action, error) {
	return c.doAction(ctx, dropletID, map[string]interface{}{"type": "power_off"})
}

// Shutdown gracefully shuts a droplet down.
func (c *DropletActionsClient) Shutdown(ctx context.Context, dropletID int64) (*docean.Action, error) {
	return c.doAction(ctx, dropletID, map[string]interface{}{"type": "shutdown"})
}

// EnableBackups turns on automatic backups for a droplet.
func (c *DropletActionsClient) EnableBackups(ctx context.Context, dropletID int64) (*docean.Action, error) {
	return c.doAction(ctx, dropletID, map[string]interface{}{"type": "enable_backups"})
}

// DisableBackups turns off automatic backups for a droplet.
func (c *DropletActionsClient) DisableBackups(ctx context.Context, dropletID int64) (*docean.Action, error) {
	return c.doAction(ctx, dropletID, map[string]interface{}{"type": "disable_backups"})
}

// EnableIPv6 enables IPv6 networking on a droplet.
func (c *DropletActionsClient) EnableIPv6(ctx context.Context, dropletID int64) (*docean.Action, error) {
	return c.doAction(ctx, dropletID, map[string]interface{}{"type": "enable_ipv6"})
}

// Resize moves a droplet to a new size slug. resizeDisk makes the change
// permanent by also growing the disk.
func (c *DropletActionsClient) Resize(ctx context.Context, dropletID int64, sizeSlug string, resizeDisk bool) (*docean.Action, error) {
	return c.doAction(ctx, dropletID, map[string]interface{}{
		"type": "resize",
		"size": sizeSlug,
		"disk": resizeDisk,
	})
}

// Rename changes a droplet's name.
func (c *DropletActionsClient) Rename(ctx context.Context, dropletID int64, name string) (*docean.Action, error) {
	return c.doAction(ctx, dropletID, map[string]interface{}{
		"type": "rename",
		"name": name,
	})
}

// Snapshot takes a named snapshot of a droplet.
func (c *DropletActionsClient) Snapshot(ctx context.Context, dropletID int64, name string) (*docean.Action, error) {
	return c.doAction(ctx, dropletID, map[string]interface{}{
		"type": "snapshot",
		"name": name,
	})
}

// Get retrieves one action previously triggered on a droplet.
func (c *DropletActionsClient) Get(ctx context.Context, dropletID, actionID int64) (*docean.Action, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v2/droplets/%d/actions/%d", dropletID, actionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting action %d for droplet %d: %w", actionID, dropletID, err)
	}

	var root actionRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Action, nil
}

// List retrieves one page of the actions triggered on a droplet.
func (c *DropletActionsClient) List(ctx context.Context, dropletID int64, opts *docean.ListOptions) (*docean.Page[docean.Action], error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v2/droplets/%d/actions", dropletID), listValues(opts))
	if err != nil {
		return nil, fmt.Errorf("listing actions for droplet %d: %w", dropletID, err)
	}

	var root actionsRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return &docean.Page[docean.Action]{Items: root.Actions, Links: root.Links, Meta: root.Meta}, nil
}
