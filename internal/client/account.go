package client

import (
	"context"
	"fmt"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// AccountClient implements docean.AccountClient.
type AccountClient struct {
	httpClient *internalhttp.Client
}

// NewAccountClient creates a new account client.
func NewAccountClient(httpClient *internalhttp.Client) *AccountClient {
	return &AccountClient{httpClient: httpClient}
}

type accountRoot struct {
	Account *docean.Account `json:"account"`
}

// Get retrieves the account behind the credentials.
func (c *AccountClient) Get(ctx context.Context) (*docean.Account, error) {
	resp, err := c.httpClient.Get(ctx, "/v2/account", nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	var root accountRoot
	if err := decodeBody(resp, &root); err != nil {
		return nil, err
	}

	return root.Account, nil
}
