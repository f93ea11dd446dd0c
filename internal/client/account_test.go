package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluewater-io/docean/v2/pkg/docean"
)

func TestAccountGet(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/account", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK,
			`{"account":{"droplet_limit":25,"floating_ip_limit":5,"email":"ops@example.com","uuid":"b6fr89dbf6d9156cace5f3c78dc9851d957381ef","email_verified":true,"status":"active"}}`)
	})

	client := newTestClient(t, server.URL)

	account, err := client.Account().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", account.Email)
	assert.Equal(t, 25, account.DropletLimit)
	assert.True(t, account.EmailVerified)
	assert.Equal(t, "active", account.Status)
}

func TestAccountGetUnauthorized(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, `{"id":"unauthorized","message":"unable to authenticate you"}`)
	})

	client := newTestClient(t, server.URL)

	_, err := client.Account().Get(context.Background())
	require.Error(t, err)
	assert.True(t, docean.IsUnauthorized(err))
}
