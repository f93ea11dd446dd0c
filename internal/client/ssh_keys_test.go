package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluewater-io/docean/v2/pkg/docean"
)

func TestSSHKeysCreate(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/account/keys", r.URL.Path)

		writeJSON(t, w, http.StatusCreated,
			`{"ssh_key":{"id":512189,"fingerprint":"3b:16:bf:e4:8b","public_key":"ssh-ed25519 AAAA...","name":"deploy"}}`)
	})

	client := newTestClient(t, server.URL)

	key, err := client.SSHKeys().Create(context.Background(), &docean.SSHKeyCreateRequest{
		Name:      "deploy",
		PublicKey: "ssh-ed25519 AAAA...",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(512189), key.ID)
	assert.Equal(t, "deploy", key.Name)
}

func TestSSHKeysGetByFingerprint(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/account/keys/3b:16:bf:e4:8b", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{"ssh_key":{"id":512189,"fingerprint":"3b:16:bf:e4:8b","name":"deploy"}}`)
	})

	client := newTestClient(t, server.URL)

	key, err := client.SSHKeys().GetByFingerprint(context.Background(), "3b:16:bf:e4:8b")
	require.NoError(t, err)
	assert.Equal(t, "3b:16:bf:e4:8b", key.Fingerprint)
}

func TestSSHKeysUpdateAndDelete(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/account/keys/512189", r.URL.Path)

		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		require.Equal(t, http.MethodPut, r.Method)
		writeJSON(t, w, http.StatusOK, `{"ssh_key":{"id":512189,"name":"deploy-eu"}}`)
	})

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	key, err := client.SSHKeys().Update(ctx, 512189, &docean.SSHKeyUpdateRequest{Name: "deploy-eu"})
	require.NoError(t, err)
	assert.Equal(t, "deploy-eu", key.Name)

	require.NoError(t, client.SSHKeys().Delete(ctx, 512189))
}
