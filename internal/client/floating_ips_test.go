package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluewater-io/docean/v2/pkg/docean"
)

func TestFloatingIPsCreateReservedToRegion(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/floating_ips", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "nyc3", body["region"])
		assert.NotContains(t, body, "droplet_id")

		writeJSON(t, w, http.StatusAccepted, `{"floating_ip":{"ip":"45.55.96.47","region":{"slug":"nyc3"}}}`)
	})

	client := newTestClient(t, server.URL)

	ip, err := client.FloatingIPs().Create(context.Background(), &docean.FloatingIPCreateRequest{Region: "nyc3"})
	require.NoError(t, err)
	assert.Equal(t, "45.55.96.47", ip.IP)
	assert.Equal(t, "nyc3", ip.Region.Slug)
}

func TestFloatingIPsGetAndDelete(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/floating_ips/45.55.96.47", r.URL.Path)

		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		writeJSON(t, w, http.StatusOK, `{"floating_ip":{"ip":"45.55.96.47","droplet":{"id":3164494}}}`)
	})

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	ip, err := client.FloatingIPs().Get(ctx, "45.55.96.47")
	require.NoError(t, err)
	require.NotNil(t, ip.Droplet)
	assert.Equal(t, int64(3164494), ip.Droplet.ID)

	require.NoError(t, client.FloatingIPs().Delete(ctx, "45.55.96.47"))
}

func TestFloatingIPActionsAssign(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/floating_ips/45.55.96.47/actions", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "assign", body["type"])
		assert.Equal(t, float64(3164494), body["droplet_id"])

		writeJSON(t, w, http.StatusCreated, `{"action":{"id":68212728,"status":"in-progress","type":"assign_ip"}}`)
	})

	client := newTestClient(t, server.URL)

	action, err := client.FloatingIPActions().Assign(context.Background(), "45.55.96.47", 3164494)
	require.NoError(t, err)
	assert.Equal(t, int64(68212728), action.ID)
}

func TestFloatingIPActionsUnassign(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{"type": "unassign"}, body)

		writeJSON(t, w, http.StatusCreated, `{"action":{"id":68212729,"status":"in-progress","type":"unassign_ip"}}`)
	})

	client := newTestClient(t, server.URL)

	action, err := client.FloatingIPActions().Unassign(context.Background(), "45.55.96.47")
	require.NoError(t, err)
	assert.Equal(t, "unassign_ip", action.Type)
}
