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

func TestLoadBalancersCreate(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/load_balancers", r.URL.Path)

		var body docean.LoadBalancerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.ForwardingRules, 1)
		assert.Equal(t, 443, body.ForwardingRules[0].EntryPort)

		writeJSON(t, w, http.StatusAccepted,
			`{"load_balancer":{"id":"lb-1","name":"web-lb","status":"new","forwarding_rules":[{"entry_protocol":"https","entry_port":443,"target_protocol":"http","target_port":80}]}}`)
	})

	client := newTestClient(t, server.URL)

	lb, err := client.LoadBalancers().Create(context.Background(), &docean.LoadBalancerRequest{
		Name:   "web-lb",
		Region: "nyc3",
		ForwardingRules: []docean.ForwardingRule{{
			EntryProtocol:  "https",
			EntryPort:      443,
			TargetProtocol: "http",
			TargetPort:     80,
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "lb-1", lb.ID)
	assert.Equal(t, "new", lb.Status)
}

func TestLoadBalancersDropletPool(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/load_balancers/lb-1/droplets", r.URL.Path)

		var body map[string][]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []int64{1, 2}, body["droplet_ids"])

		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	require.NoError(t, client.LoadBalancers().AddDroplets(ctx, "lb-1", 1, 2))
	require.NoError(t, client.LoadBalancers().RemoveDroplets(ctx, "lb-1", 1, 2))
}

func TestLoadBalancersUpdate(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/v2/load_balancers/lb-1", r.URL.Path)

		writeJSON(t, w, http.StatusOK, `{"load_balancer":{"id":"lb-1","name":"web-lb-2","algorithm":"least_connections"}}`)
	})

	client := newTestClient(t, server.URL)

	lb, err := client.LoadBalancers().Update(context.Background(), "lb-1", &docean.LoadBalancerRequest{
		Name:      "web-lb-2",
		Region:    "nyc3",
		Algorithm: "least_connections",
	})
	require.NoError(t, err)
	assert.Equal(t, "least_connections", lb.Algorithm)
}
