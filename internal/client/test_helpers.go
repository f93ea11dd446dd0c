package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// newTestServer starts an httptest server that routes on method and path and
// returns status with the given JSON body.
func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

// newTestClient creates a client pointed at the test server with a short
// retry budget so failure tests stay fast.
func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	c, err := New(context.Background(), &docean.Config{
		Token:        "test-token",
		BaseURL:      serverURL,
		RetryMax:     1,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: 5 * time.Millisecond,
	})
	require.NoError(t, err)

	return c
}

// writeJSON writes a canned JSON response.
func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))
	require.NoError(t, err)
}
