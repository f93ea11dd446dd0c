package doclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluewater-io/docean/v2/pkg/docean"
	"github.com/bluewater-io/docean/v2/pkg/doclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := doclient.New(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, docean.ErrConfigRequired))
	})

	t.Run("defaults base URL", func(t *testing.T) {
		t.Parallel()

		c, err := doclient.New(context.Background(), &docean.Config{Token: "tok"})
		require.NoError(t, err)
		assert.NotNil(t, c.Droplets())
		assert.NotNil(t, c.Account())
	})

	t.Run("does not mutate caller config", func(t *testing.T) {
		t.Parallel()

		config := &docean.Config{Token: "tok", BaseURL: "api.example.com/"}

		_, err := doclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "api.example.com/", config.BaseURL)
	})
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	c, err := doclient.NewWithToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.NotNil(t, c.Volumes())
}

func TestNewFromEnv(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer env-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"account":{"email":"ops@example.com"}}`))
	}))
	defer server.Close()

	t.Setenv(doclient.EnvToken, "env-token")
	t.Setenv(doclient.EnvBaseURL, server.URL)

	c, err := doclient.NewFromEnv(context.Background())
	require.NoError(t, err)

	account, err := c.Account().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", account.Email)
}

func TestNewFromFile(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("token: file-token\nbase_url: api.example.com\nretry_max: 2\n"), 0o600))

		c, err := doclient.NewFromFile(context.Background(), path)
		require.NoError(t, err)
		assert.NotNil(t, c.Domains())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := doclient.NewFromFile(context.Background(), filepath.Join(t.TempDir(), "absent.yml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("token: [unclosed"), 0o600))

		_, err := doclient.NewFromFile(context.Background(), path)
		require.Error(t, err)
	})
}
