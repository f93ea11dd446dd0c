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

func TestVolumesCreate(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/volumes", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "pg-data", body["name"])
		assert.Equal(t, float64(100), body["size_gigabytes"])

		writeJSON(t, w, http.StatusCreated,
			`{"volume":{"id":"506f78a4","name":"pg-data","size_gigabytes":100,"region":{"slug":"nyc1"}}}`)
	})

	client := newTestClient(t, server.URL)

	volume, err := client.Volumes().Create(context.Background(), &docean.VolumeCreateRequest{
		Name:          "pg-data",
		Region:        "nyc1",
		SizeGigabytes: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, "506f78a4", volume.ID)
	assert.InEpsilon(t, 100.0, volume.SizeGigabytes, 0.001)
}

func TestVolumesGetByName(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/volumes", r.URL.Path)
		require.Equal(t, "pg-data", r.URL.Query().Get("name"))
		require.Equal(t, "nyc1", r.URL.Query().Get("region"))

		writeJSON(t, w, http.StatusOK, `{"volumes":[{"id":"506f78a4","name":"pg-data"}],"meta":{"total":1}}`)
	})

	client := newTestClient(t, server.URL)

	volume, err := client.Volumes().GetByName(context.Background(), "pg-data", "nyc1")
	require.NoError(t, err)
	assert.Equal(t, "506f78a4", volume.ID)
}

func TestVolumesGetByNameNoMatch(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"volumes":[],"meta":{"total":0}}`)
	})

	client := newTestClient(t, server.URL)

	_, err := client.Volumes().GetByName(context.Background(), "missing", "nyc1")
	require.Error(t, err)
	assert.True(t, docean.IsNotFound(err))
}

func TestVolumesDeleteByName(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/v2/volumes", r.URL.Path)
		require.Equal(t, "pg-data", r.URL.Query().Get("name"))
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, server.URL)

	require.NoError(t, client.Volumes().DeleteByName(context.Background(), "pg-data", "nyc1"))
}

func TestVolumesSnapshots(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			require.Equal(t, "/v2/volumes/506f78a4/snapshots", r.URL.Path)
			writeJSON(t, w, http.StatusCreated, `{"snapshot":{"id":"8eb4d51a","name":"pg-data-nightly","resource_type":"volume"}}`)
		default:
			require.Equal(t, "/v2/volumes/506f78a4/snapshots", r.URL.Path)
			writeJSON(t, w, http.StatusOK, `{"snapshots":[{"id":"8eb4d51a","name":"pg-data-nightly"}],"meta":{"total":1}}`)
		}
	})

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	snapshot, err := client.Volumes().CreateSnapshot(ctx, "506f78a4", &docean.SnapshotCreateRequest{Name: "pg-data-nightly"})
	require.NoError(t, err)
	assert.Equal(t, "8eb4d51a", snapshot.ID)

	page, err := client.Volumes().Snapshots(ctx, "506f78a4", nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "pg-data-nightly", page.Items[0].Name)
}
