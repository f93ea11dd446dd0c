package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluewater-io/docean/v2/pkg/docean"
)

func TestImagesListDistribution(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/images", r.URL.Path)
		require.Equal(t, "distribution", r.URL.Query().Get("type"))

		writeJSON(t, w, http.StatusOK,
			`{"images":[{"id":63663980,"slug":"ubuntu-24-04-x64","distribution":"Ubuntu","public":true}],"meta":{"total":1}}`)
	})

	client := newTestClient(t, server.URL)

	page, err := client.Images().ListDistribution(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "ubuntu-24-04-x64", page.Items[0].Slug)
	assert.True(t, page.Items[0].Public)
}

func TestImagesFilteredListsLeaveOptionsUntouched(t *testing.T) {
	t.Parallel()

	var gotTypes []string

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotTypes = append(gotTypes, r.URL.Query().Get("type"))
		require.Equal(t, "10", r.URL.Query().Get("per_page"))

		writeJSON(t, w, http.StatusOK, `{"images":[],"meta":{"total":0}}`)
	})

	client := newTestClient(t, server.URL)

	opts := docean.NewListOptions().WithPerPage(10)

	_, err := client.Images().ListDistribution(context.Background(), opts)
	require.NoError(t, err)

	_, err = client.Images().ListApplication(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"distribution", "application"}, gotTypes)
	assert.Empty(t, opts.Filters)
}

func TestImagesGetBySlug(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/images/ubuntu-24-04-x64", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{"image":{"id":63663980,"slug":"ubuntu-24-04-x64","distribution":"Ubuntu"}}`)
	})

	client := newTestClient(t, server.URL)

	image, err := client.Images().GetBySlug(context.Background(), "ubuntu-24-04-x64")
	require.NoError(t, err)
	assert.Equal(t, int64(63663980), image.ID)
	assert.Equal(t, "Ubuntu", image.Distribution)
}

func TestImagesCreateCustom(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/images", r.URL.Path)

		writeJSON(t, w, http.StatusAccepted, `{"image":{"id":77,"name":"golden","type":"custom","status":"NEW"}}`)
	})

	client := newTestClient(t, server.URL)

	image, err := client.Images().Create(context.Background(), &docean.CustomImageCreateRequest{
		Name:   "golden",
		URL:    "https://example.com/golden.qcow2",
		Region: "nyc3",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom", image.Type)
	assert.Equal(t, "NEW", image.Status)
}

func TestImagesUpdate(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/v2/images/77", r.URL.Path)

		writeJSON(t, w, http.StatusOK, `{"image":{"id":77,"name":"golden-v2"}}`)
	})

	client := newTestClient(t, server.URL)

	image, err := client.Images().Update(context.Background(), 77, &docean.ImageUpdateRequest{Name: "golden-v2"})
	require.NoError(t, err)
	assert.Equal(t, "golden-v2", image.Name)
}
