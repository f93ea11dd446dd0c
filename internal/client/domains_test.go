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

func TestDomainsCreate(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/domains", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "example.com", body["name"])
		assert.Equal(t, "203.0.113.10", body["ip_address"])

		writeJSON(t, w, http.StatusCreated, `{"domain":{"name":"example.com","ttl":1800}}`)
	})

	client := newTestClient(t, server.URL)

	domain, err := client.Domains().Create(context.Background(), &docean.DomainCreateRequest{
		Name:      "example.com",
		IPAddress: "203.0.113.10",
	})
	require.NoError(t, err)
	assert.Equal(t, "example.com", domain.Name)
	assert.Equal(t, 1800, domain.TTL)
}

func TestDomainsGetAndDelete(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/domains/example.com", r.URL.Path)

		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		writeJSON(t, w, http.StatusOK, `{"domain":{"name":"example.com","ttl":1800,"zone_file":"$ORIGIN example.com."}}`)
	})

	client := newTestClient(t, server.URL)

	domain, err := client.Domains().Get(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Contains(t, domain.ZoneFile, "$ORIGIN")

	require.NoError(t, client.Domains().Delete(context.Background(), "example.com"))
}

func TestDomainRecordsList(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/domains/example.com/records", r.URL.Path)
		writeJSON(t, w, http.StatusOK,
			`{"domain_records":[{"id":1,"type":"A","name":"@","data":"203.0.113.10"},{"id":2,"type":"MX","name":"@","data":"mail.example.com.","priority":10}],"meta":{"total":2}}`)
	})

	client := newTestClient(t, server.URL)

	page, err := client.DomainRecords().List(context.Background(), "example.com", nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "A", page.Items[0].Type)
	require.NotNil(t, page.Items[1].Priority)
	assert.Equal(t, 10, *page.Items[1].Priority)
}

func TestDomainRecordsCreateUpdateDelete(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			require.Equal(t, "/v2/domains/example.com/records", r.URL.Path)
			writeJSON(t, w, http.StatusCreated, `{"domain_record":{"id":3,"type":"CNAME","name":"www","data":"@"}}`)
		case r.Method == http.MethodPut:
			require.Equal(t, "/v2/domains/example.com/records/3", r.URL.Path)
			writeJSON(t, w, http.StatusOK, `{"domain_record":{"id":3,"type":"CNAME","name":"web","data":"@"}}`)
		case r.Method == http.MethodDelete:
			require.Equal(t, "/v2/domains/example.com/records/3", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	record, err := client.DomainRecords().Create(ctx, "example.com", &docean.DomainRecordEditRequest{
		Type: "CNAME",
		Name: "www",
		Data: "@",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), record.ID)

	record, err = client.DomainRecords().Update(ctx, "example.com", 3, &docean.DomainRecordEditRequest{Name: "web"})
	require.NoError(t, err)
	assert.Equal(t, "web", record.Name)

	require.NoError(t, client.DomainRecords().Delete(ctx, "example.com", 3))
}
