package docean_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluewater-io/docean/v2/pkg/docean"
)

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	t.Run("structured body", func(t *testing.T) {
		t.Parallel()

		apiErr, err := docean.ParseErrorResponse(http.StatusNotFound,
			[]byte(`{"id":"not_found","message":"the resource you requested could not be found","request_id":"req-9"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "not_found", apiErr.ID)
		assert.Equal(t, "req-9", apiErr.RequestID)
	})

	t.Run("message without id", func(t *testing.T) {
		t.Parallel()

		apiErr, err := docean.ParseErrorResponse(http.StatusBadRequest, []byte(`{"message":"name is required"}`))
		require.NoError(t, err)
		assert.Equal(t, "name is required", apiErr.Message)
	})

	t.Run("not JSON", func(t *testing.T) {
		t.Parallel()

		_, err := docean.ParseErrorResponse(http.StatusBadGateway, []byte(`<html>502</html>`))
		require.Error(t, err)
		assert.True(t, docean.IsDecode(err))
	})

	t.Run("JSON without id or message", func(t *testing.T) {
		t.Parallel()

		_, err := docean.ParseErrorResponse(http.StatusBadRequest, []byte(`{"error":"wrong shape"}`))
		require.Error(t, err)
		assert.True(t, docean.IsDecode(err))
		assert.ErrorIs(t, err, docean.ErrUnrecognizedErrorShape)
	})
}

func TestErrorMatchers(t *testing.T) {
	t.Parallel()

	notFound := &docean.APIError{Status: 404, ID: docean.ErrorIDNotFound, Message: "gone"}
	unauthorized := &docean.APIError{Status: 401, ID: docean.ErrorIDUnauthorized}
	forbidden := &docean.APIError{Status: 403, ID: docean.ErrorIDForbidden}
	rateLimited := &docean.RateLimitError{
		APIError:   docean.APIError{Status: 429, ID: docean.ErrorIDTooManyRequests},
		RetryAfter: 2 * time.Second,
	}
	transport := &docean.TransportError{Op: "GET", URL: "https://api.example.com", Err: errors.New("refused")}
	decode := &docean.DecodeError{Op: "decoding response body", Err: errors.New("bad json")}

	tests := []struct {
		name    string
		err     error
		matcher func(error) bool
		want    bool
	}{
		{"not found matches", notFound, docean.IsNotFound, true},
		{"not found by status only", &docean.APIError{Status: 404}, docean.IsNotFound, true},
		{"unauthorized matches", unauthorized, docean.IsUnauthorized, true},
		{"forbidden matches", forbidden, docean.IsForbidden, true},
		{"rate limited matches", rateLimited, docean.IsRateLimited, true},
		{"transport matches", transport, docean.IsTransport, true},
		{"decode matches", decode, docean.IsDecode, true},
		{"wrapped still matches", fmt.Errorf("listing droplets: %w", notFound), docean.IsNotFound, true},
		{"transport is not decode", transport, docean.IsDecode, false},
		{"api error is not rate limited", notFound, docean.IsRateLimited, false},
		{"nil does not match", nil, docean.IsNotFound, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.matcher(tt.err))
		})
	}
}

func TestRateLimitErrorUnwrapsToAPIError(t *testing.T) {
	t.Parallel()

	rateErr := &docean.RateLimitError{
		APIError:   docean.APIError{Status: 429, ID: docean.ErrorIDTooManyRequests, Message: "slow down"},
		RetryAfter: time.Second,
	}

	var apiErr *docean.APIError
	require.ErrorAs(t, rateErr, &apiErr)
	assert.Equal(t, 429, apiErr.Status)
	assert.Contains(t, rateErr.Error(), "retry after")
}

func TestTransportErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	transportErr := &docean.TransportError{Op: "POST", URL: "https://api.example.com/v2/droplets", Err: cause}

	assert.ErrorIs(t, transportErr, cause)
	assert.Contains(t, transportErr.Error(), "POST")
}
