package docean_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluewater-io/docean/v2/pkg/docean"
)

func TestInterceptorChainOrder(t *testing.T) {
	t.Parallel()

	chain := docean.NewInterceptorChain()

	var calls []string

	chain.AddRequestInterceptor(func(_ context.Context, _ *docean.Request) error {
		calls = append(calls, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(_ context.Context, _ *docean.Request) error {
		calls = append(calls, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &docean.Request{Method: "GET", Path: "/v2/account"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestInterceptorChainStopsOnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	chain := docean.NewInterceptorChain()

	var reached bool

	chain.AddRequestInterceptor(func(_ context.Context, _ *docean.Request) error {
		return boom
	})
	chain.AddRequestInterceptor(func(_ context.Context, _ *docean.Request) error {
		reached = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &docean.Request{})
	require.ErrorIs(t, err, boom)
	assert.False(t, reached)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := docean.HeaderInterceptor(map[string]string{"X-Request-Source": "batch-job"})

	req := &docean.Request{Method: "GET", Path: "/v2/droplets"}
	require.NoError(t, interceptor(context.Background(), req))
	assert.Equal(t, "batch-job", req.Headers.Get("X-Request-Source"))
}

func TestRateLimitInterceptorRespectsContext(t *testing.T) {
	t.Parallel()

	interceptor := docean.RateLimitInterceptor(1)

	// First request consumes the only token.
	require.NoError(t, interceptor(context.Background(), &docean.Request{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := interceptor(ctx, &docean.Request{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRateLimitInterceptorWithContext(t *testing.T) {
	t.Parallel()

	lifetime, stop := context.WithCancel(context.Background())
	defer stop()

	interceptor := docean.RateLimitInterceptorWithContext(lifetime, 2)

	// The initial tokens stay available after the refill goroutine stops.
	stop()
	require.NoError(t, interceptor(context.Background(), &docean.Request{}))
	require.NoError(t, interceptor(context.Background(), &docean.Request{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := interceptor(ctx, &docean.Request{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestMetricsInterceptors(t *testing.T) {
	t.Parallel()

	collector := docean.NewMetricsCollector()
	reqInterceptor := docean.MetricsRequestInterceptor(collector)
	respInterceptor := docean.MetricsResponseInterceptor(collector)

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		req := &docean.Request{Method: "GET", Path: "/v2/droplets"}
		require.NoError(t, reqInterceptor(ctx, req))

		status := http.StatusOK
		if i == 2 {
			status = http.StatusInternalServerError
		}

		require.NoError(t, respInterceptor(ctx, req, &docean.Response{StatusCode: status}))
	}

	metrics := collector.GetMetrics("GET /v2/droplets")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(3), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.Positive(t, metrics.AverageLatency)

	assert.Nil(t, collector.GetMetrics("GET /v2/unknown"))
}

func TestMetricsCollectorOnChange(t *testing.T) {
	t.Parallel()

	collector := docean.NewMetricsCollector()

	var notified string

	collector.SetOnChange(func(endpoint string, _ *docean.Metrics) {
		notified = endpoint
	})

	respInterceptor := docean.MetricsResponseInterceptor(collector)
	req := &docean.Request{Method: "DELETE", Path: "/v2/droplets/1"}

	require.NoError(t, respInterceptor(context.Background(), req, &docean.Response{StatusCode: http.StatusNoContent}))
	assert.Equal(t, "DELETE /v2/droplets/1", notified)
}
