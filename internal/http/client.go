// Package http implements the transport layer: request construction,
// credential injection, the rate-limit-aware retry governor, and decoding of
// error responses into the public error taxonomy.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/bluewater-io/docean/v2/internal/auth"
	"github.com/bluewater-io/docean/v2/internal/constants"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// Request describes one API call to perform.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    interface{}
}

// Response is the raw outcome of one API call, consumed exactly once by the
// caller's decode step.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Rate       docean.Rate
}

// Client performs HTTP exchanges against the API. It is safe for concurrent
// use: all fields are set at construction and never mutated.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	userAgent    string
	logger       docean.Logger
	debug        bool
	interceptors *docean.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger.
func WithLogger(logger docean.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes the governor's retry budget and backoff bounds.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithHTTPTimeout bounds a single exchange including all retries' waits.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithInterceptors installs an interceptor chain run around every request.
func WithInterceptors(chain *docean.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

const defaultUserAgent = "docean-go/2.0"

// NewClient creates an HTTP client for the given API endpoint. tokenManager
// may be nil for unauthenticated use.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = cleanhttp.DefaultPooledClient()
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.CheckRetry = retryPolicy
	retryClient.Backoff = RateLimitBackoff
	// Hand the final response back instead of discarding it so rate-limit
	// exhaustion can surface as a typed error with the API's own body.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   retryClient,
		tokenManager: tokenManager,
		userAgent:    defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// retryPolicy decides what the governor retries: transport failures, 429,
// and 5xx within the budget. Any other 4xx propagates immediately.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		// Delegate so unrecoverable transport failures (bad scheme, TLS
		// verification) are not retried pointlessly.
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return true, nil
	}

	if resp.StatusCode >= http.StatusInternalServerError && resp.StatusCode != http.StatusNotImplemented {
		return true, nil
	}

	return false, nil
}

// RateLimitBackoff computes the governor's wait before a retry. A wait
// derived from Retry-After or RateLimit-Reset wins when present and sane;
// otherwise the wait falls back to jittered exponential backoff between
// retryWaitMin and retryWaitMax. Both paths are capped at retryWaitMax.
func RateLimitBackoff(retryWaitMin, retryWaitMax time.Duration, attemptNum int, resp *http.Response) time.Duration {
	if resp != nil && (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable) {
		if wait, ok := headerWait(resp.Header); ok {
			if wait > retryWaitMax {
				return retryWaitMax
			}

			return wait
		}
	}

	wait := time.Duration(float64(retryWaitMin) * math.Pow(constants.ExponentialBackoffBase, float64(attemptNum)))
	if wait > retryWaitMax || wait <= 0 {
		wait = retryWaitMax
	}

	// Jitter down to [wait/2, wait) to avoid thundering herds.
	half := wait / 2

	return half + time.Duration(rand.Int63n(int64(half)+1))
}

// headerWait extracts the wait the API asked for, if any.
func headerWait(headers http.Header) (time.Duration, bool) {
	if value := headers.Get(constants.HeaderRetryAfter); value != "" {
		if secs, err := strconv.ParseInt(value, 10, 64); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second, true
		}

		// Retry-After may also carry an HTTP-date instead of delta-seconds.
		if at, err := http.ParseTime(value); err == nil {
			if wait := time.Until(at); wait > 0 {
				return wait, true
			}
		}
	}

	if value := headers.Get(constants.HeaderRateReset); value != "" {
		if epoch, err := strconv.ParseInt(value, 10, 64); err == nil {
			if wait := time.Until(time.Unix(epoch, 0)); wait > 0 {
				return wait, true
			}
		}
	}

	return 0, false
}

// parseRate extracts the quota state from the RateLimit-* headers. Missing
// or malformed headers leave zero values.
func parseRate(headers http.Header) docean.Rate {
	var rate docean.Rate

	if value := headers.Get(constants.HeaderRateLimit); value != "" {
		if limit, err := strconv.Atoi(value); err == nil {
			rate.Limit = limit
		}
	}

	if value := headers.Get(constants.HeaderRateRemaining); value != "" {
		if remaining, err := strconv.Atoi(value); err == nil {
			rate.Remaining = remaining
		}
	}

	if value := headers.Get(constants.HeaderRateReset); value != "" {
		if epoch, err := strconv.ParseInt(value, 10, 64); err == nil {
			rate.Reset = time.Unix(epoch, 0)
		}
	}

	return rate
}

// Do performs one API call: build, send through the governor, and translate
// the outcome. On a non-2xx status both the raw Response and a typed error
// are returned so callers keep access to status and headers.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	// One intercepted request per call: response interceptors see the
	// metadata the request interceptors recorded on it.
	var interceptReq *docean.Request

	if c.interceptors != nil {
		interceptReq = &docean.Request{
			Method:  req.Method,
			Path:    req.Path,
			Headers: httpReq.Header,
		}

		err = c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
		if err != nil {
			return nil, err
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil {
			_ = httpResp.Body.Close()
		}

		return nil, &docean.TransportError{Op: req.Method, URL: httpReq.URL.String(), Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &docean.TransportError{Op: req.Method, URL: httpReq.URL.String(), Err: err}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
		Rate:       parseRate(httpResp.Header),
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         httpReq.URL.String(),
			"status_code": resp.StatusCode,
		})
	}

	var respErr error
	if resp.StatusCode >= http.StatusBadRequest {
		respErr = c.decodeError(resp)
	}

	if c.interceptors != nil {
		interceptResp := &docean.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
			Error:      respErr,
		}

		err = c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp)
		if err != nil {
			return resp, err
		}
	}

	return resp, respErr
}

// decodeError translates a non-2xx response into the error taxonomy.
func (c *Client) decodeError(resp *Response) error {
	apiErr, err := docean.ParseErrorResponse(resp.StatusCode, resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter, _ := headerWait(resp.Headers)

		return &docean.RateLimitError{APIError: *apiErr, RetryAfter: retryAfter}
	}

	return apiErr
}

// buildHTTPRequest assembles a fully-formed request: absolute URL with
// encoded query, JSON body, and Accept/Content-Type/User-Agent/Authorization
// headers. The same Request always builds byte-identical output.
func (c *Client) buildHTTPRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	fullURL, err := c.resolveURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}

	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		rawBody = bodyBytes
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")

	if rawBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// resolveURL joins the base URL with a relative path, or accepts an absolute
// URL verbatim (next-page links arrive absolute). Extra query values are
// merged into whatever the URL already carries and encoded in sorted order.
func (c *Client) resolveURL(path string, query url.Values) (string, error) {
	rawURL := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		rawURL = c.baseURL + path
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", rawURL, err)
	}

	if len(query) > 0 {
		merged := parsed.Query()
		for key, values := range query {
			for _, value := range values {
				merged.Add(key, value)
			}
		}

		parsed.RawQuery = merged.Encode()
	}

	return parsed.String(), nil
}

// Get performs a GET request against path.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request against path.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// DeleteWithBody performs a DELETE request carrying a JSON body, used by
// untag and bulk-removal endpoints.
func (c *Client) DeleteWithBody(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Body: body})
}
