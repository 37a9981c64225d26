// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Retries transport failures and 5xx answers with exponential backoff

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"countries-app-api/core/interfaces"
)

const (
	maxRetries = 3
	userAgent  = "CountriesAPI/1.0"
)

// StandardHTTPClient implements the HTTPClient interface using net/http
type StandardHTTPClient struct {
	client *http.Client
	// backoff is the delay before the first retry; it doubles on each attempt
	backoff time.Duration
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client:  &http.Client{Timeout: timeout},
		backoff: 100 * time.Millisecond,
	}
}

// NewStandardHTTPClientWithTransport creates a client that sends requests
// through transport, e.g. a logging round tripper
func NewStandardHTTPClientWithTransport(timeout time.Duration, transport http.RoundTripper) *StandardHTTPClient {
	c := NewStandardHTTPClient(timeout)
	c.client.Transport = transport
	return c
}

// Get performs an HTTP GET request asking for JSON. The last response is
// returned even when every attempt answered 5xx, so callers see the status.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// 100ms, 200ms, ...
			wait := c.backoff * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				if resp != nil {
					resp.Body.Close()
				}
				return nil, ctx.Err()
			}
			if resp != nil {
				resp.Body.Close()
				resp = nil
			}
		}

		r, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		resp = r

		if resp.StatusCode < 500 {
			break
		}
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
