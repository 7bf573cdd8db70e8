// Package upstream contains the HTTP clients for the third-party APIs
// the server proxies. Responses are reshaped into the stable schemas in
// the types package; any upstream failure surfaces as ErrUpstream and is
// never retried.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds every upstream call. The upstreams are public
// APIs with no latency guarantees, so requests must not hang the server.
const DefaultTimeout = 10 * time.Second

// ErrUpstream is returned when a third-party API call fails or returns a
// non-success status.
var ErrUpstream = errors.New("upstream request failed")

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON performs a GET against url and decodes the 200 response body
// into out. Every failure mode wraps ErrUpstream.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}
