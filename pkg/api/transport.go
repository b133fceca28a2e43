package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/REOL/cloudflare/internal/metrics"
)

const (
	// DefaultEndpoint is the legacy client API endpoint. Every action is
	// encoded as a GET parameter against this single URL.
	DefaultEndpoint = "https://www.cloudflare.com/api_json.html"

	// DefaultTimeout is the fixed per-request timeout.
	DefaultTimeout = 10 * time.Second
)

// Legacy API action names.
const (
	actionLoadAll = "rec_load_all"
	actionNew     = "rec_new"
	actionDelete  = "rec_delete"
)

// sendRequest performs a single GET against the endpoint with the given
// query parameters, injecting the credentials, and returns the raw response
// body. Network and timeout failures wrap ErrTransport and are terminal for
// the current operation; no retry is attempted.
func (c *Client) sendRequest(ctx context.Context, params url.Values) ([]byte, error) {
	params.Set("tkn", c.key)
	params.Set("email", c.email)

	action := params.Get("a")
	reqURL := c.endpoint + "?" + params.Encode()

	c.logger.Debug("making API request",
		slog.String("action", action),
		slog.String("zone", params.Get("z")),
	)

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveAPIRequest(action, metrics.StatusError, time.Since(start))
		return nil, fmt.Errorf("%w: executing request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveAPIRequest(action, metrics.StatusError, time.Since(start))
		return nil, fmt.Errorf("%w: reading response body: %w", ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.ObserveAPIRequest(action, metrics.StatusError, time.Since(start))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrTransport, resp.StatusCode, string(body))
	}

	metrics.ObserveAPIRequest(action, metrics.StatusOK, time.Since(start))
	return body, nil
}
