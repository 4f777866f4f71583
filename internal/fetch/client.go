// Package fetch implements the HTTP client for the transaction endpoint.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/flipside-id/flipside/internal/model"
)

// ErrFetchFailed is returned for any non-2xx response. The message text is
// what the UI shows, so it stays exactly "Failed to fetch data".
var ErrFetchFailed = errors.New("Failed to fetch data")

// DefaultTimeout bounds a fetch when the caller does not configure one.
const DefaultTimeout = 30 * time.Second

// Client fetches the transaction collection from a single endpoint with one
// GET per call. No retries, no caching.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a client for the given endpoint URL. A non-positive
// timeout falls back to DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch issues the GET and decodes the keyed transaction mapping. Transport
// and decode failures are wrapped with their underlying cause; any non-2xx
// status collapses to ErrFetchFailed.
func (c *Client) Fetch(ctx context.Context) (model.Collection, error) {
	var collection model.Collection

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return collection, fmt.Errorf("failed to create request: %w", err)
	}

	slog.Debug("Requesting transactions", "endpoint", c.endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return collection, fmt.Errorf("failed to fetch data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Debug("Transaction endpoint returned non-success status", "status", resp.StatusCode)
		return collection, ErrFetchFailed
	}

	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		return collection, fmt.Errorf("failed to decode response: %w", err)
	}

	slog.Debug("Fetched transactions", "count", collection.Len())
	return collection, nil
}
