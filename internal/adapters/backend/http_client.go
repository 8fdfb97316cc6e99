// Package backend contains query backend implementations: a live HTTP client
// and a canned offline fixture backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/example/sitedesk/internal/ports/secondary"
)

const defaultTimeout = 30 * time.Second

// HTTPBackend implements secondary.QueryBackend against the live query
// service over HTTP.
type HTTPBackend struct {
	baseURL string
	client  *http.Client
}

// NewHTTPBackend creates a new HTTPBackend for the given base URL.
func NewHTTPBackend(baseURL string) *HTTPBackend {
	return &HTTPBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// Query submits a query to the backend's chat endpoint.
func (b *HTTPBackend) Query(ctx context.Context, req secondary.QueryRequest) (*secondary.QueryResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build query request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach query backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a little of the body for diagnostics, ignore read errors
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("query backend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var result secondary.QueryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode query response: %w", err)
	}

	return &result, nil
}

// Health checks whether the backend is reachable.
func (b *HTTPBackend) Health(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to reach query backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("query backend returned %d", resp.StatusCode)
	}

	return nil
}

// Ensure HTTPBackend implements the interface
var _ secondary.QueryBackend = (*HTTPBackend)(nil)
