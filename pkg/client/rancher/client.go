// Package rancher provides the HTTP client for the Rancher v3 API and the
// per-cluster Kubernetes proxy. All requests carry bearer authentication and
// flow through a shared retrying transport; listing endpoints are walked
// page by page following Norman's cursor links.
package rancher

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/futuretea/rancher-api-mcp-server/pkg/config"
	urlutil "github.com/futuretea/rancher-api-mcp-server/pkg/util/url"
)

// Client is an authenticated HTTP client for a single Rancher server.
// It is safe for concurrent use and immutable after construction.
type Client struct {
	baseURL    string
	token      string
	policy     RetryPolicy
	httpClient *http.Client
}

// NewClient creates a Rancher API client from the static configuration,
// using the default retry policy for the configured retry budget.
func NewClient(cfg *config.StaticConfig) (*Client, error) {
	return NewClientWithPolicy(cfg, DefaultRetryPolicy(cfg.MaxRetries))
}

// NewClientWithPolicy creates a Rancher API client with an explicit retry
// policy. Tests substitute a policy with a recording sleep function.
func NewClientWithPolicy(cfg *config.StaticConfig, policy RetryPolicy) (*Client, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
	}

	if cfg.RancherCABundle != "" {
		pem, err := os.ReadFile(cfg.RancherCABundle)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA bundle %s: %w", cfg.RancherCABundle, err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in CA bundle %s", cfg.RancherCABundle)
		}
		transport.TLSClientConfig = &tls.Config{RootCAs: pool}
	}

	return &Client{
		baseURL: urlutil.NormalizeRancherURL(cfg.RancherServerURL),
		token:   cfg.RancherToken,
		policy:  policy,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   time.Duration(cfg.HTTPTimeout) * time.Second,
		},
	}, nil
}

// BaseURL returns the normalized Rancher server URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases pooled connections held by the underlying transport.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// APIError is a non-success HTTP response from the Rancher server.
type APIError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rancher API request to %s failed: %s", e.URL, e.Status)
}

// do issues a single logical request, retrying transport failures and
// retryable status codes according to the client's retry policy. Responses
// with non-retryable statuses are returned as-is; the caller decides how to
// treat them. After the retry budget is exhausted the last failure is
// surfaced.
func (c *Client) do(ctx context.Context, method, rawURL string) (*http.Response, error) {
	var lastErr error
	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		if attempt > 1 {
			if err := c.policy.Sleep(ctx, c.policy.Backoff(attempt-1)); err != nil {
				return nil, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build request for %s: %w", rawURL, err)
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if c.policy.IsRetryable(resp.StatusCode) {
			lastErr = &APIError{StatusCode: resp.StatusCode, Status: resp.Status, URL: rawURL}
			drainBody(resp.Body)
			resp.Body.Close()
			continue
		}

		return resp, nil
	}

	return nil, fmt.Errorf("request %s %s failed after %d attempts: %w", method, rawURL, c.policy.MaxAttempts, lastErr)
}

// getJSON performs a retried GET against an absolute URL and decodes the
// JSON body into out. Any non-2xx status that survived the retry loop is
// returned as an *APIError.
func (c *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	resp, err := c.do(ctx, http.MethodGet, rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		drainBody(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status, URL: rawURL}
	}

	if out == nil {
		drainBody(resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", rawURL, err)
	}
	return nil
}

// Get performs an authenticated GET for a path under the Rancher server URL
// (e.g. "/v3/clusters") and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.getJSON(ctx, c.absoluteURL(path), out)
}

// absoluteURL joins a server-relative path onto the base URL.
func (c *Client) absoluteURL(path string) string {
	return c.baseURL + "/" + strings.TrimPrefix(path, "/")
}

// drainBody discards a response body so the connection can be reused by the
// pool. Closing is left to the caller.
func drainBody(body io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
}
