package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ptwebhook/ptwebhook/internal/version"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// maxResponseBody bounds how much of an error response is kept
	maxResponseBody = 64 << 10
)

// Result is the raw outcome of one webhook POST. Err is set when no HTTP
// response was received; otherwise StatusCode and Body describe it.
type Result struct {
	StatusCode int
	Body       []byte
	Err        error
	Duration   time.Duration
}

// Client posts payloads to Discord webhooks. It never retries.
type Client struct {
	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// UserAgent is sent with every request
	UserAgent string
}

// NewClient creates a client with the default timeout
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		UserAgent:  version.UserAgent(),
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Send POSTs a JSON body to webhookURL. Cancelling ctx aborts the request.
func (c *Client) Send(ctx context.Context, webhookURL string, body []byte) Result {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return Result{Err: fmt.Errorf("failed to create request: %w", err), Duration: time.Since(start)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Result{Err: err, Duration: time.Since(start)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		// The status line arrived; a broken body does not change the outcome.
		respBody = nil
	}

	return Result{
		StatusCode: resp.StatusCode,
		Body:       respBody,
		Duration:   time.Since(start),
	}
}
