//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oshokin/alarm-notify/internal/domain/alarm"
	"github.com/oshokin/alarm-notify/internal/version"
)

// contentTypeJSON is the content type of every webhook request.
const contentTypeJSON = "application/json"

// Client posts JSON bodies to a single webhook URL.
type Client struct {
	// url is the webhook destination.
	url string
	// httpClient performs the requests.
	httpClient *http.Client

	// callTimeout bounds a single call; zero means no deadline.
	callTimeout time.Duration
}

// Response summarizes a completed webhook call.
type Response struct {
	// StatusCode is the HTTP status returned by the webhook.
	StatusCode int
	// Body is the raw response body.
	Body []byte
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for webhook calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient creates a client for the given webhook URL.
// The URL is not validated here; an empty or invalid URL fails on Post.
func NewClient(url string, opts ...Option) *Client {
	client := &Client{
		url:        url,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// URL returns the webhook destination.
func (c *Client) URL() string {
	return c.url
}

// Post sends body to the webhook. Any non-nil response is returned without
// error regardless of its status code; failing to complete the exchange
// yields an error wrapping alarm.ErrTransportFailure.
func (c *Client) Post(ctx context.Context, body []byte) (*Response, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", alarm.ErrTransportFailure, err)
	}

	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: post webhook: %w", alarm.ErrTransportFailure, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", alarm.ErrTransportFailure, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       data,
	}, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
