package auralis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sandevgo/auralis/internal/core"
)

const DefaultBaseURL = "https://auralis.pythonanywhere.com/auralis/default"

// APIError is returned for any non-2xx answer from the service.
type APIError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("auralis %s: http %d: %s", e.Endpoint, e.Status, strings.TrimSpace(e.Body))
}

// Client talks to the remote memory and identity service.
type Client struct {
	client  *http.Client
	baseURL string
	recent  int
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithRecentMemories sets how many memories FetchContext asks for.
func WithRecentMemories(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.recent = n
		}
	}
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		recent:  5,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest sends body as JSON and decodes the answer into out. A 204 leaves
// out untouched.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", core.AppUserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("auralis %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Endpoint: endpoint, Status: resp.StatusCode, Body: string(data)}
	}
	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 || out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("auralis %s: decode: %w", endpoint, err)
	}
	return nil
}
