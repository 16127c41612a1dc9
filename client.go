package cardpointe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dvcrn/cardpointe-go/internal/logger"
)

// HTTPClient abstracts the underlying HTTP client so tests and callers
// can swap in their own implementation.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func defaultHTTPClient() HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}
}

// Client issues authenticated requests against a CardPointe site and
// classifies HTTP-level failures. It holds the only shared state of the
// library (the read-only Credentials), so it is safe for concurrent use.
type Client struct {
	creds         Credentials
	httpClient    HTTPClient
	authorization string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAuthorization overrides the default basic auth with a raw
// Authorization header value.
func WithAuthorization(header string) Option {
	return func(c *Client) { c.authorization = header }
}

// NewClient creates a transport bound to the given credentials.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		creds:      creds,
		httpClient: defaultHTTPClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Credentials returns a copy of the credentials the client was built with.
func (c *Client) Credentials() Credentials {
	return c.creds
}

// Do issues a single synchronous request. A non-nil body is marshaled
// as JSON. Statuses 400-499 and 500-599 are returned as *APIError with
// the raw response attached; 2xx/3xx responses pass through untouched.
func (c *Client) Do(method, url string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request body: %w", err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	if c.authorization != "" {
		req.Header.Set("Authorization", c.authorization)
	} else {
		req.SetBasicAuth(c.creds.Username, c.creds.Password)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	logger.Get().Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("url", url).
		Msg("dispatching request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request execution error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       respBody,
		Method:     method,
		URL:        url,
	}

	logger.Get().Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("received response")

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, &APIError{
			Message:  fmt.Sprintf("%d Client Error", resp.StatusCode),
			Response: response,
		}
	case resp.StatusCode >= 500 && resp.StatusCode < 600:
		return nil, &APIError{
			Message:  fmt.Sprintf("%d Server Error", resp.StatusCode),
			Response: response,
		}
	}

	return response, nil
}
