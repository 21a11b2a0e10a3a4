// Package apiclient implements the HTTP contracts in internal/port against
// the billing backend. All state lives server-side; this package only moves
// typed records over the wire and enforces the response shapes at the
// boundary.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"medibill/internal/config"
	"medibill/internal/domain"
)

// TokenSource supplies the current bearer token; empty means unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is the single transport shared by all endpoint groups.
type Client struct {
	baseURL     string
	http        *http.Client
	tokens      TokenSource
	loading     *LoadingCounter
	logRequests bool
}

// requestOptions carries per-call flags.
type requestOptions struct {
	skipLoading bool
}

// Option customizes a single request.
type Option func(*requestOptions)

// WithoutLoading exempts a request from the loading indicator, used for
// background typeahead searches that must not raise the blocking overlay.
func WithoutLoading() Option {
	return func(o *requestOptions) { o.skipLoading = true }
}

// New creates a Client from config. tokens and loading may be nil.
func New(cfg config.APIConfig, tokens TokenSource, loading *LoadingCounter) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:     cfg.BaseURL,
		http:        &http.Client{Timeout: timeout},
		tokens:      tokens,
		loading:     loading,
		logRequests: cfg.RequestLogging,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// apiErrorBody is the error shape the backend returns on failures.
type apiErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do issues one request and decodes the JSON response body into out (unless
// out is nil). It returns the raw response so callers can read headers.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, opts ...Option) (*http.Response, error) {
	var ro requestOptions
	for _, opt := range opts {
		opt(&ro)
	}

	if c.baseURL == "" {
		return nil, domain.ErrBaseURLMissing
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: marshal %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if c.loading != nil && !ro.skipLoading {
		c.loading.Add()
		defer c.loading.Done()
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if c.logRequests {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		log.Printf("[%s] %s %s %d %s", req.Header.Get("X-Request-ID"), method, path, status, time.Since(start))
	}
	if err != nil {
		return nil, fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, c.errorFromResponse(resp, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp, fmt.Errorf("apiclient: decode %s %s: %w", method, path, err)
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}
	return resp, nil
}

// errorFromResponse maps a non-2xx response onto a domain sentinel wrapped in
// an APIError carrying the backend's code and message.
func (c *Client) errorFromResponse(resp *http.Response, method, path string) error {
	var eb apiErrorBody
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(data, &eb)

	msg := eb.Message
	if msg == "" {
		msg = eb.Error
	}
	if msg == "" {
		msg = strings.TrimSpace(string(data))
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		sentinel = domain.ErrUnauthorized
	case http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case http.StatusNotFound:
		sentinel = domain.ErrNotFound
	}

	return &domain.APIError{
		StatusCode: resp.StatusCode,
		Code:       eb.Code,
		Message:    fmt.Sprintf("%s %s: %s", method, path, msg),
		Err:        sentinel,
	}
}
