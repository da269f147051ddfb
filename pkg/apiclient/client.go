// Package apiclient is a thin JSON client for the parcel-storage REST API.
// It attaches the session's bearer credential to every request and maps the
// auth-related status codes to the shared sentinel errors, so callers can
// react the same way regardless of which endpoint rejected them.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mirpur-express/internal/models"

	"golang.org/x/oauth2"
)

// Client calls the remote API. It holds no request state; one instance is
// shared by all modules.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         oauth2.TokenSource
	onUnauthorized func()
}

// New creates a client with a default timeout. tokens supplies the bearer
// credential; an empty access token means the request goes out anonymous.
func New(baseURL string, tokens oauth2.TokenSource) *Client {
	return NewWithHTTPClient(baseURL, tokens, &http.Client{Timeout: 10 * time.Second})
}

// NewWithHTTPClient allows injecting the underlying http.Client, mainly so
// tests can swap the transport.
func NewWithHTTPClient(baseURL string, tokens oauth2.TokenSource, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
	}
}

// OnUnauthorized registers a hook fired when the API answers 401. The session
// layer uses it to log the user out.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient.do: encode body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("apiclient.do: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return fmt.Errorf("apiclient.do: credential source: %w", err)
		}
		if token.AccessToken != "" {
			req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient.do: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return models.ErrInvalidToken
	case resp.StatusCode == http.StatusForbidden:
		return models.ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		return models.ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return models.ErrConflict
	case resp.StatusCode >= 400:
		return fmt.Errorf("apiclient.do: %s %s: %s", method, path, apiMessage(resp))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("apiclient.do: decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// apiMessage pulls the server's error message out of the response body,
// falling back to the HTTP status line.
func apiMessage(resp *http.Response) string {
	var apiErr models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		return fmt.Sprintf("%s (status %d)", apiErr.Message, resp.StatusCode)
	}
	return resp.Status
}
