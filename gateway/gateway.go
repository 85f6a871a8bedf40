// Package gateway is the single HTTP access point of the kiosk client.
// Every operation shapes its request the same way and collapses every
// failure into *Error, so callers never deal with raw transport errors.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const DefaultBaseURL = "http://localhost:3000"

const requestTimeout = 10 * time.Second

type Client struct {
	baseURL string
	doer    Doer
}

func New(baseURL string, mws ...Middleware) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	hc := &http.Client{Timeout: requestTimeout}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    chain(hc, mws...),
	}
}

// NewFromEnv reads the base endpoint from API_BASE_URL, falling back to
// DefaultBaseURL.
func NewFromEnv(mws ...Middleware) *Client {
	return New(os.Getenv("API_BASE_URL"), mws...)
}

// WithToken returns a client that sends the bearer token on every
// request. Used for the admin CRUD surface after login.
func (c *Client) WithToken(token string) *Client {
	return &Client{
		baseURL: c.baseURL,
		doer:    Header("Authorization", "Bearer "+token)(c.doer),
	}
}

// do runs one round trip: JSON request, pipeline, unwrap body into out.
// Any failure returns a *Error; there is no other error shape.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: transportMessage(err), Err: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &Error{Message: transportMessage(err), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		// no response received: transport error, no status
		return &Error{Message: transportMessage(err), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: transportMessage(err), Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return serverError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Status: resp.StatusCode, Message: transportMessage(err), Err: err}
	}
	return nil
}

// serverError prefers the server-provided message field, then falls
// back to a generic status line.
func serverError(status int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &Error{Status: status, Message: payload.Message}
	}
	return &Error{Status: status, Message: fmt.Sprintf("request failed with status code %d", status)}
}
