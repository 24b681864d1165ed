// Package remote talks to the placement portal REST API. It fetches and
// mutates collections; filtering and paging happen in listquery.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/justsurfingit/placement-portal/internal/listquery"
)

var (
	// ErrNetwork covers transport failures and undecodable responses.
	ErrNetwork = errors.New("network error")
	// ErrAuth is returned for 401 and 403 responses.
	ErrAuth = errors.New("authentication failed")
)

// StatusError is any other non-2xx response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Message)
}

// AuthContext carries the caller's credentials. It is passed in explicitly
// instead of being read from ambient storage.
type AuthContext struct {
	Token     string
	CompanyID string
}

// Client is a RemoteCollectionStore over HTTP.
type Client struct {
	baseURL string
	auth    AuthContext
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient builds a client for baseURL, e.g. "http://localhost:8080/api".
func NewClient(baseURL string, auth AuthContext, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		auth:    auth,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAll returns every record of a resource such as "job-openings".
func (c *Client) FetchAll(ctx context.Context, resource string) ([]listquery.Record, error) {
	var out []listquery.Record
	if err := c.do(ctx, http.MethodGet, resource, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []listquery.Record{}
	}
	return out, nil
}

// Get fetches a single record.
func (c *Client) Get(ctx context.Context, resource, id string) (listquery.Record, error) {
	var out listquery.Record
	if err := c.do(ctx, http.MethodGet, resource+"/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts body to the resource and returns the stored record.
func (c *Client) Create(ctx context.Context, resource string, body any) (listquery.Record, error) {
	var out listquery.Record
	if err := c.do(ctx, http.MethodPost, resource, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the record with the given id.
func (c *Client) Update(ctx context.Context, resource, id string, body any) (listquery.Record, error) {
	var out listquery.Record
	if err := c.do(ctx, http.MethodPut, resource+"/"+url.PathEscape(id), body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the record with the given id.
func (c *Client) Delete(ctx context.Context, resource, id string) error {
	return c.do(ctx, http.MethodDelete, resource+"/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimLeft(path, "/"), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.auth.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.auth.Token)
	}
	if c.auth.CompanyID != "" {
		req.Header.Set("Company-ID", c.auth.CompanyID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s %s: status %d", ErrAuth, method, path, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &StatusError{Code: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decode %s %s: %v", ErrNetwork, method, path, err)
	}
	return nil
}

// errorMessage pulls the "error" field the API puts in failure bodies.
func errorMessage(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(b) == 0 {
		return ""
	}
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(b, &body) == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(b))
}
