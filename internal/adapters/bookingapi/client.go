package bookingapi

// Package bookingapi is the HTTP client for the remote event-booking API.
// All business decisions (inventory, pricing, authorization) happen on the
// server; this client only shapes requests and decodes responses.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// basePath is the API version prefix shared by every endpoint.
const basePath = "/api/v1"

// maxErrorBody bounds how much of an error response is retained.
const maxErrorBody = 4 << 10

// Config holds configuration for the booking API client.
type Config struct {
	// BaseURL is the backend host, e.g. "http://localhost:8000".
	// The /api/v1 prefix is appended internally.
	BaseURL string

	// HTTPClient is optional; a 30s-timeout client is used when nil.
	HTTPClient *http.Client
}

// Client talks to the booking API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	oauth   *oauth2.Config
}

// NewClient constructs a booking API client from Config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	base := strings.TrimSuffix(cfg.BaseURL, "/") + basePath

	return &Client{
		baseURL: base,
		http:    httpClient,
		// The login endpoint is a password-grant token endpoint: it takes a
		// form-urlencoded username/password body (not JSON) and answers with
		// {access_token, token_type}.
		oauth: &oauth2.Config{
			Endpoint: oauth2.Endpoint{
				TokenURL:  base + "/auth/login",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
	}, nil
}

// apiRequest groups the varying parts of one API call.
type apiRequest struct {
	Method string
	Path   string
	Token  string // empty for unauthenticated endpoints
	Body   any    // JSON-encoded when non-nil
}

// do issues one request and decodes the response into out (ignored when
// out is nil). The bearer header is attached here and nowhere else.
func (c *Client) do(ctx context.Context, req apiRequest, out any) error {
	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.Path, decodeErr)
	}
	return nil
}
