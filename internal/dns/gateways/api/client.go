// Package api is the HTTP+JSON gateway to the DNS control-plane service.
// It exposes zone, record-set, and change resources as plain method calls
// returning values or errors; there is no callback convention and no
// client-side retry, backoff, or pagination logic.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/haukened/rr-dnsctl/internal/dns/common/clock"
	"github.com/haukened/rr-dnsctl/internal/dns/common/log"
)

// Error message constants for consistent error handling
const (
	errEndpointRequired = "control-plane endpoint is required"
	errEncodeBody       = "encode request body: %w"
	errBuildRequest     = "build request: %w"
	errDoRequest        = "%s %s: %w"
	errDecodeBody       = "decode response body: %w"
)

const defaultPollInterval = 2 * time.Second

// Client is a thin client for the DNS control-plane service. Resource
// helpers (zones, record sets, changes) are methods on this one type;
// there is no resource-object hierarchy.
type Client struct {
	endpoint     string
	token        string
	http         *http.Client
	clock        clock.Clock
	log          log.Logger
	pollInterval time.Duration
}

// Options configures a Client.
type Options struct {
	// Endpoint is the base URL of the control-plane API, e.g.
	// "https://dns.example.net/v1/projects/my-project". Required.
	Endpoint string
	// Token, when set, is sent as a bearer token on every request.
	Token string
	// options to inject for testing purposes
	HTTPClient   *http.Client
	Clock        clock.Clock
	Logger       log.Logger
	PollInterval time.Duration
}

// NewClient creates a control-plane client with the specified options.
// Returns an error if the endpoint is empty.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.Endpoint) == "" {
		return nil, fmt.Errorf(errEndpointRequired)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.GetLogger()
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	return &Client{
		endpoint:     strings.TrimRight(opts.Endpoint, "/"),
		token:        opts.Token,
		http:         opts.HTTPClient,
		clock:        opts.Clock,
		log:          opts.Logger,
		pollInterval: opts.PollInterval,
	}, nil
}

// do performs one API call: marshals body (if any), sends the request, maps
// non-2xx responses to *APIError, and decodes the response into out (if any).
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf(errEncodeBody, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reqBody)
	if err != nil {
		return fmt.Errorf(errBuildRequest, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Debug(map[string]any{
		"method": method,
		"path":   path,
	}, "control-plane request")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf(errDoRequest, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiErrorFrom(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf(errDecodeBody, err)
	}
	return nil
}

// apiErrorFrom builds an *APIError from an error response. The service's
// JSON envelope is preferred; anything unparseable falls back to the raw
// body text so the caller still sees what the service said.
func apiErrorFrom(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		code := envelope.Error.Code
		if code == 0 {
			code = resp.StatusCode
		}
		return &APIError{Code: code, Message: envelope.Error.Message}
	}
	return &APIError{Code: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
}
