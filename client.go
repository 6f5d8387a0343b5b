// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nebula

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Default client configuration values
const (
	DefaultBaseURL         = "https://api.nebula.zyxel.com"
	DefaultUserAgent       = "go-nebula"
	DefaultPrettyPrintLogs = false

	// APIKeyHeader carries the API key on every request
	APIKeyHeader = "X-ZyxelNebula-API-Key"

	// RequestIDHeader carries a random per-request id for log correlation
	RequestIDHeader = "X-Request-ID"
)

// Security limits for response handling and logging
const (
	MaxResponseSize       = 32 * 1024 * 1024 // 32MB
	MaxJSONSizeForLogging = 1 * 1024 * 1024  // 1MB limit to prevent ReDoS attacks
	MaxSensitiveFields    = 1000             // Max redaction operations to prevent DoS
)

// Logging message constants
const (
	JSONTooLargeMessage     = "[JSON TOO LARGE FOR LOGGING]"
	JSONTooManySensitiveMsg = "[JSON CONTAINS TOO MANY SENSITIVE FIELDS]"
)

// sensitiveKeys are redacted from JSON bodies before they are logged
var sensitiveKeys = []string{"password", "secret", "key", "apiKey", "token", "psk"}

// defaultRedactionPatterns contains one pattern per entry of sensitiveKeys
var defaultRedactionPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(sensitiveKeys))
	for _, key := range sensitiveKeys {
		patterns = append(patterns, regexp.MustCompile(`"`+key+`"\s*:\s*"[^"]*"`))
	}
	return patterns
}()

// Client is a Nebula Open API client.
//
// A Client holds the API key, base URL and transport settings. It has no
// mutable state after construction and is safe for concurrent use.
type Client struct {
	// BaseURL is the API root, without trailing slash
	BaseURL string

	// UserAgent is sent with every request
	UserAgent string

	// RequestTimeout is applied to every request when positive
	RequestTimeout time.Duration

	apiKey     string // unexported for security
	httpClient *http.Client

	// Client-side throttling
	rateLimit float64
	rateBurst int
	limiter   *rate.Limiter

	metrics *Metrics

	// Logging configuration
	logger            Logger
	prettyPrintLogs   bool
	redactionPatterns []*regexp.Regexp
}

// NewClient creates a new Nebula client for the given API key
//
// No request is made; configuration errors are reported immediately.
//
// Example:
//
//	client, err := nebula.NewClient(
//	    os.Getenv("NEBULA_API_KEY"),
//	    nebula.RequestTimeout(30*time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)  // Configuration error
//	}
//
//	orgs, err := client.Organizations(ctx)
func NewClient(apiKey string, opts ...func(*Client)) (*Client, error) {
	client := &Client{
		BaseURL:           DefaultBaseURL,
		UserAgent:         DefaultUserAgent,
		apiKey:            apiKey,
		httpClient:        &http.Client{},
		logger:            &NoOpLogger{},
		prettyPrintLogs:   DefaultPrettyPrintLogs,
		redactionPatterns: defaultRedactionPatterns,
	}

	for _, opt := range opts {
		opt(client)
	}

	if err := client.validateConfig(); err != nil {
		return nil, err
	}

	client.logger.Info(context.Background(), "Nebula client created",
		"base_url", client.BaseURL)

	return client, nil
}

// HasAPIKey returns true if an API key is configured
//
// This method only indicates if a key exists without exposing it.
func (c *Client) HasAPIKey() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

// validateConfig validates client configuration
//
// Validates:
//   - API key is not empty
//   - Base URL is an absolute http(s) URL
//   - Request timeout is not negative
//   - Rate limit burst is positive when a rate limit is set
func (c *Client) validateConfig() error {
	if !c.HasAPIKey() {
		return fmt.Errorf("API key cannot be empty")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("invalid base URL scheme: %q (must be http or https)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base URL: missing host")
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got: %v", c.RequestTimeout)
	}

	if c.rateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative, got: %v", c.rateLimit)
	}
	if c.rateLimit > 0 && c.rateBurst < 1 {
		return fmt.Errorf("rate limit burst must be at least 1, got: %d", c.rateBurst)
	}

	if u.Scheme == "http" {
		c.logger.Warn(context.Background(), "TLS disabled - API key is sent in clear text",
			"base_url", c.BaseURL,
			"recommendation", "Use https outside of testing environments")
	}

	return nil
}

// Get performs a GET request against path (relative to BaseURL) and returns
// the raw response. Use it for endpoints without a typed method.
func (c *Client) Get(ctx context.Context, path string, query url.Values, mods ...func(*Req)) (Res, error) {
	return c.do(ctx, "Get", http.MethodGet, path, query, nil, mods)
}

// Post performs a POST request with body against path (relative to BaseURL)
// and returns the raw response.
//
// Example:
//
//	res, err := client.Post(ctx, "/v1/nebula/sites/"+siteID+"/clients",
//	    nebula.Body{}.Set("attributes", []string{"macAddress"}))
//	macs := res.GetValue("#.macAddress").Array()
func (c *Client) Post(ctx context.Context, path string, body Body, mods ...func(*Req)) (Res, error) {
	raw, err := body.Bytes()
	if err != nil {
		return Res{}, fmt.Errorf("invalid request body: %w", err)
	}
	return c.do(ctx, "Post", http.MethodPost, path, nil, raw, mods)
}

// call resolves an endpoint and performs the request
func (c *Client) call(ctx context.Context, e Endpoint, params map[string]string, query url.Values, body *Body, mods []func(*Req)) (Res, error) {
	path, err := e.Resolve(params)
	if err != nil {
		return Res{}, err
	}

	var raw []byte
	if body != nil {
		if raw, err = body.Bytes(); err != nil {
			return Res{}, fmt.Errorf("%s: invalid request body: %w", e.Name, err)
		}
	}

	return c.do(ctx, e.Name, e.Method, path, query, raw, mods)
}

// do executes one HTTP request. It never retries.
//
// Errors:
//   - *TransportError when no response was received or the body could not be read
//   - *StatusError for non-2xx responses
func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body []byte, mods []func(*Req)) (Res, error) {
	req := c.newReq(mods)

	reqURL := c.BaseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	if err := checkContextCancellation(ctx); err != nil {
		return Res{}, &TransportError{Operation: operation, Method: method, URL: reqURL, Err: err}
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Res{}, &TransportError{Operation: operation, Method: method, URL: reqURL, Err: err}
		}
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return Res{}, fmt.Errorf("%s: failed to build request: %w", operation, err)
	}

	requestID := uuid.NewString()
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	httpReq.Header.Set(APIKeyHeader, c.apiKey)
	httpReq.Header.Set(RequestIDHeader, requestID)
	httpReq.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.UserAgent)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if body != nil {
		c.logger.Debug(ctx, "Nebula request",
			"operation", operation,
			"method", method,
			"path", path,
			"request_id", requestID,
			"body", c.prepareJSONForLogging(string(body)))
	} else {
		c.logger.Debug(ctx, "Nebula request",
			"operation", operation,
			"method", method,
			"path", path,
			"request_id", requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observe(operation, 0, time.Since(start))
		c.logger.Error(ctx, "Nebula request failed",
			"operation", operation,
			"request_id", requestID,
			"error", err.Error())
		return Res{}, &TransportError{Operation: operation, Method: method, URL: reqURL, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // Body is fully read below

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	elapsed := time.Since(start)
	c.metrics.observe(operation, resp.StatusCode, elapsed)
	if err != nil {
		c.logger.Error(ctx, "Nebula response read failed",
			"operation", operation,
			"request_id", requestID,
			"error", err.Error())
		return Res{}, &TransportError{Operation: operation, Method: method, URL: reqURL, Err: err}
	}
	if len(respBody) > MaxResponseSize {
		return Res{}, &TransportError{
			Operation: operation,
			Method:    method,
			URL:       reqURL,
			Err:       fmt.Errorf("response body exceeds maximum of %d bytes", MaxResponseSize),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := newStatusError(operation, resp.StatusCode, resp.Status, respBody)
		c.logger.Error(ctx, "Nebula request returned error status",
			"operation", operation,
			"request_id", requestID,
			"status", resp.StatusCode,
			"message", statusErr.Message)
		return Res{}, statusErr
	}

	c.logger.Debug(ctx, "Nebula response",
		"operation", operation,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration_ms", elapsed.Milliseconds(),
		"body", c.prepareJSONForLogging(string(respBody)))

	return Res{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		RequestID:  requestID,
	}, nil
}

// checkContextCancellation returns the context error if ctx is already done
func checkContextCancellation(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// prepareJSONForLogging redacts sensitive data and formats JSON for logging
//
// This method performs security checks and data sanitization:
//  1. Validates JSON size to prevent ReDoS attacks (max 1MB)
//  2. Checks sensitive field count to prevent DoS (max 1000 fields)
//  3. Redacts sensitive data (passwords, secrets, keys, tokens, PSKs)
//  4. Pretty-prints JSON if prettyPrintLogs is enabled
func (c *Client) prepareJSONForLogging(jsonStr string) string {
	if len(jsonStr) > MaxJSONSizeForLogging {
		return JSONTooLargeMessage
	}

	sensitiveCount := 0
	for _, key := range sensitiveKeys {
		sensitiveCount += strings.Count(jsonStr, `"`+key+`"`)
	}
	if sensitiveCount > MaxSensitiveFields {
		c.logger.Warn(context.Background(), "Too many sensitive fields detected",
			"count", sensitiveCount,
			"max", MaxSensitiveFields)
		return JSONTooManySensitiveMsg
	}

	redacted := c.redactSensitiveData(jsonStr)

	if c.prettyPrintLogs {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(redacted), "", "  "); err == nil {
			return buf.String()
		}
	}

	return redacted
}

// redactSensitiveData replaces sensitive string values in JSON with [REDACTED]
func (c *Client) redactSensitiveData(jsonStr string) string {
	result := jsonStr
	for i, pattern := range c.redactionPatterns {
		if i >= len(sensitiveKeys) {
			break
		}
		result = pattern.ReplaceAllString(result, `"`+sensitiveKeys[i]+`":"[REDACTED]"`)
	}
	return result
}
