// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nebula

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client configuration options using the functional options pattern

// BaseURL overrides the API base URL (default: https://api.nebula.zyxel.com)
//
// A trailing slash is removed.
func BaseURL(baseURL string) func(*Client) {
	return func(c *Client) {
		c.BaseURL = strings.TrimRight(baseURL, "/")
	}
}

// HTTPClient sets the underlying HTTP client
//
// Use this to configure proxies, TLS settings or transport level timeouts.
// A nil client is ignored.
func HTTPClient(httpClient *http.Client) func(*Client) {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// RequestTimeout sets a default timeout applied to every request (default: none)
//
// Without it the client adds no deadline of its own and relies on the context
// and the HTTP client configuration.
func RequestTimeout(duration time.Duration) func(*Client) {
	return func(c *Client) {
		c.RequestTimeout = duration
	}
}

// UserAgent sets the User-Agent header (default: go-nebula)
func UserAgent(userAgent string) func(*Client) {
	return func(c *Client) {
		c.UserAgent = userAgent
	}
}

// RateLimit throttles outgoing requests to perSecond requests with the given burst
//
// The Nebula API enforces per-key rate limits. Requests wait for a token
// before being sent; a cancelled context aborts the wait with a
// *TransportError. A perSecond of zero disables throttling (default).
//
// Example:
//
//	client, _ := nebula.NewClient(apiKey,
//	    nebula.RateLimit(5, 10))  // 5 requests per second, bursts of 10
func RateLimit(perSecond float64, burst int) func(*Client) {
	return func(c *Client) {
		c.rateLimit = perSecond
		c.rateBurst = burst
		if perSecond > 0 && burst > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		} else {
			c.limiter = nil
		}
	}
}

// WithLogger configures a custom logger for the client
//
// By default, the client uses NoOpLogger which discards all log messages.
// Use this option to enable logging with DefaultLogger, ZapLogger or a
// custom logger.
//
// Request bodies logged at Debug level are redacted to remove sensitive data
// (passwords, secrets, keys, tokens). The API key is never logged.
//
// Example (DefaultLogger):
//
//	logger := nebula.NewDefaultLogger(nebula.LogLevelInfo)
//	client, _ := nebula.NewClient(apiKey, nebula.WithLogger(logger))
//
// Example (zap):
//
//	zl, _ := zap.NewProduction()
//	client, _ := nebula.NewClient(apiKey, nebula.WithLogger(nebula.NewZapLogger(zl)))
func WithLogger(logger Logger) func(*Client) {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPrettyPrintLogs enables/disables JSON pretty printing in logs
//
// When enabled, JSON bodies in debug logs are indented for readability.
//
// Default: disabled (false)
func WithPrettyPrintLogs(enabled bool) func(*Client) {
	return func(c *Client) {
		c.prettyPrintLogs = enabled
	}
}

// WithMetrics records request counts and latencies in m
//
// Example:
//
//	metrics, _ := nebula.NewMetrics(prometheus.DefaultRegisterer)
//	client, _ := nebula.NewClient(apiKey, nebula.WithMetrics(metrics))
func WithMetrics(m *Metrics) func(*Client) {
	return func(c *Client) {
		c.metrics = m
	}
}

// Request modifiers for individual operations

// Timeout returns a request modifier that sets a custom timeout for the operation.
//
// This timeout takes precedence over the client's RequestTimeout. A deadline
// already set on the context still applies if it is earlier.
//
// Example:
//
//	res, err := client.CableTest(ctx, siteID, deviceID, []int{1, 2},
//	    nebula.Timeout(2*time.Minute))
func Timeout(duration time.Duration) func(*Req) {
	return func(req *Req) {
		req.Timeout = duration
	}
}

// Header returns a request modifier that adds a request header.
//
// The client sets its own headers after the modifiers run:
//   - X-ZyxelNebula-API-Key, X-Request-ID and Accept are always replaced
//   - User-Agent is replaced unless the client's UserAgent is empty
//   - Content-Type is replaced on requests with a body (every POST); on a
//     GET a custom Content-Type is sent as given
func Header(key, value string) func(*Req) {
	return func(req *Req) {
		req.Header.Add(key, value)
	}
}
