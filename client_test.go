// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nebula

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"
)

const testAPIKey = "dummy_api_key"

// recordedRequest is what the test server saw of the last request
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     string
}

// recorder collects requests received by a test server
type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *recorder) add(req recordedRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

func (r *recorder) last(t *testing.T) recordedRequest {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		t.Fatal("server received no request")
	}
	return r.requests[len(r.requests)-1]
}

// newTestServer starts an HTTP server that answers every request with status
// and body, and records what it received
func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec.add(recordedRequest{
			Method:   r.Method,
			Path:     r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     string(b),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

// newTestClient returns a client pointed at a test server answering with
// status and body
func newTestClient(t *testing.T, status int, body string, opts ...func(*Client)) (*Client, *recorder) {
	t.Helper()
	srv, rec := newTestServer(t, status, body)
	client, err := NewClient(testAPIKey, append([]func(*Client){BaseURL(srv.URL)}, opts...)...)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client, rec
}

// TestNewClientValidation tests client configuration validation
func TestNewClientValidation(t *testing.T) {
	tests := []struct {
		name        string
		apiKey      string
		opts        []func(*Client)
		wantErrMsg  string
		description string
	}{
		{
			name:        "empty API key",
			apiKey:      "",
			wantErrMsg:  "API key cannot be empty",
			description: "Empty API key should fail validation",
		},
		{
			name:        "whitespace API key",
			apiKey:      "   ",
			wantErrMsg:  "API key cannot be empty",
			description: "Whitespace-only API key should fail validation",
		},
		{
			name:        "unsupported scheme",
			apiKey:      testAPIKey,
			opts:        []func(*Client){BaseURL("ftp://api.nebula.zyxel.com")},
			wantErrMsg:  `invalid base URL scheme: "ftp"`,
			description: "Non-HTTP scheme should fail validation",
		},
		{
			name:        "relative base URL",
			apiKey:      testAPIKey,
			opts:        []func(*Client){BaseURL("api.nebula.zyxel.com")},
			wantErrMsg:  "invalid base URL scheme",
			description: "Base URL without scheme should fail validation",
		},
		{
			name:        "missing host",
			apiKey:      testAPIKey,
			opts:        []func(*Client){BaseURL("https://")},
			wantErrMsg:  "missing host",
			description: "Base URL without host should fail validation",
		},
		{
			name:        "unparsable base URL",
			apiKey:      testAPIKey,
			opts:        []func(*Client){BaseURL("https://[::1")},
			wantErrMsg:  "invalid base URL",
			description: "Malformed base URL should fail validation",
		},
		{
			name:        "negative request timeout",
			apiKey:      testAPIKey,
			opts:        []func(*Client){RequestTimeout(-1 * time.Second)},
			wantErrMsg:  "request timeout must not be negative",
			description: "Negative timeout should fail validation",
		},
		{
			name:        "negative rate limit",
			apiKey:      testAPIKey,
			opts:        []func(*Client){RateLimit(-1, 1)},
			wantErrMsg:  "rate limit must not be negative",
			description: "Negative rate limit should fail validation",
		},
		{
			name:        "zero burst",
			apiKey:      testAPIKey,
			opts:        []func(*Client){RateLimit(5, 0)},
			wantErrMsg:  "rate limit burst must be at least 1, got: 0",
			description: "Rate limit without burst should fail validation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.apiKey, tt.opts...)
			if err == nil {
				t.Errorf("%s: expected error but got none", tt.description)
				return
			}
			if !strings.Contains(err.Error(), tt.wantErrMsg) {
				t.Errorf("%s: expected error containing %q, got %q",
					tt.description, tt.wantErrMsg, err.Error())
			}
		})
	}
}

// TestNewClientDefaults verifies the defaults of a client built without options
func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(testAPIKey)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", client.BaseURL, DefaultBaseURL)
	}
	if client.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want %q", client.UserAgent, DefaultUserAgent)
	}
	if client.RequestTimeout != 0 {
		t.Errorf("RequestTimeout = %v, want 0", client.RequestTimeout)
	}
	if client.limiter != nil {
		t.Error("limiter should be nil without RateLimit")
	}
	if _, ok := client.logger.(*NoOpLogger); !ok {
		t.Errorf("logger = %T, want *NoOpLogger", client.logger)
	}
	if !client.HasAPIKey() {
		t.Error("HasAPIKey() = false, want true")
	}
}

// TestNewClientHTTPWarning verifies that a plain http base URL is accepted
// with a warning
func TestNewClientHTTPWarning(t *testing.T) {
	logger := &captureLogger{}
	_, err := NewClient(testAPIKey, BaseURL("http://localhost:8080"), WithLogger(logger))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if !logger.has("WARN", "TLS disabled") {
		t.Errorf("expected TLS warning, got %v", logger.messages())
	}
}

// TestRequestHeaders verifies the headers managed by the client
func TestRequestHeaders(t *testing.T) {
	t.Run("GET", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `[]`)
		if _, err := client.Groups(context.Background()); err != nil {
			t.Fatalf("Groups() error = %v", err)
		}

		got := rec.last(t)
		if v := got.Header.Get(APIKeyHeader); v != testAPIKey {
			t.Errorf("%s = %q, want %q", APIKeyHeader, v, testAPIKey)
		}
		if v := got.Header.Get("Accept"); v != "application/json" {
			t.Errorf("Accept = %q, want application/json", v)
		}
		if v := got.Header.Get("User-Agent"); v != DefaultUserAgent {
			t.Errorf("User-Agent = %q, want %q", v, DefaultUserAgent)
		}
		if v := got.Header.Get(RequestIDHeader); v == "" {
			t.Errorf("%s should be set", RequestIDHeader)
		}
		if v := got.Header.Get("Content-Type"); v != "" {
			t.Errorf("Content-Type = %q, want none on GET", v)
		}
	})

	t.Run("POST", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{"status":0}`)
		if _, err := client.Reboot(context.Background(), "site_id", "device_id"); err != nil {
			t.Fatalf("Reboot() error = %v", err)
		}

		got := rec.last(t)
		if v := got.Header.Get("Content-Type"); v != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", v)
		}
	})

	t.Run("custom headers and managed ones", func(t *testing.T) {
		custom := []func(*Req){
			Header(APIKeyHeader, "stolen"),
			Header(RequestIDHeader, "fixed-id"),
			Header("Accept", "text/plain"),
			Header("User-Agent", "custom-agent"),
			Header("Content-Type", "text/plain"),
			Header("X-Trace", "abc"),
		}

		tests := []struct {
			name            string
			opts            []func(*Client)
			post            bool
			wantUserAgent   string
			wantContentType string
		}{
			{
				name:            "GET",
				wantUserAgent:   DefaultUserAgent,
				wantContentType: "text/plain",
			},
			{
				name:            "POST",
				post:            true,
				wantUserAgent:   DefaultUserAgent,
				wantContentType: "application/json",
			},
			{
				name:            "GET with client user agent",
				opts:            []func(*Client){UserAgent("nebula-exporter/1.0")},
				wantUserAgent:   "nebula-exporter/1.0",
				wantContentType: "text/plain",
			},
			{
				name:            "GET without client user agent",
				opts:            []func(*Client){UserAgent("")},
				wantUserAgent:   "custom-agent",
				wantContentType: "text/plain",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				client, rec := newTestClient(t, http.StatusOK, `[]`, tt.opts...)

				var err error
				if tt.post {
					_, err = client.Post(context.Background(), "/v1/nebula/sites/s1/clients", Body{}, custom...)
				} else {
					_, err = client.Get(context.Background(), "/v1/nebula/groups", nil, custom...)
				}
				if err != nil {
					t.Fatalf("request error = %v", err)
				}

				got := rec.last(t)
				if v := got.Header.Values(APIKeyHeader); len(v) != 1 || v[0] != testAPIKey {
					t.Errorf("%s = %v, want [%s]", APIKeyHeader, v, testAPIKey)
				}
				if v := got.Header.Values(RequestIDHeader); len(v) != 1 || v[0] == "fixed-id" {
					t.Errorf("%s = %v, want one generated id", RequestIDHeader, v)
				}
				if v := got.Header.Values("Accept"); len(v) != 1 || v[0] != "application/json" {
					t.Errorf("Accept = %v, want [application/json]", v)
				}
				if v := got.Header.Get("User-Agent"); v != tt.wantUserAgent {
					t.Errorf("User-Agent = %q, want %q", v, tt.wantUserAgent)
				}
				if v := got.Header.Values("Content-Type"); len(v) != 1 || v[0] != tt.wantContentType {
					t.Errorf("Content-Type = %v, want [%s]", v, tt.wantContentType)
				}
				if v := got.Header.Get("X-Trace"); v != "abc" {
					t.Errorf("X-Trace = %q, want abc", v)
				}
			})
		}
	})
}

// TestRequestIDUnique verifies that every request carries a fresh request id
func TestRequestIDUnique(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		res, err := client.Get(context.Background(), "/v1/nebula/groups", nil)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		id := rec.last(t).Header.Get(RequestIDHeader)
		if id != res.RequestID {
			t.Errorf("Res.RequestID = %q, header = %q", res.RequestID, id)
		}
		if seen[id] {
			t.Errorf("request id %q reused", id)
		}
		seen[id] = true
	}
}

// TestRawGetPost tests the untyped Get and Post methods
func TestRawGetPost(t *testing.T) {
	t.Run("Get with query", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `[{"devId":"d1","currentStatus":"ONLINE"}]`)
		res, err := client.Get(context.Background(), "/v1/nebula/sites/s1/online-status",
			url.Values{"type": []string{"SW"}})
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}

		got := rec.last(t)
		if got.Method != http.MethodGet || got.Path != "/v1/nebula/sites/s1/online-status" || got.RawQuery != "type=SW" {
			t.Errorf("request = %s %s?%s", got.Method, got.Path, got.RawQuery)
		}
		if res.StatusCode != http.StatusOK {
			t.Errorf("StatusCode = %d, want 200", res.StatusCode)
		}
		if v := res.GetValue("0.currentStatus").String(); v != "ONLINE" {
			t.Errorf("GetValue(0.currentStatus) = %q, want ONLINE", v)
		}
	})

	t.Run("Post with body", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `[]`)
		body := Body{}.Append("attributes", "macAddress").Append("attributes", "vlan")
		if _, err := client.Post(context.Background(), "/v1/nebula/sites/s1/clients", body); err != nil {
			t.Fatalf("Post() error = %v", err)
		}

		got := rec.last(t)
		if got.Body != `{"attributes":["macAddress","vlan"]}` {
			t.Errorf("body = %s", got.Body)
		}
	})

	t.Run("Post with broken body", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `[]`)
		body := Body{}.Set("", "x")
		_, err := client.Post(context.Background(), "/v1/nebula/sites/s1/clients", body)
		if err == nil || !strings.Contains(err.Error(), "invalid request body") {
			t.Errorf("expected invalid request body error, got %v", err)
		}
		if rec.count() != 0 {
			t.Error("request should not be sent")
		}
	})
}

// TestStatusErrors verifies non-2xx handling
func TestStatusErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantErr     string
	}{
		{
			name:        "message field",
			status:      http.StatusNotFound,
			body:        `{"message":"organization not found"}`,
			wantMessage: "organization not found",
			wantErr:     "nebula: GetOrganizationInfo failed: HTTP 404: organization not found",
		},
		{
			name:        "errorMessage field",
			status:      http.StatusForbidden,
			body:        `{"errorMessage":"invalid API key"}`,
			wantMessage: "invalid API key",
			wantErr:     "HTTP 403: invalid API key",
		},
		{
			name:        "nested error message",
			status:      http.StatusTooManyRequests,
			body:        `{"error":{"message":"rate limit exceeded"}}`,
			wantMessage: "rate limit exceeded",
			wantErr:     "HTTP 429: rate limit exceeded",
		},
		{
			name:    "plain text body",
			status:  http.StatusBadGateway,
			body:    "upstream unavailable",
			wantErr: "HTTP 502: upstream unavailable",
		},
		{
			name:    "empty body",
			status:  http.StatusInternalServerError,
			body:    "",
			wantErr: "nebula: GetOrganizationInfo failed: HTTP 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, tt.status, tt.body)
			_, err := client.Organization(context.Background(), "org_id")

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("expected *StatusError, got %T: %v", err, err)
			}
			if statusErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, tt.status)
			}
			if statusErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", statusErr.Message, tt.wantMessage)
			}
			if string(statusErr.Body) != tt.body {
				t.Errorf("Body = %q, want %q", statusErr.Body, tt.body)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
			if rec.count() != 1 {
				t.Errorf("server saw %d requests, want 1 (no retries)", rec.count())
			}
		})
	}
}

// TestTransportErrors verifies failures without an HTTP response
func TestTransportErrors(t *testing.T) {
	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		baseURL := srv.URL
		srv.Close()

		client, err := NewClient(testAPIKey, BaseURL(baseURL))
		if err != nil {
			t.Fatalf("NewClient() error = %v", err)
		}

		_, err = client.Groups(context.Background())
		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			t.Fatalf("expected *TransportError, got %T: %v", err, err)
		}
		if transportErr.Operation != "GetGroups" {
			t.Errorf("Operation = %q, want GetGroups", transportErr.Operation)
		}
		if transportErr.Method != http.MethodGet {
			t.Errorf("Method = %q, want GET", transportErr.Method)
		}
		if transportErr.URL != baseURL+"/v1/nebula/groups" {
			t.Errorf("URL = %q", transportErr.URL)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `[]`)
		_, err := client.Groups(canceledContext())

		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			t.Fatalf("expected *TransportError, got %T: %v", err, err)
		}
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if rec.count() != 0 {
			t.Error("request should not be sent with a canceled context")
		}
	})

	t.Run("request timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		t.Cleanup(srv.Close)
		t.Cleanup(func() { close(release) })

		client, err := NewClient(testAPIKey, BaseURL(srv.URL), RequestTimeout(5*time.Second))
		if err != nil {
			t.Fatalf("NewClient() error = %v", err)
		}

		start := time.Now()
		_, err = client.Groups(context.Background(), Timeout(50*time.Millisecond))
		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			t.Fatalf("expected *TransportError, got %T: %v", err, err)
		}
		if elapsed := time.Since(start); elapsed > 3*time.Second {
			t.Errorf("request took %v, per-request timeout was not applied", elapsed)
		}
	})
}

// TestRateLimit verifies client-side throttling
func TestRateLimit(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`, RateLimit(1, 1))

	if _, err := client.Groups(context.Background()); err != nil {
		t.Fatalf("first Groups() error = %v", err)
	}

	// The burst is spent; the next token is a second away
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := client.Groups(ctx)

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError from limiter, got %T: %v", err, err)
	}
	if rec.count() != 1 {
		t.Errorf("server saw %d requests, want 1", rec.count())
	}
}

// TestResponseSizeLimit verifies that oversized bodies are rejected
func TestResponseSizeLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large response test in short mode")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chunk := strings.Repeat(" ", 1024*1024)
		_, _ = io.WriteString(w, "[")
		for i := 0; i <= MaxResponseSize/len(chunk); i++ {
			if _, err := io.WriteString(w, chunk); err != nil {
				return
			}
		}
		_, _ = io.WriteString(w, "]")
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(testAPIKey, BaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	_, err = client.Groups(context.Background())
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("Error() = %q", err.Error())
	}
}

// TestRedactSensitiveData verifies redaction of logged bodies
func TestRedactSensitiveData(t *testing.T) {
	client := &Client{logger: &NoOpLogger{}, redactionPatterns: defaultRedactionPatterns}

	tests := []struct {
		name       string
		input      string
		wantKeep   []string
		wantRemove []string
	}{
		{
			name:       "psk",
			input:      `{"name":"Guest","psk":"hunter2"}`,
			wantKeep:   []string{`"name":"Guest"`, `"psk":"[REDACTED]"`},
			wantRemove: []string{"hunter2"},
		},
		{
			name:       "token with spacing",
			input:      `{"token" : "abc123", "isDone": true}`,
			wantKeep:   []string{`"token":"[REDACTED]"`, `"isDone": true`},
			wantRemove: []string{"abc123"},
		},
		{
			name:       "apiKey and password",
			input:      `{"apiKey":"k-1","password":"p-1","target":"8.8.8.8"}`,
			wantKeep:   []string{`"target":"8.8.8.8"`},
			wantRemove: []string{"k-1", "p-1"},
		},
		{
			name:     "nothing sensitive",
			input:    `{"period":"2h"}`,
			wantKeep: []string{`{"period":"2h"}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := client.prepareJSONForLogging(tt.input)
			for _, s := range tt.wantKeep {
				if !strings.Contains(got, s) {
					t.Errorf("result %q should contain %q", got, s)
				}
			}
			for _, s := range tt.wantRemove {
				if strings.Contains(got, s) {
					t.Errorf("result %q should not contain %q", got, s)
				}
			}
		})
	}
}

// TestPrepareJSONForLogging_Limits verifies the size and field count guards
func TestPrepareJSONForLogging_Limits(t *testing.T) {
	client := &Client{logger: &NoOpLogger{}, redactionPatterns: defaultRedactionPatterns}

	large := `{"data":"` + strings.Repeat("x", MaxJSONSizeForLogging) + `"}`
	if got := client.prepareJSONForLogging(large); got != JSONTooLargeMessage {
		t.Errorf("large body: got %d bytes, want %q", len(got), JSONTooLargeMessage)
	}

	var b strings.Builder
	b.WriteString("[")
	for i := 0; i <= MaxSensitiveFields; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"token":"t"}`)
	}
	b.WriteString("]")
	if got := client.prepareJSONForLogging(b.String()); got != JSONTooManySensitiveMsg {
		t.Errorf("many sensitive fields: got %q, want %q", got, JSONTooManySensitiveMsg)
	}
}

// TestPrepareJSONForLogging_PrettyPrint verifies indentation of logged bodies
func TestPrepareJSONForLogging_PrettyPrint(t *testing.T) {
	client := &Client{logger: &NoOpLogger{}, redactionPatterns: defaultRedactionPatterns, prettyPrintLogs: true}

	got := client.prepareJSONForLogging(`{"target":"8.8.8.8","token":"abc"}`)
	want := "{\n  \"target\": \"8.8.8.8\",\n  \"token\": \"[REDACTED]\"\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got := client.prepareJSONForLogging("not json"); got != "not json" {
		t.Errorf("invalid JSON should be logged as is, got %q", got)
	}
}

// TestAPIKeyNeverLogged verifies that a full debug log of a request never
// contains the API key
func TestAPIKeyNeverLogged(t *testing.T) {
	logger := &captureLogger{}
	client, _ := newTestClient(t, http.StatusOK,
		`{"token":"secret-token","isDone":true,"results":[]}`,
		WithLogger(logger))

	if _, err := client.Ping(context.Background(), "site_id", "device_id", "8.8.8.8"); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	for _, m := range logger.messages() {
		if strings.Contains(m, testAPIKey) {
			t.Errorf("API key leaked in log: %s", m)
		}
		if strings.Contains(m, "secret-token") {
			t.Errorf("token leaked in log: %s", m)
		}
	}
	if !logger.has("DEBUG", "Nebula request") || !logger.has("DEBUG", "Nebula response") {
		t.Errorf("expected request and response debug logs, got %v", logger.messages())
	}
}

func canceledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
