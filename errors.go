// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nebula

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// MaxErrorBodyLength limits how much of an error response body is kept in
// StatusError.Error() output.
const MaxErrorBodyLength = 512

// TransportError is returned when the request never produced an HTTP response
// (DNS failure, refused connection, timeout, cancelled context) or when the
// response body could not be read.
type TransportError struct {
	// Operation name that failed
	Operation string

	// HTTP method and URL of the failed request
	Method string
	URL    string

	// Err is the underlying transport error
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("nebula: %s failed: %s %s: %v", e.Operation, e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying transport error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is returned when the API answers with a non-2xx status code.
//
// The raw response body is kept so callers can inspect vendor specific error
// payloads.
//
// Example:
//
//	_, err := client.Organization(ctx, orgID)
//	var statusErr *nebula.StatusError
//	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
//	    // organization does not exist
//	}
type StatusError struct {
	// Operation name that failed
	Operation string

	// StatusCode is the HTTP status code
	StatusCode int

	// Status is the HTTP status line text (e.g. "404 Not Found")
	Status string

	// Body is the raw response body
	Body []byte

	// Message is the error message reported by the API, if any
	Message string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("nebula: %s failed: HTTP %d: %s", e.Operation, e.StatusCode, e.Message)
	}
	body := strings.TrimSpace(string(e.Body))
	if len(body) > MaxErrorBodyLength {
		body = body[:MaxErrorBodyLength] + "...[TRUNCATED]"
	}
	if body == "" {
		return fmt.Sprintf("nebula: %s failed: HTTP %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("nebula: %s failed: HTTP %d: %s", e.Operation, e.StatusCode, body)
}

// newStatusError builds a StatusError and extracts the API error message
func newStatusError(operation string, statusCode int, status string, body []byte) *StatusError {
	return &StatusError{
		Operation:  operation,
		StatusCode: statusCode,
		Status:     status,
		Body:       body,
		Message:    errorMessage(body),
	}
}

// errorMessage looks for a human readable message in an error payload
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, key := range []string{"message", "errorMessage", "error", "error.message"} {
		v := gjson.GetBytes(body, key)
		if v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// DecodeError is returned when a successful response does not match the
// schema of the operation: invalid JSON, unexpected top-level shape, a missing
// required field, an unknown enum literal or a field of the wrong JSON type.
type DecodeError struct {
	// Operation name that failed
	Operation string

	// Field is the gjson path of the offending field (e.g. "0.devices.0.type").
	// Empty when the whole document is at fault.
	Field string

	// Message describes the mismatch
	Message string

	// Err is the underlying cause, if any (e.g. *EnumError)
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "nebula: %s response invalid", e.Operation)
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EnumError reports a literal that is not a member of an enumeration
type EnumError struct {
	// Type is the enumeration type name (e.g. "DeviceType")
	Type string

	// Value is the rejected literal
	Value string
}

// Error implements the error interface
func (e *EnumError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Type, e.Value)
}
