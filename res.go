// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nebula

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Res represents a successful (2xx) Nebula API response
type Res struct {
	// StatusCode is the HTTP status code
	StatusCode int

	// Header contains the response headers
	Header http.Header

	// Body is the raw response body
	Body []byte

	// RequestID is the X-Request-ID sent with the request
	RequestID string
}

// GetValue retrieves a value from the response body using a gjson path.
//
// Example paths:
//   - "0.orgId" - organization id of the first list element
//   - "licenseOverview.NCCExpiredAt" - nested field
//   - "#.devId" - all device ids of a list
//
// Example:
//
//	res, err := client.Get(ctx, "/v1/nebula/organizations", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, id := range res.GetValue("#.orgId").Array() {
//	    fmt.Println(id.String())
//	}
func (r Res) GetValue(path string) gjson.Result {
	if len(r.Body) == 0 {
		return gjson.Result{}
	}
	return gjson.GetBytes(r.Body, path)
}

// JSON returns the response body as a string.
// Returns an empty string if the body is not valid JSON.
func (r Res) JSON() string {
	if !gjson.ValidBytes(r.Body) {
		return ""
	}
	return string(r.Body)
}

// decodeObject validates res against s and decodes it into a T. The top-level
// value must be a JSON object.
func decodeObject[T any](operation string, res Res, s schema) (T, error) {
	var out T
	doc, err := parseBody(operation, res)
	if err != nil {
		return out, err
	}
	if !doc.IsObject() {
		return out, &DecodeError{Operation: operation, Message: "expected object, got " + jsonType(doc)}
	}
	if err := validate(operation, doc, s); err != nil {
		return out, err
	}
	if err := unmarshal(operation, res.Body, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// decodeList validates res against s and decodes it into a []T. The
// top-level value must be a JSON array; the result is never nil.
func decodeList[T any](operation string, res Res, s schema) ([]T, error) {
	doc, err := parseBody(operation, res)
	if err != nil {
		return nil, err
	}
	if !doc.IsArray() {
		return nil, &DecodeError{Operation: operation, Message: "expected array, got " + jsonType(doc)}
	}
	if err := validate(operation, doc, s); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(doc.Array()))
	if err := unmarshal(operation, res.Body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func parseBody(operation string, res Res) (gjson.Result, error) {
	body := bytes.TrimSpace(res.Body)
	if len(body) == 0 {
		return gjson.Result{}, &DecodeError{Operation: operation, Message: "empty response body"}
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, &DecodeError{Operation: operation, Message: "response body is not valid JSON"}
	}
	return gjson.ParseBytes(body), nil
}

func validate(operation string, doc gjson.Result, s schema) error {
	if err := s.validate(doc, ""); err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.Operation = operation
			return decodeErr
		}
		return &DecodeError{Operation: operation, Err: err}
	}
	return nil
}

// unmarshal decodes body into v and maps encoding/json errors to *DecodeError
func unmarshal(operation string, body []byte, v any) error {
	err := json.Unmarshal(body, v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodeError{
			Operation: operation,
			Field:     indexedField(gjson.ParseBytes(body), typeErr.Field, typeErr.Value),
			Message:   fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}
	}

	var enumErr *EnumError
	if errors.As(err, &enumErr) {
		return &DecodeError{Operation: operation, Err: enumErr}
	}

	return &DecodeError{Operation: operation, Err: err}
}

// indexedField turns the dotted field of a json.UnmarshalTypeError, which
// has no array indices, into the gjson path of the first value in doc that
// sits at that field and has the offending JSON kind. value is the
// UnmarshalTypeError value, e.g. "string" or "number 1.5e12". field is
// returned unchanged when no value matches.
func indexedField(doc gjson.Result, field, value string) string {
	kind, _, _ := strings.Cut(value, " ")
	var keys []string
	if field != "" {
		keys = strings.Split(field, ".")
	}
	if path, ok := findField(doc, keys, kind, ""); ok {
		return path
	}
	return field
}

func findField(v gjson.Result, keys []string, kind, path string) (string, bool) {
	if v.IsArray() && (len(keys) > 0 || kind != "array") {
		for i, el := range v.Array() {
			if p, ok := findField(el, keys, kind, joinPath(path, strconv.Itoa(i))); ok {
				return p, true
			}
		}
		return "", false
	}

	if len(keys) == 0 {
		return path, jsonKind(v) == kind
	}
	if !v.IsObject() {
		return "", false
	}

	var found string
	var ok bool
	v.ForEach(func(key, val gjson.Result) bool {
		// encoding/json matches object keys case-insensitively
		if !strings.EqualFold(key.String(), keys[0]) {
			return true
		}
		found, ok = findField(val, keys[1:], kind, joinPath(path, key.String()))
		return !ok
	})
	return found, ok
}

// jsonKind names the JSON kind of v the way encoding/json reports it
func jsonKind(v gjson.Result) string {
	switch {
	case v.IsArray():
		return "array"
	case v.IsObject():
		return "object"
	}
	switch v.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "bool"
	}
	return ""
}
