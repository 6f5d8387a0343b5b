// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nebula

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// Body provides a fluent interface for building JSON request bodies
// using sjson for path-based manipulation.
//
// The Body builder tracks errors internally to enable method chaining
// while providing error checking through String(), Bytes() or Err().
// The zero value builds an empty object.
//
// Example:
//
//	body := nebula.Body{}.
//	    Set("period", nebula.Period2Hours).
//	    Append("attributes", "macAddress").
//	    Append("attributes", "ipv4Address")
//
//	res, err := client.Post(ctx, "/v1/nebula/sites/"+siteID+"/clients", body)
type Body struct {
	// str contains the JSON string being built
	str string
	// err tracks the first error encountered during building
	err error
}

// Set sets a value at the specified JSON path and returns a new Body
//
// The path uses sjson dot notation for nested fields (e.g. "filter.type").
// Once an error occurs, all subsequent operations are no-ops that preserve it.
func (b Body) Set(path string, value any) Body {
	if b.err != nil {
		return b
	}

	result, err := sjson.Set(b.str, path, value)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("Set(%q): %w", path, err)}
	}
	return Body{str: result}
}

// SetRaw sets a raw, already encoded JSON value at the specified path
func (b Body) SetRaw(path, raw string) Body {
	if b.err != nil {
		return b
	}

	result, err := sjson.SetRaw(b.str, path, raw)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("SetRaw(%q): %w", path, err)}
	}
	return Body{str: result}
}

// Append adds value to the end of the array at path, creating the array if needed
func (b Body) Append(path string, value any) Body {
	if b.err != nil {
		return b
	}

	result, err := sjson.Set(b.str, path+".-1", value)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("Append(%q): %w", path, err)}
	}
	return Body{str: result}
}

// Delete removes a value at the specified JSON path and returns a new Body
func (b Body) Delete(path string) Body {
	if b.err != nil {
		return b
	}

	result, err := sjson.Delete(b.str, path)
	if err != nil {
		return Body{str: b.str, err: fmt.Errorf("Delete(%q): %w", path, err)}
	}
	return Body{str: result}
}

// String returns the JSON string and any error encountered during building.
// An untouched Body yields "{}".
func (b Body) String() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.str == "" {
		return "{}", nil
	}
	return b.str, nil
}

// Bytes returns the JSON as a byte slice and any error encountered during building
func (b Body) Bytes() ([]byte, error) {
	s, err := b.String()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Err returns any error that occurred during the building process
func (b Body) Err() error {
	return b.err
}
