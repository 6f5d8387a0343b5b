// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nebula

import (
	"net/http"
	"time"
)

// Req represents a Nebula request modifier
//
// This struct is used to apply request-specific options via functional modifiers.
// Operation parameters (identifiers, filters) are passed directly to methods.
//
// Example:
//
//	// List organizations with a 10 second deadline and an extra header
//	orgs, err := client.Organizations(ctx,
//	    nebula.Timeout(10*time.Second),
//	    nebula.Header("X-Trace", "abc"))
type Req struct {
	// Timeout is the request-specific timeout
	// Overrides the client RequestTimeout if set
	Timeout time.Duration

	// Header holds additional request headers
	Header http.Header
}

// newReq applies the modifiers on top of the client defaults
func (c *Client) newReq(mods []func(*Req)) *Req {
	req := &Req{
		Timeout: c.RequestTimeout,
		Header:  http.Header{},
	}
	for _, mod := range mods {
		if mod != nil {
			mod(req)
		}
	}
	return req
}
