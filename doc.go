// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

// Package nebula provides a typed client for the Zyxel Nebula Open API,
// the cloud management API for Nebula access points, switches and gateways.
//
// Every API operation is one method on Client. Each method resolves an
// endpoint template, optionally builds a JSON body, sends one HTTPS request
// with the API key header, and decodes the JSON response into typed records.
// Enumerated fields (device type, status, mode, ...) are decoded into string
// types that reject unknown literals.
//
// # Quick Start
//
//	client, err := nebula.NewClient(os.Getenv("NEBULA_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	orgs, err := client.Organizations(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, org := range orgs {
//	    devices, err := client.OrganizationDevices(ctx, org.OrgID)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, d := range devices {
//	        fmt.Printf("%s %s %s\n", d.SiteID, d.Name, d.Type)
//	    }
//	}
//
// # Error Handling
//
// The client never retries. Failures are reported as one of three types:
//
//   - *TransportError: no HTTP response (DNS, connection, timeout, cancellation)
//   - *StatusError: the API answered with a non-2xx status
//   - *DecodeError: the response did not match the expected schema
//
// Use errors.As to tell them apart:
//
//	_, err := client.Organization(ctx, orgID)
//	var statusErr *nebula.StatusError
//	var decodeErr *nebula.DecodeError
//	switch {
//	case errors.As(err, &statusErr):
//	    fmt.Println("HTTP", statusErr.StatusCode, statusErr.Message)
//	case errors.As(err, &decodeErr):
//	    fmt.Println("bad field", decodeErr.Field)
//	}
//
// # Raw Requests
//
// Endpoints without a typed method can be called with Get and Post; the
// response is queried with gjson paths:
//
//	res, err := client.Get(ctx, "/v1/nebula/organizations", nil)
//	name := res.GetValue("0.name").String()
//
// # Thread Safety
//
// A Client is immutable after NewClient and safe for concurrent use.
//
// # References
//
//   - Nebula Open API: https://api.nebula.zyxel.com
//   - gjson: https://github.com/tidwall/gjson
//   - sjson: https://github.com/tidwall/sjson
package nebula
