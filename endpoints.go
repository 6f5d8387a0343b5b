// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nebula

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// MaxIDLength is the maximum length of an organization, group, site or
// device identifier
const MaxIDLength = 256

// Endpoint is a named API operation with its HTTP method and path template.
// Path parameters are written in braces, e.g. "/v1/nebula/sites/{site_id}".
type Endpoint struct {
	Name   string
	Method string
	Path   string
}

// Nebula API endpoints
var (
	EndpointGroups                     = Endpoint{"GetGroups", http.MethodGet, "/v1/nebula/groups"}
	EndpointGroupOrganizations         = Endpoint{"GetOrganizationsFromGroup", http.MethodGet, "/v1/nebula/groups/{group_id}/organizations"}
	EndpointOrganizations              = Endpoint{"GetOrganizations", http.MethodGet, "/v1/nebula/organizations"}
	EndpointOrganizationInfo           = Endpoint{"GetOrganizationInfo", http.MethodGet, "/v1/nebula/organizations/{org_id}"}
	EndpointSites                      = Endpoint{"GetSites", http.MethodGet, "/v1/nebula/organizations/{org_id}/sites"}
	EndpointOrganizationDevices        = Endpoint{"GetDevicesFromOrganization", http.MethodGet, "/v1/nebula/organizations/{org_id}/devices"}
	EndpointOrganizationFirmwareStatus = Endpoint{"GetDeviceFirmwareStatusFromOrganization", http.MethodGet, "/v1/nebula/organizations/{org_id}/firmware-status"}
	EndpointSiteFirmwareStatus         = Endpoint{"GetDeviceFirmwareStatusFromSite", http.MethodGet, "/v1/nebula/sites/{site_id}/firmware-status"}
	EndpointSiteOnlineStatus           = Endpoint{"GetDevicesOnlineByType", http.MethodGet, "/v1/nebula/sites/{site_id}/online-status"}
	EndpointSiteVPNStatus              = Endpoint{"GetSiteVPNStatus", http.MethodGet, "/v1/nebula/sites/{site_id}/vpn-status"}
	EndpointSiteClients                = Endpoint{"GetSiteClients", http.MethodPost, "/v1/nebula/sites/{site_id}/clients"}
	EndpointAPClients                  = Endpoint{"GetAPClients", http.MethodPost, "/v1/nebula/sites/{site_id}/ap-clients"}
	EndpointSiteClientsV2              = Endpoint{"GetSiteClientsV2", http.MethodPost, "/v2/nebula/sites/{site_id}/clients"}
	EndpointAPClientsV2                = Endpoint{"GetAPClientsV2", http.MethodPost, "/v2/nebula/sites/{site_id}/ap-clients"}
	EndpointSwitchClientsV2            = Endpoint{"GetSWClientsV2", http.MethodPost, "/v2/nebula/sites/{site_id}/sw-clients"}
	EndpointGatewayClientsV2           = Endpoint{"GetGWClientsV2", http.MethodPost, "/v2/nebula/sites/{site_id}/gw-clients"}
	EndpointPing                       = Endpoint{"Ping", http.MethodPost, "/v1/nebula/sites/{site_id}/devices/{device_id}/ping"}
	EndpointReboot                     = Endpoint{"Reboot", http.MethodPost, "/v1/nebula/sites/{site_id}/devices/{device_id}/reboot"}
	EndpointCableTest                  = Endpoint{"CableTest", http.MethodPost, "/v1/nebula/sites/{site_id}/devices/{device_id}/cable-test"}
	EndpointConnectivity               = Endpoint{"Connectivity", http.MethodPost, "/v1/nebula/sites/{site_id}/devices/{device_id}/connectivity"}
)

// Resolve substitutes the path parameters of the template with params.
//
// Every value is validated with ValidateID and path-escaped. Resolve fails if
// a placeholder has no value or a value has no placeholder.
//
// Example:
//
//	path, err := nebula.EndpointPing.Resolve(map[string]string{
//	    "site_id":   "site_id",
//	    "device_id": "device_id",
//	})
//	// path == "/v1/nebula/sites/site_id/devices/device_id/ping"
func (e Endpoint) Resolve(params map[string]string) (string, error) {
	var b strings.Builder
	used := 0
	rest := e.Path

	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("endpoint %s: unterminated parameter in %q", e.Name, e.Path)
		}
		end += open

		name := rest[open+1 : end]
		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("endpoint %s: missing path parameter %q", e.Name, name)
		}
		if err := ValidateID(name, value); err != nil {
			return "", err
		}

		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(value))
		used++
		rest = rest[end+1:]
	}

	if used != len(params) {
		return "", fmt.Errorf("endpoint %s: %d path parameters given, template uses %d", e.Name, len(params), used)
	}

	return b.String(), nil
}

// ValidateID checks an identifier before it is placed into a request path
//
// Checks:
//   - not empty or whitespace only
//   - at most MaxIDLength bytes
//   - no null bytes, slashes or ".." sequences
func ValidateID(name, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	if len(id) > MaxIDLength {
		return fmt.Errorf("%s exceeds maximum length of %d characters", name, MaxIDLength)
	}
	if i := strings.IndexByte(id, 0); i >= 0 {
		return fmt.Errorf("%s contains null byte at position %d", name, i)
	}
	if strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("%s cannot contain path separators: %q", name, id)
	}
	if strings.Contains(id, "..") {
		return fmt.Errorf("%s contains suspicious traversal pattern '..': %q", name, id)
	}
	return nil
}
