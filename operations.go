// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nebula

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Organizations and groups

// Groups lists the groups the API key has access to
func (c *Client) Groups(ctx context.Context, mods ...func(*Req)) ([]Group, error) {
	res, err := c.call(ctx, EndpointGroups, nil, nil, nil, mods)
	if err != nil {
		return nil, err
	}
	return decodeList[Group](EndpointGroups.Name, res, groupSchema)
}

// GroupOrganizations lists the organizations of a group
func (c *Client) GroupOrganizations(ctx context.Context, groupID string, mods ...func(*Req)) ([]OrgBaseInfo, error) {
	res, err := c.call(ctx, EndpointGroupOrganizations, map[string]string{"group_id": groupID}, nil, nil, mods)
	if err != nil {
		return nil, err
	}
	return decodeList[OrgBaseInfo](EndpointGroupOrganizations.Name, res, orgBaseInfoSchema)
}

// Organizations lists the organizations the API key has access to
//
// Example:
//
//	orgs, err := client.Organizations(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, org := range orgs {
//	    fmt.Printf("%s (%s) mode=%s\n", org.Name, org.OrgID, org.Mode)
//	}
func (c *Client) Organizations(ctx context.Context, mods ...func(*Req)) ([]OrgBaseInfo, error) {
	res, err := c.call(ctx, EndpointOrganizations, nil, nil, nil, mods)
	if err != nil {
		return nil, err
	}
	return decodeList[OrgBaseInfo](EndpointOrganizations.Name, res, orgBaseInfoSchema)
}

// Organization returns the details of an organization
func (c *Client) Organization(ctx context.Context, orgID string, mods ...func(*Req)) (Org, error) {
	res, err := c.call(ctx, EndpointOrganizationInfo, map[string]string{"org_id": orgID}, nil, nil, mods)
	if err != nil {
		return Org{}, err
	}
	return decodeObject[Org](EndpointOrganizationInfo.Name, res, orgSchema)
}

// Sites lists the sites of an organization
func (c *Client) Sites(ctx context.Context, orgID string, mods ...func(*Req)) ([]Site, error) {
	res, err := c.call(ctx, EndpointSites, map[string]string{"org_id": orgID}, nil, nil, mods)
	if err != nil {
		return nil, err
	}
	return decodeList[Site](EndpointSites.Name, res, siteSchema)
}

// Devices and status

// OrganizationDevices lists the devices of an organization
//
// The API groups devices per site; the result is flattened in API order and
// each Device carries the SiteID of its group.
func (c *Client) OrganizationDevices(ctx context.Context, orgID string, mods ...func(*Req)) ([]Device, error) {
	res, err := c.call(ctx, EndpointOrganizationDevices, map[string]string{"org_id": orgID}, nil, nil, mods)
	if err != nil {
		return nil, err
	}

	groups, err := decodeList[siteDevices](EndpointOrganizationDevices.Name, res, siteDevicesSchema)
	if err != nil {
		return nil, err
	}

	n := 0
	for _, g := range groups {
		n += len(g.Devices)
	}
	devices := make([]Device, 0, n)
	for _, g := range groups {
		for _, d := range g.Devices {
			d.SiteID = g.SiteID
			devices = append(devices, d)
		}
	}
	return devices, nil
}

// OrganizationFirmwareStatus lists the firmware state of every device of an organization
func (c *Client) OrganizationFirmwareStatus(ctx context.Context, orgID string, mods ...func(*Req)) ([]DeviceFirmwareStatus, error) {
	res, err := c.call(ctx, EndpointOrganizationFirmwareStatus, map[string]string{"org_id": orgID}, nil, nil, mods)
	if err != nil {
		return nil, err
	}
	return decodeList[DeviceFirmwareStatus](EndpointOrganizationFirmwareStatus.Name, res, firmwareStatusSchema)
}

// SiteFirmwareStatus lists the firmware state of every device of a site
func (c *Client) SiteFirmwareStatus(ctx context.Context, siteID string, mods ...func(*Req)) ([]DeviceFirmwareStatus, error) {
	res, err := c.call(ctx, EndpointSiteFirmwareStatus, map[string]string{"site_id": siteID}, nil, nil, mods)
	if err != nil {
		return nil, err
	}
	return decodeList[DeviceFirmwareStatus](EndpointSiteFirmwareStatus.Name, res, firmwareStatusSchema)
}

// SiteOnlineStatus lists the online state of the devices of one type in a site
//
// Example:
//
//	aps, err := client.SiteOnlineStatus(ctx, siteID, nebula.DeviceTypeAP)
//	// GET /v1/nebula/sites/{site_id}/online-status?type=AP
func (c *Client) SiteOnlineStatus(ctx context.Context, siteID string, deviceType DeviceType, mods ...func(*Req)) ([]DeviceOnlineStatus, error) {
	if !deviceType.IsValid() {
		return nil, fmt.Errorf("%s: %w", EndpointSiteOnlineStatus.Name, &EnumError{Type: "DeviceType", Value: string(deviceType)})
	}
	query := url.Values{"type": []string{deviceType.String()}}
	res, err := c.call(ctx, EndpointSiteOnlineStatus, map[string]string{"site_id": siteID}, query, nil, mods)
	if err != nil {
		return nil, err
	}
	return decodeList[DeviceOnlineStatus](EndpointSiteOnlineStatus.Name, res, onlineStatusSchema)
}

// SiteVPNStatus returns the VPN overview of a site
func (c *Client) SiteVPNStatus(ctx context.Context, siteID string, mods ...func(*Req)) (SiteVPNStatus, error) {
	res, err := c.call(ctx, EndpointSiteVPNStatus, map[string]string{"site_id": siteID}, nil, nil, mods)
	if err != nil {
		return SiteVPNStatus{}, err
	}
	return decodeObject[SiteVPNStatus](EndpointSiteVPNStatus.Name, res, vpnStatusSchema)
}

// Clients

// SiteClients lists the clients of a site with the requested attributes
//
// An empty attribute list requests every attribute.
//
// Example:
//
//	clients, err := client.SiteClients(ctx, siteID, []nebula.ClientAttribute{
//	    nebula.ClientAttrMACAddress,
//	    nebula.ClientAttrIPv4,
//	})
func (c *Client) SiteClients(ctx context.Context, siteID string, attributes []ClientAttribute, mods ...func(*Req)) ([]GenericClient, error) {
	if len(attributes) == 0 {
		attributes = ValidClientAttributes
	}
	body, err := attributesBody(EndpointSiteClients.Name, attributes)
	if err != nil {
		return nil, err
	}
	res, err := c.call(ctx, EndpointSiteClients, map[string]string{"site_id": siteID}, nil, &body, mods)
	if err != nil {
		return nil, err
	}
	return decodeList[GenericClient](EndpointSiteClients.Name, res, genericClientSchema)
}

// APClients lists the wireless clients of a site with the requested attributes
//
// An empty attribute list requests every attribute.
func (c *Client) APClients(ctx context.Context, siteID string, attributes []APClientAttribute, mods ...func(*Req)) ([]APClient, error) {
	if len(attributes) == 0 {
		attributes = ValidAPClientAttributes
	}
	body, err := attributesBody(EndpointAPClients.Name, attributes)
	if err != nil {
		return nil, err
	}
	res, err := c.call(ctx, EndpointAPClients, map[string]string{"site_id": siteID}, nil, &body, mods)
	if err != nil {
		return nil, err
	}
	return decodeList[APClient](EndpointAPClients.Name, res, apClientSchema)
}

// SiteClientsV2 lists the clients of a site seen during period
func (c *Client) SiteClientsV2(ctx context.Context, siteID string, period ClientPeriod, mods ...func(*Req)) (Clients[GenericClient], error) {
	return clientsV2[GenericClient](ctx, c, EndpointSiteClientsV2, siteID, period, genericClientSchema, mods)
}

// APClientsV2 lists the wireless clients of a site seen during period
func (c *Client) APClientsV2(ctx context.Context, siteID string, period ClientPeriod, mods ...func(*Req)) (Clients[APClient], error) {
	return clientsV2[APClient](ctx, c, EndpointAPClientsV2, siteID, period, apClientSchema, mods)
}

// SwitchClientsV2 lists the wired clients seen by the switches of a site during period
func (c *Client) SwitchClientsV2(ctx context.Context, siteID string, period ClientPeriod, mods ...func(*Req)) (Clients[SWClient], error) {
	return clientsV2[SWClient](ctx, c, EndpointSwitchClientsV2, siteID, period, swClientSchema, mods)
}

// GatewayClientsV2 lists the clients seen by the gateway of a site during period
func (c *Client) GatewayClientsV2(ctx context.Context, siteID string, period ClientPeriod, mods ...func(*Req)) (Clients[GWClient], error) {
	return clientsV2[GWClient](ctx, c, EndpointGatewayClientsV2, siteID, period, gwClientSchema, mods)
}

// clientsV2 performs a v2 client query and decodes the {KeyFields, data} envelope
func clientsV2[T any](ctx context.Context, c *Client, e Endpoint, siteID string, period ClientPeriod, data schema, mods []func(*Req)) (Clients[T], error) {
	body, err := periodBody(e.Name, period)
	if err != nil {
		return Clients[T]{}, err
	}
	res, err := c.call(ctx, e, map[string]string{"site_id": siteID}, nil, &body, mods)
	if err != nil {
		return Clients[T]{}, err
	}
	out, err := decodeObject[Clients[T]](e.Name, res, envelopeSchema(data))
	if err != nil {
		return Clients[T]{}, err
	}
	if out.KeyFields == nil {
		out.KeyFields = []string{}
	}
	if out.Data == nil {
		out.Data = []T{}
	}
	return out, nil
}

// Device actions

// Ping starts a ping from a device towards target
//
// Example:
//
//	res, err := client.Ping(ctx, siteID, deviceID, "8.8.8.8")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range res.Results {
//	    fmt.Printf("seq=%d loss=%v time=%vms\n", r.Seq, r.Loss, r.ElapsedTime)
//	}
func (c *Client) Ping(ctx context.Context, siteID, deviceID, target string, mods ...func(*Req)) (PingResp, error) {
	if strings.TrimSpace(target) == "" {
		return PingResp{}, fmt.Errorf("%s: target cannot be empty", EndpointPing.Name)
	}
	body := Body{}.Set("target", target)
	res, err := c.call(ctx, EndpointPing, deviceParams(siteID, deviceID), nil, &body, mods)
	if err != nil {
		return PingResp{}, err
	}
	return decodeObject[PingResp](EndpointPing.Name, res, pingSchema)
}

// Reboot reboots a device
func (c *Client) Reboot(ctx context.Context, siteID, deviceID string, mods ...func(*Req)) (GenericResp, error) {
	body := Body{}
	res, err := c.call(ctx, EndpointReboot, deviceParams(siteID, deviceID), nil, &body, mods)
	if err != nil {
		return GenericResp{}, err
	}
	return decodeObject[GenericResp](EndpointReboot.Name, res, genericRespSchema)
}

// CableTest runs a cable diagnostic on the given switch ports
func (c *Client) CableTest(ctx context.Context, siteID, deviceID string, ports []int, mods ...func(*Req)) (CableTestResp, error) {
	if len(ports) == 0 {
		return CableTestResp{}, fmt.Errorf("%s: ports cannot be empty", EndpointCableTest.Name)
	}
	for i, p := range ports {
		if p < 0 {
			return CableTestResp{}, fmt.Errorf("%s: invalid port %d at index %d", EndpointCableTest.Name, p, i)
		}
	}
	body := Body{}.Set("ports", ports)
	res, err := c.call(ctx, EndpointCableTest, deviceParams(siteID, deviceID), nil, &body, mods)
	if err != nil {
		return CableTestResp{}, err
	}
	return decodeObject[CableTestResp](EndpointCableTest.Name, res, cableTestSchema)
}

// Connectivity returns the connectivity history of a device during period
func (c *Client) Connectivity(ctx context.Context, siteID, deviceID string, period ClientPeriod, mods ...func(*Req)) ([]Connectivity, error) {
	body, err := periodBody(EndpointConnectivity.Name, period)
	if err != nil {
		return nil, err
	}
	res, err := c.call(ctx, EndpointConnectivity, deviceParams(siteID, deviceID), nil, &body, mods)
	if err != nil {
		return nil, err
	}
	return decodeList[Connectivity](EndpointConnectivity.Name, res, connectivitySchema)
}

// Request body helpers

func deviceParams(siteID, deviceID string) map[string]string {
	return map[string]string{"site_id": siteID, "device_id": deviceID}
}

func periodBody(operation string, period ClientPeriod) (Body, error) {
	if !period.IsValid() {
		return Body{}, fmt.Errorf("%s: %w", operation, &EnumError{Type: "ClientPeriod", Value: string(period)})
	}
	return Body{}.Set("period", period.String()), nil
}

// attributesBody builds {"attributes": [...]} after checking every attribute
func attributesBody[T interface {
	~string
	IsValid() bool
}](operation string, attributes []T) (Body, error) {
	names := make([]string, 0, len(attributes))
	for i, a := range attributes {
		if !a.IsValid() {
			return Body{}, fmt.Errorf("%s: attribute at index %d: %w", operation, i, &EnumError{Type: strings.TrimPrefix(fmt.Sprintf("%T", a), "nebula."), Value: string(a)})
		}
		names = append(names, string(a))
	}
	return Body{}.Set("attributes", names), nil
}
