// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nebula

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Group is a group of organizations
type Group struct {
	GroupID string `json:"groupId"`
	Name    string `json:"name"`
}

// OrgBaseInfo is the summary of an organization returned by list endpoints
type OrgBaseInfo struct {
	OrgID string  `json:"orgId"`
	Name  string  `json:"name"`
	Mode  OrgMode `json:"mode"`
}

// LicenseOverview holds the license window of an organization
type LicenseOverview struct {
	NCCTrialEndAt string `json:"NCCTrialEndAt,omitempty"`
	NCCExpiredAt  string `json:"NCCExpiredAt,omitempty"`
}

// Org is the detailed view of an organization
type Org struct {
	OrgID           string           `json:"orgId"`
	Name            string           `json:"name"`
	Mode            OrgMode          `json:"mode"`
	PrevMode        OrgMode          `json:"prevMode,omitempty"`
	MspID           string           `json:"mspId,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	LicenseOverview *LicenseOverview `json:"licenseOverview,omitempty"`
}

// Site is a location of an organization
type Site struct {
	SiteID   string `json:"siteId"`
	Name     string `json:"name"`
	Timezone string `json:"timezone,omitempty"`
}

// Device is a managed appliance
type Device struct {
	DevID  string     `json:"devId"`
	Name   string     `json:"name"`
	MAC    string     `json:"mac"`
	Serial string     `json:"sn"`
	Model  string     `json:"model"`
	Type   DeviceType `json:"type"`

	// SiteID is filled in from the per-site grouping of the device listing
	SiteID string `json:"siteId,omitempty"`
}

// siteDevices is the per-site grouping returned by the device listing
type siteDevices struct {
	SiteID  string   `json:"siteId"`
	Devices []Device `json:"devices"`
}

// DeviceFirmwareStatus is the firmware state of a device
type DeviceFirmwareStatus struct {
	DevID           string         `json:"devId"`
	CurrentVersion  string         `json:"currentVersion"`
	LatestVersion   string         `json:"latestVersion"`
	Status          FirmwareStatus `json:"status"`
	LastUpgradeTime string         `json:"lastUpgradeTime,omitempty"`
}

// DeviceOnlineStatus is the connectivity state of a device
type DeviceOnlineStatus struct {
	DevID         string        `json:"devId"`
	CurrentStatus OnlineOffline `json:"currentStatus"`
}

// VPNTunnel is the state of one VPN tunnel
type VPNTunnel struct {
	Uptime        int64  `json:"uptime"`
	Status        string `json:"status"`
	LastHeartbeat int64  `json:"lastHeartbeat"`
}

// VPNSite is a site-to-site VPN peer
type VPNSite struct {
	SiteID  string      `json:"siteId"`
	Subnets []string    `json:"subnets"`
	Tunnel  []VPNTunnel `json:"tunnel"`
}

// VPNGateway is a non-Nebula VPN peer
type VPNGateway struct {
	Peer    string      `json:"peer"`
	Subnets []string    `json:"subnets"`
	Tunnel  []VPNTunnel `json:"tunnel"`
}

// VPNRemoteAP is a remote AP tunnel
type VPNRemoteAP struct {
	DevID         string `json:"devId"`
	Uptime        int64  `json:"uptime"`
	Status        string `json:"status"`
	LastHeartbeat int64  `json:"lastHeartbeat"`
}

// VPNClient is a connected remote-access VPN client.
//
// The API spells the assigned address key "asssignedIPv4"; the corrected
// spelling is accepted too.
type VPNClient struct {
	Username     string `json:"username"`
	Hostname     string `json:"hostname"`
	PublicIPv4   string `json:"publicIPv4"`
	AssignedIPv4 string `json:"asssignedIPv4"`
}

// UnmarshalJSON implements json.Unmarshaler
func (c *VPNClient) UnmarshalJSON(b []byte) error {
	type plain VPNClient
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	if p.AssignedIPv4 == "" {
		p.AssignedIPv4 = gjson.GetBytes(b, "assignedIPv4").String()
	}
	*c = VPNClient(p)
	return nil
}

// SiteVPNStatus is the VPN overview of a site.
//
// The API spells the client list key "cleints"; "clients" is accepted too.
type SiteVPNStatus struct {
	Sites     []VPNSite     `json:"sites"`
	Gateways  []VPNGateway  `json:"gateways"`
	RemoteAPs []VPNRemoteAP `json:"remoteAps"`
	Clients   []VPNClient   `json:"cleints"`
}

// UnmarshalJSON implements json.Unmarshaler
func (s *SiteVPNStatus) UnmarshalJSON(b []byte) error {
	type plain SiteVPNStatus
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	if p.Clients == nil {
		if raw := gjson.GetBytes(b, "clients"); raw.IsArray() {
			if err := json.Unmarshal([]byte(raw.Raw), &p.Clients); err != nil {
				return err
			}
		}
	}
	*s = SiteVPNStatus(p)
	return nil
}

// OSHostname is the operating system and host name reported by a client
type OSHostname struct {
	OS       string `json:"os"`
	Hostname string `json:"hostname"`
}

// GenericClient is a client seen anywhere on a site
type GenericClient struct {
	MACAddress   string        `json:"macAddress"`
	IPv4Address  string        `json:"ipv4Address,omitempty"`
	VLAN         int           `json:"vlan,omitempty"`
	LastSeen     int64         `json:"lastSeen,omitempty"`
	ConnectedTo  string        `json:"connectedTo,omitempty"`
	Status       OnlineOffline `json:"status,omitempty"`
	FirstSeen    int64         `json:"firstSeen,omitempty"`
	Description  string        `json:"description,omitempty"`
	OSHostname   *OSHostname   `json:"osHostname,omitempty"`
	Manufacturer string        `json:"manufacturer,omitempty"`
}

// SSID is the wireless network a client is associated with
type SSID struct {
	Name     string       `json:"name"`
	Security SecurityType `json:"security,omitempty"`
}

// WifiStation is the radio state of a wireless client
type WifiStation struct {
	Status  OnlineOffline `json:"status,omitempty"`
	VLAN    int           `json:"vlan"`
	Signal  int           `json:"signal"`
	Band    WifiBand      `json:"band,omitempty"`
	Channel int           `json:"channel"`
}

// APClient is a wireless client seen by an access point
type APClient struct {
	MACAddress   string       `json:"macAddress"`
	IPv4Address  string       `json:"ipv4Address,omitempty"`
	LastSeen     int64        `json:"lastSeen,omitempty"`
	ConnectedTo  string       `json:"connectedTo,omitempty"`
	FirstSeen    int64        `json:"firstSeen,omitempty"`
	Description  string       `json:"description,omitempty"`
	OSHostname   *OSHostname  `json:"osHostname,omitempty"`
	Manufacturer string       `json:"manufacturer,omitempty"`
	SSID         *SSID        `json:"ssid,omitempty"`
	WifiStation  *WifiStation `json:"wifiStation,omitempty"`

	// Only returned by the v2 endpoint
	User     string `json:"user,omitempty"`
	Upload   int64  `json:"upload,omitempty"`
	Download int64  `json:"download,omitempty"`
}

// SWClient is a wired client seen by a switch
type SWClient struct {
	MACAddress    string `json:"macAddress"`
	IPv4Address   string `json:"ipv4Address,omitempty"`
	LastSeen      int64  `json:"lastSeen,omitempty"`
	ConnectedTo   string `json:"connectedTo,omitempty"`
	ConnectedPort string `json:"connectedPort,omitempty"`
	FirstSeen     int64  `json:"firstSeen,omitempty"`
	Description   string `json:"description,omitempty"`
	Manufacturer  string `json:"manufacturer,omitempty"`
	VLAN          int    `json:"vlan,omitempty"`
	LLDP          string `json:"lldp,omitempty"`
}

// GWClient is a client seen by a gateway
type GWClient struct {
	MACAddress   string      `json:"macAddress"`
	IPv4Address  string      `json:"ipv4Address,omitempty"`
	LastSeen     int64       `json:"lastSeen,omitempty"`
	ConnectedTo  string      `json:"connectedTo,omitempty"`
	FirstSeen    int64       `json:"firstSeen,omitempty"`
	Description  string      `json:"description,omitempty"`
	OSHostname   *OSHostname `json:"osHostname,omitempty"`
	Manufacturer string      `json:"manufacturer,omitempty"`
	Interface    string      `json:"interface,omitempty"`
}

// Clients is the envelope returned by the v2 client endpoints. KeyFields
// names the fields that identify a record in Data.
type Clients[T any] struct {
	KeyFields []string `json:"KeyFields"`
	Data      []T      `json:"data"`
}

// PingResult is one echo request of a ping
type PingResult struct {
	Seq         int     `json:"seq"`
	Loss        bool    `json:"loss"`
	Timestamp   int64   `json:"timestamp"`
	ElapsedTime float64 `json:"elapsedTime"`
}

// PingResp is the result of a ping started from a device
type PingResp struct {
	Token   string       `json:"token"`
	IsDone  bool         `json:"isDone"`
	Results []PingResult `json:"results"`
}

// GenericResp is the acknowledgement returned by device actions
type GenericResp struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

// CablePairResult is the diagnostic of one wire pair
type CablePairResult struct {
	Channel             string `json:"channel"`
	PairStatus          string `json:"pairStatus"`
	PairLength          string `json:"pairLength"`
	PairDistanceToFault string `json:"pairDistanceToFault"`
}

// CablePortResult holds the pair diagnostics of one switch port
type CablePortResult struct {
	Port    int               `json:"port"`
	Results []CablePairResult `json:"results"`
}

// CableTestResp is the result of a cable test
type CableTestResp struct {
	Ports []CablePortResult `json:"ports"`
}

// Connectivity is one interval of a device's connectivity history
type Connectivity struct {
	BeginTime int64  `json:"begin_time"`
	EndTime   int64  `json:"end_time"`
	Status    string `json:"status"`
}
