// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nebula

// Enumerations used by the Nebula API. Every type rejects unknown literals
// when decoded, so a new value introduced by the API surfaces as a
// *DecodeError instead of a silently empty field.

// DeviceType identifies the kind of managed appliance
type DeviceType string

const (
	DeviceTypeAP      DeviceType = "AP"
	DeviceTypeSwitch  DeviceType = "SW"
	DeviceTypeGateway DeviceType = "GW"
)

// ValidDeviceTypes contains the list of valid DeviceType values
var ValidDeviceTypes = []DeviceType{DeviceTypeAP, DeviceTypeSwitch, DeviceTypeGateway}

// ParseDeviceType returns the DeviceType for s or an *EnumError
func ParseDeviceType(s string) (DeviceType, error) {
	return parseEnum("DeviceType", s, ValidDeviceTypes)
}

func (t DeviceType) String() string { return string(t) }

// IsValid reports whether t is a known DeviceType
func (t DeviceType) IsValid() bool { return isMember(t, ValidDeviceTypes) }

func (t DeviceType) MarshalText() ([]byte, error) {
	return marshalEnum("DeviceType", t, ValidDeviceTypes)
}

func (t *DeviceType) UnmarshalText(b []byte) error {
	return unmarshalEnum(t, "DeviceType", b, ValidDeviceTypes)
}

// OnlineOffline is the connectivity state of a device or client
type OnlineOffline string

const (
	Online  OnlineOffline = "ONLINE"
	Offline OnlineOffline = "OFFLINE"
)

// ValidOnlineOffline contains the list of valid OnlineOffline values
var ValidOnlineOffline = []OnlineOffline{Online, Offline}

// ParseOnlineOffline returns the OnlineOffline for s or an *EnumError
func ParseOnlineOffline(s string) (OnlineOffline, error) {
	return parseEnum("OnlineOffline", s, ValidOnlineOffline)
}

func (s OnlineOffline) String() string { return string(s) }

// IsValid reports whether s is a known OnlineOffline
func (s OnlineOffline) IsValid() bool { return isMember(s, ValidOnlineOffline) }

func (s OnlineOffline) MarshalText() ([]byte, error) {
	return marshalEnum("OnlineOffline", s, ValidOnlineOffline)
}

func (s *OnlineOffline) UnmarshalText(b []byte) error {
	return unmarshalEnum(s, "OnlineOffline", b, ValidOnlineOffline)
}

// OrgMode is the license mode of an organization
type OrgMode string

const (
	OrgModePro   OrgMode = "PRO"
	OrgModePlus  OrgMode = "PLUS"
	OrgModeBase  OrgMode = "BASE"
	OrgModeTrial OrgMode = "TRIAL"
)

// ValidOrgModes contains the list of valid OrgMode values
var ValidOrgModes = []OrgMode{OrgModePro, OrgModePlus, OrgModeBase, OrgModeTrial}

// ParseOrgMode returns the OrgMode for s or an *EnumError
func ParseOrgMode(s string) (OrgMode, error) {
	return parseEnum("OrgMode", s, ValidOrgModes)
}

func (m OrgMode) String() string { return string(m) }

// IsValid reports whether m is a known OrgMode
func (m OrgMode) IsValid() bool { return isMember(m, ValidOrgModes) }

func (m OrgMode) MarshalText() ([]byte, error) {
	return marshalEnum("OrgMode", m, ValidOrgModes)
}

func (m *OrgMode) UnmarshalText(b []byte) error {
	return unmarshalEnum(m, "OrgMode", b, ValidOrgModes)
}

// FirmwareStatus is the upgrade state of a device firmware
type FirmwareStatus string

const (
	FirmwareUpToDate         FirmwareStatus = "UP_TO_DATE"
	FirmwareUpgradeAvailable FirmwareStatus = "UPGRADE_AVAILABLE"
	FirmwareUpgradeScheduled FirmwareStatus = "UPGRADE_SCHEDULED"
	FirmwareCustom           FirmwareStatus = "CUSTOM"
	FirmwareWarning          FirmwareStatus = "WARNING"
	FirmwareNotApplicable    FirmwareStatus = "N/A"
)

// ValidFirmwareStatuses contains the list of valid FirmwareStatus values
var ValidFirmwareStatuses = []FirmwareStatus{
	FirmwareUpToDate,
	FirmwareUpgradeAvailable,
	FirmwareUpgradeScheduled,
	FirmwareCustom,
	FirmwareWarning,
	FirmwareNotApplicable,
}

// ParseFirmwareStatus returns the FirmwareStatus for s or an *EnumError
func ParseFirmwareStatus(s string) (FirmwareStatus, error) {
	return parseEnum("FirmwareStatus", s, ValidFirmwareStatuses)
}

func (s FirmwareStatus) String() string { return string(s) }

// IsValid reports whether s is a known FirmwareStatus
func (s FirmwareStatus) IsValid() bool { return isMember(s, ValidFirmwareStatuses) }

func (s FirmwareStatus) MarshalText() ([]byte, error) {
	return marshalEnum("FirmwareStatus", s, ValidFirmwareStatuses)
}

func (s *FirmwareStatus) UnmarshalText(b []byte) error {
	return unmarshalEnum(s, "FirmwareStatus", b, ValidFirmwareStatuses)
}

// WifiBand is the radio band a wireless client is associated on
type WifiBand string

const (
	WifiBand24 WifiBand = "band24"
	WifiBand5  WifiBand = "band5"
	WifiBand6  WifiBand = "band6"
)

// ValidWifiBands contains the list of valid WifiBand values
var ValidWifiBands = []WifiBand{WifiBand24, WifiBand5, WifiBand6}

// ParseWifiBand returns the WifiBand for s or an *EnumError
func ParseWifiBand(s string) (WifiBand, error) {
	return parseEnum("WifiBand", s, ValidWifiBands)
}

func (b WifiBand) String() string { return string(b) }

// IsValid reports whether b is a known WifiBand
func (b WifiBand) IsValid() bool { return isMember(b, ValidWifiBands) }

func (b WifiBand) MarshalText() ([]byte, error) {
	return marshalEnum("WifiBand", b, ValidWifiBands)
}

func (b *WifiBand) UnmarshalText(text []byte) error {
	return unmarshalEnum(b, "WifiBand", text, ValidWifiBands)
}

// SecurityType is the authentication scheme of an SSID
type SecurityType string

const (
	SecurityOpen          SecurityType = "OPEN"
	SecurityWPAPersonal   SecurityType = "WPA_PERSONAL"
	SecurityWPAEnterprise SecurityType = "WPA_ENTERPRISE"
	SecurityEnhancedOpen  SecurityType = "ENHANCED_OPEN"
)

// ValidSecurityTypes contains the list of valid SecurityType values
var ValidSecurityTypes = []SecurityType{
	SecurityOpen,
	SecurityWPAPersonal,
	SecurityWPAEnterprise,
	SecurityEnhancedOpen,
}

// ParseSecurityType returns the SecurityType for s or an *EnumError
func ParseSecurityType(s string) (SecurityType, error) {
	return parseEnum("SecurityType", s, ValidSecurityTypes)
}

func (s SecurityType) String() string { return string(s) }

// IsValid reports whether s is a known SecurityType
func (s SecurityType) IsValid() bool { return isMember(s, ValidSecurityTypes) }

func (s SecurityType) MarshalText() ([]byte, error) {
	return marshalEnum("SecurityType", s, ValidSecurityTypes)
}

func (s *SecurityType) UnmarshalText(b []byte) error {
	return unmarshalEnum(s, "SecurityType", b, ValidSecurityTypes)
}

// ClientPeriod selects the time window of client and connectivity history
type ClientPeriod string

const (
	Period2Hours ClientPeriod = "2h"
	Period1Day   ClientPeriod = "1d"
	Period7Days  ClientPeriod = "7d"
	Period30Days ClientPeriod = "30d"
)

// ValidClientPeriods contains the list of valid ClientPeriod values
var ValidClientPeriods = []ClientPeriod{Period2Hours, Period1Day, Period7Days, Period30Days}

// ParseClientPeriod returns the ClientPeriod for s or an *EnumError
func ParseClientPeriod(s string) (ClientPeriod, error) {
	return parseEnum("ClientPeriod", s, ValidClientPeriods)
}

func (p ClientPeriod) String() string { return string(p) }

// IsValid reports whether p is a known ClientPeriod
func (p ClientPeriod) IsValid() bool { return isMember(p, ValidClientPeriods) }

func (p ClientPeriod) MarshalText() ([]byte, error) {
	return marshalEnum("ClientPeriod", p, ValidClientPeriods)
}

func (p *ClientPeriod) UnmarshalText(b []byte) error {
	return unmarshalEnum(p, "ClientPeriod", b, ValidClientPeriods)
}

// ClientAttribute names a field that SiteClients should return
type ClientAttribute string

const (
	ClientAttrMACAddress   ClientAttribute = "macAddress"
	ClientAttrIPv4         ClientAttribute = "ipv4Address"
	ClientAttrVLAN         ClientAttribute = "vlan"
	ClientAttrLastSeen     ClientAttribute = "lastSeen"
	ClientAttrConnectedTo  ClientAttribute = "connectedTo"
	ClientAttrStatus       ClientAttribute = "status"
	ClientAttrFirstSeen    ClientAttribute = "firstSeen"
	ClientAttrDescription  ClientAttribute = "description"
	ClientAttrOSHostname   ClientAttribute = "osHostname"
	ClientAttrManufacturer ClientAttribute = "manufacturer"
)

// ValidClientAttributes contains every ClientAttribute. SiteClients requests
// all of them when called with an empty attribute list.
var ValidClientAttributes = []ClientAttribute{
	ClientAttrMACAddress,
	ClientAttrIPv4,
	ClientAttrVLAN,
	ClientAttrLastSeen,
	ClientAttrConnectedTo,
	ClientAttrStatus,
	ClientAttrFirstSeen,
	ClientAttrDescription,
	ClientAttrOSHostname,
	ClientAttrManufacturer,
}

// ParseClientAttribute returns the ClientAttribute for s or an *EnumError
func ParseClientAttribute(s string) (ClientAttribute, error) {
	return parseEnum("ClientAttribute", s, ValidClientAttributes)
}

func (a ClientAttribute) String() string { return string(a) }

// IsValid reports whether a is a known ClientAttribute
func (a ClientAttribute) IsValid() bool { return isMember(a, ValidClientAttributes) }

func (a ClientAttribute) MarshalText() ([]byte, error) {
	return marshalEnum("ClientAttribute", a, ValidClientAttributes)
}

func (a *ClientAttribute) UnmarshalText(b []byte) error {
	return unmarshalEnum(a, "ClientAttribute", b, ValidClientAttributes)
}

// APClientAttribute names a field that APClients should return
type APClientAttribute string

const (
	APClientAttrMACAddress   APClientAttribute = "macAddress"
	APClientAttrIPv4         APClientAttribute = "ipv4Address"
	APClientAttrLastSeen     APClientAttribute = "lastSeen"
	APClientAttrConnectedTo  APClientAttribute = "connectedTo"
	APClientAttrFirstSeen    APClientAttribute = "firstSeen"
	APClientAttrDescription  APClientAttribute = "description"
	APClientAttrOSHostname   APClientAttribute = "osHostname"
	APClientAttrManufacturer APClientAttribute = "manufacturer"
	APClientAttrSSID         APClientAttribute = "ssid"
	APClientAttrWifiStation  APClientAttribute = "wifiStation"
)

// ValidAPClientAttributes contains every APClientAttribute. APClients
// requests all of them when called with an empty attribute list.
var ValidAPClientAttributes = []APClientAttribute{
	APClientAttrMACAddress,
	APClientAttrIPv4,
	APClientAttrLastSeen,
	APClientAttrConnectedTo,
	APClientAttrFirstSeen,
	APClientAttrDescription,
	APClientAttrOSHostname,
	APClientAttrManufacturer,
	APClientAttrSSID,
	APClientAttrWifiStation,
}

// ParseAPClientAttribute returns the APClientAttribute for s or an *EnumError
func ParseAPClientAttribute(s string) (APClientAttribute, error) {
	return parseEnum("APClientAttribute", s, ValidAPClientAttributes)
}

func (a APClientAttribute) String() string { return string(a) }

// IsValid reports whether a is a known APClientAttribute
func (a APClientAttribute) IsValid() bool { return isMember(a, ValidAPClientAttributes) }

func (a APClientAttribute) MarshalText() ([]byte, error) {
	return marshalEnum("APClientAttribute", a, ValidAPClientAttributes)
}

func (a *APClientAttribute) UnmarshalText(b []byte) error {
	return unmarshalEnum(a, "APClientAttribute", b, ValidAPClientAttributes)
}

// parseEnum matches s exactly against the valid literals of an enumeration
func parseEnum[T ~string](name, s string, valid []T) (T, error) {
	for _, v := range valid {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, &EnumError{Type: name, Value: s}
}

func isMember[T ~string](v T, valid []T) bool {
	_, err := parseEnum("", string(v), valid)
	return err == nil
}

func marshalEnum[T ~string](name string, v T, valid []T) ([]byte, error) {
	if v == "" {
		return []byte{}, nil
	}
	if _, err := parseEnum(name, string(v), valid); err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func unmarshalEnum[T ~string](dst *T, name string, b []byte, valid []T) error {
	v, err := parseEnum(name, string(b), valid)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// enumChecker adapts a Parse function for schema validation
func enumChecker[T ~string](parse func(string) (T, error)) func(string) error {
	return func(s string) error {
		_, err := parse(s)
		return err
	}
}
