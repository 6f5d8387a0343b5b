// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nebula

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// schema describes what a response record must look like before it is
// decoded. It is applied to an object, or to every element of an array.
type schema struct {
	// required keys that must be present and not null
	required []string

	// enum keys checked when present
	enums []enumField

	// nested schemas applied when the key is present
	nested []nestedField
}

type enumField struct {
	key   string
	check func(string) error
}

type nestedField struct {
	key    string
	schema schema
}

// validate walks v and returns a *DecodeError (without Operation) for the
// first field that does not match
func (s schema) validate(v gjson.Result, path string) error {
	if v.IsArray() {
		for i, el := range v.Array() {
			if err := s.validate(el, joinPath(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
		return nil
	}

	if !v.IsObject() {
		return &DecodeError{Field: path, Message: "expected object, got " + jsonType(v)}
	}

	for _, key := range s.required {
		f := v.Get(key)
		if !f.Exists() || f.Type == gjson.Null {
			return &DecodeError{Field: joinPath(path, key), Message: "missing required field"}
		}
	}

	for _, e := range s.enums {
		f := v.Get(e.key)
		if !f.Exists() || f.Type == gjson.Null {
			continue
		}
		if f.Type != gjson.String {
			return &DecodeError{Field: joinPath(path, e.key), Message: "expected string, got " + jsonType(f)}
		}
		if err := e.check(f.String()); err != nil {
			return &DecodeError{Field: joinPath(path, e.key), Err: err}
		}
	}

	for _, n := range s.nested {
		f := v.Get(n.key)
		if !f.Exists() || f.Type == gjson.Null {
			continue
		}
		if err := n.schema.validate(f, joinPath(path, n.key)); err != nil {
			return err
		}
	}

	return nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// jsonType names the JSON type of v for error messages
func jsonType(v gjson.Result) string {
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
		return "boolean"
	case gjson.Null:
		return "null"
	}
	return "nothing"
}

// Response schemas per record type
var (
	groupSchema = schema{required: []string{"groupId", "name"}}

	orgBaseInfoSchema = schema{
		required: []string{"orgId", "name", "mode"},
		enums:    []enumField{{"mode", enumChecker(ParseOrgMode)}},
	}

	orgSchema = schema{
		required: []string{"orgId", "name", "mode"},
		enums: []enumField{
			{"mode", enumChecker(ParseOrgMode)},
			{"prevMode", enumChecker(ParseOrgMode)},
		},
	}

	siteSchema = schema{required: []string{"siteId", "name"}}

	deviceSchema = schema{
		required: []string{"devId", "mac", "type"},
		enums:    []enumField{{"type", enumChecker(ParseDeviceType)}},
	}

	siteDevicesSchema = schema{
		required: []string{"siteId", "devices"},
		nested:   []nestedField{{"devices", deviceSchema}},
	}

	firmwareStatusSchema = schema{
		required: []string{"devId", "status"},
		enums:    []enumField{{"status", enumChecker(ParseFirmwareStatus)}},
	}

	onlineStatusSchema = schema{
		required: []string{"devId", "currentStatus"},
		enums:    []enumField{{"currentStatus", enumChecker(ParseOnlineOffline)}},
	}

	vpnStatusSchema = schema{
		nested: []nestedField{
			{"sites", schema{required: []string{"siteId"}}},
			{"gateways", schema{required: []string{"peer"}}},
			{"remoteAps", schema{required: []string{"devId"}}},
		},
	}

	osHostnameSchema = schema{}

	genericClientSchema = schema{
		required: []string{"macAddress"},
		enums:    []enumField{{"status", enumChecker(ParseOnlineOffline)}},
		nested:   []nestedField{{"osHostname", osHostnameSchema}},
	}

	apClientSchema = schema{
		required: []string{"macAddress"},
		nested: []nestedField{
			{"osHostname", osHostnameSchema},
			{"ssid", schema{enums: []enumField{{"security", enumChecker(ParseSecurityType)}}}},
			{"wifiStation", schema{enums: []enumField{
				{"status", enumChecker(ParseOnlineOffline)},
				{"band", enumChecker(ParseWifiBand)},
			}}},
		},
	}

	swClientSchema = schema{required: []string{"macAddress"}}

	gwClientSchema = schema{
		required: []string{"macAddress"},
		nested:   []nestedField{{"osHostname", osHostnameSchema}},
	}

	pingSchema = schema{required: []string{"token", "isDone"}}

	genericRespSchema = schema{required: []string{"status"}}

	cableTestSchema = schema{
		required: []string{"ports"},
		nested:   []nestedField{{"ports", schema{required: []string{"port"}}}},
	}

	connectivitySchema = schema{required: []string{"begin_time", "end_time"}}
)

// envelopeSchema wraps a record schema in the v2 {KeyFields, data} envelope
func envelopeSchema(data schema) schema {
	return schema{
		required: []string{"KeyFields", "data"},
		nested:   []nestedField{{"data", data}},
	}
}
