/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ladder

import "fmt"

// Kind selects which component-bearing record shape a parsed identifier
// uses.
type Kind int

const (
	KindCommon Kind = iota
	KindGeneric
)

func (k Kind) String() string {
	if k == KindGeneric {
		return "generic"
	}
	return "common"
}

// Record is implemented by CommonRecord and GenericRecord. The grammar
// runtime assigns a reduction's output to a record field by name, looked
// up through the binding's Parameterization Descriptor mapping; Segments
// is append-only within a single parse.
type Record interface {
	// SetField assigns value to the named struct field. It returns an
	// error if field is not a known field of the record's kind.
	SetField(field, value string) error
	// AppendSegment appends value to the record's ordered segment list.
	AppendSegment(value string)
	// OutputValue returns the record's output field.
	OutputValue() string
}

// GenericFieldNames are every field a Generic record mapping must cover
// exactly once (Parameterization binding rejects an incomplete or surplus
// mapping).
var GenericFieldNames = []string{
	"output", "scheme", "opaque", "fragment",
	"hier_part", "query", "segment", "authority", "path",
	"relative_ref", "relative_part", "userinfo", "host", "port",
	"ip_literal", "ipv4_address", "reg_name",
	"ipv6_address", "ipv6_addrz", "ipvfuture", "zoneid",
	"segments",
}

// CommonFieldNames are every field a Common record mapping must cover.
var CommonFieldNames = []string{"output", "scheme", "opaque", "fragment"}

// CommonRecord is the component-bearing record for identifier kind "common":
// scheme ":" opaque [ "#" fragment ].
type CommonRecord struct {
	Output      string
	Scheme      string
	HasScheme   bool
	Opaque      string
	Fragment    string
	HasFragment bool
}

// SetField implements Record.
func (r *CommonRecord) SetField(field, value string) error {
	switch field {
	case "output":
		r.Output = value
	case "scheme":
		r.Scheme, r.HasScheme = value, true
	case "opaque":
		r.Opaque = value
	case "fragment":
		r.Fragment, r.HasFragment = value, true
	default:
		return fmt.Errorf("common record has no field %q", field)
	}
	return nil
}

// AppendSegment implements Record. Common records have no segments; the
// grammar never reduces <segment> for a common-kind identifier.
func (r *CommonRecord) AppendSegment(string) {}

// OutputValue implements Record.
func (r *CommonRecord) OutputValue() string { return r.Output }

// NewGenericRecord returns a GenericRecord with its Segments slice
// initialized per the uriCompat flag: a single empty string when on, empty
// otherwise (spec Data Model §3).
func NewGenericRecord(uriCompat bool) *GenericRecord {
	g := &GenericRecord{}
	if uriCompat {
		g.Segments = []string{""}
	}
	return g
}

// GenericRecord is the component-bearing record for identifier kind
// "generic": the full RFC 3986/3987 component decomposition.
type GenericRecord struct {
	CommonRecord

	HierPart        string
	HasHierPart     bool
	Query           string
	HasQuery        bool
	Authority       string
	HasAuthority    bool
	Path            string
	RelativeRef     string
	HasRelativeRef  bool
	RelativePart    string
	HasRelativePart bool
	UserInfo        string
	HasUserInfo     bool
	Host            string
	HasHost         bool
	Port            string
	HasPort         bool
	IPLiteral       string
	HasIPLiteral    bool
	IPv4Address     string
	HasIPv4Address  bool
	RegName         string
	HasRegName      bool
	IPv6Address     string
	HasIPv6Address  bool
	IPv6Addrz       string
	HasIPv6Addrz    bool
	IPvFuture       string
	HasIPvFuture    bool
	ZoneID          string
	HasZoneID       bool
	Segments        []string
}

// SetField implements Record.
func (r *GenericRecord) SetField(field, value string) error {
	switch field {
	case "hier_part":
		r.HierPart, r.HasHierPart = value, true
	case "query":
		r.Query, r.HasQuery = value, true
	case "segment":
		// "segment" is a transient per-iteration criteria key; the
		// durable effect is the Segments append, handled by AppendSegment.
		return nil
	case "authority":
		r.Authority, r.HasAuthority = value, true
	case "path":
		r.Path = value
	case "relative_ref":
		r.RelativeRef, r.HasRelativeRef = value, true
	case "relative_part":
		r.RelativePart, r.HasRelativePart = value, true
	case "userinfo":
		r.UserInfo, r.HasUserInfo = value, true
	case "host":
		r.Host, r.HasHost = value, true
	case "port":
		r.Port, r.HasPort = value, true
	case "ip_literal":
		r.IPLiteral, r.HasIPLiteral = value, true
	case "ipv4_address":
		r.IPv4Address, r.HasIPv4Address = value, true
	case "reg_name":
		r.RegName, r.HasRegName = value, true
	case "ipv6_address":
		r.IPv6Address, r.HasIPv6Address = value, true
	case "ipv6_addrz":
		r.IPv6Addrz, r.HasIPv6Addrz = value, true
	case "ipvfuture":
		r.IPvFuture, r.HasIPvFuture = value, true
	case "zoneid":
		r.ZoneID, r.HasZoneID = value, true
	case "segments":
		r.AppendSegment(value)
		return nil
	default:
		return r.CommonRecord.SetField(field, value)
	}
	return nil
}

// AppendSegment implements Record.
func (r *GenericRecord) AppendSegment(value string) {
	r.Segments = append(r.Segments, value)
}
