package domain

import (
	"fmt"
	"strings"
)

// ResourceRecord represents one DNS resource record set as application code
// sees it: an owner name, a type, a TTL, and zero or more data values.
// It is a value object; it holds no connection to the control-plane service.
type ResourceRecord struct {
	Name string   // fully-qualified owner name, trailing dot per DNS convention
	Type RRType   // record type, uppercase on the wire
	TTL  uint32   // seconds
	Data []string // one entry per record-data value
}

// NewResourceRecord constructs a ResourceRecord from caller-supplied
// metadata. The type tag is accepted in any case. Data is stored as given;
// constructing with no values leaves Data nil, which the wire mapping
// renders as an omitted rrdatas key rather than an empty list. No DNS
// semantic validation happens at this layer: malformed names or values pass
// through opaquely and are rejected by the control-plane service.
func NewResourceRecord(rrType string, name string, ttl uint32, data ...string) ResourceRecord {
	return ResourceRecord{
		Name: name,
		Type: RRTypeFromString(rrType),
		TTL:  ttl,
		Data: data,
	}
}

// Validate checks the fields a caller typically wants verified before
// submitting the record to the control-plane service. The codec itself never
// calls this.
func (rr ResourceRecord) Validate() error {
	if rr.Name == "" {
		return fmt.Errorf("record name must not be empty")
	}
	if !strings.HasSuffix(rr.Name, ".") {
		return fmt.Errorf("record name %q must be fully qualified (trailing dot)", rr.Name)
	}
	if !rr.Type.IsValid() {
		return fmt.Errorf("invalid RRType: %d", uint16(rr.Type))
	}
	return nil
}

// SetKey returns the record-set identity key (owner name plus type). Records
// sharing a key belong to one record set on the wire.
func (rr ResourceRecord) SetKey() string {
	return rr.Name + "|" + rr.Type.String()
}

// String renders the record in BIND zone-file presentation format, one line
// per data value:
//
//	{name} {ttl} IN {type} {rrdata}
//
// Lines are newline-joined with no trailing newline. A record with no data
// values still renders a single line, with an empty rrdata token.
func (rr ResourceRecord) String() string {
	data := rr.Data
	if len(data) == 0 {
		data = []string{""}
	}
	lines := make([]string, len(data))
	for i, d := range data {
		lines[i] = fmt.Sprintf("%s %d IN %s %s", rr.Name, rr.TTL, rr.Type, d)
	}
	return strings.Join(lines, "\n")
}
