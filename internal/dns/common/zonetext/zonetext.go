// Package zonetext builds resource records from parsed zone-file record
// sets. Each supported type has a fixed field template; the fields are
// substituted, space-separated, into a single rrdata string. Tokenizing raw
// zone-file text is the caller's job; this package only consumes the parsed
// field maps.
package zonetext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-dnsctl/internal/dns/common/log"
	"github.com/haukened/rr-dnsctl/internal/dns/domain"
)

// templates maps lower-cased record types to the ordered field names that
// make up the rrdata string. The SOA order (retry before refresh) is the
// control-plane service's documented order, not RFC 1035's.
var templates = map[string][]string{
	"a":     {"ip"},
	"aaaa":  {"ip"},
	"cname": {"alias"},
	"mx":    {"preference", "host"},
	"ns":    {"host"},
	"soa":   {"mname", "rname", "serial", "retry", "refresh", "expire", "minimum"},
	"spf":   {"data"},
	"srv":   {"priority", "weight", "port", "target"},
	"txt":   {"txt"},
}

// Supported reports whether rrType has a zone-file field template.
func Supported(rrType string) bool {
	_, ok := templates[strings.ToLower(strings.TrimSpace(rrType))]
	return ok
}

// ScalarField returns the template field name for types whose template has
// exactly one field, enabling scalar shorthand in zone files. The second
// return is false for multi-field types and unsupported types.
func ScalarField(rrType string) (string, bool) {
	tmpl, ok := templates[strings.ToLower(strings.TrimSpace(rrType))]
	if !ok || len(tmpl) != 1 {
		return "", false
	}
	return tmpl[0], true
}

// Build substitutes the template fields for rrType into a single rrdata
// string. Returns UnsupportedRecordTypeError for types without a template
// and MissingFieldError when a template field is absent from the map.
func Build(rrType string, fields map[string]any) (string, error) {
	tmpl, ok := templates[strings.ToLower(strings.TrimSpace(rrType))]
	if !ok {
		return "", &UnsupportedRecordTypeError{Type: rrType}
	}
	parts := make([]string, len(tmpl))
	for i, field := range tmpl {
		v, ok := fields[field]
		if !ok || v == nil {
			return "", &MissingFieldError{Type: rrType, Field: field}
		}
		parts[i] = stringify(v)
	}
	return strings.Join(parts, " "), nil
}

// FromZoneRecord builds a ResourceRecord from a record type and a parsed
// zone-file field map. The map carries the template fields plus "name" and
// "ttl", which are copied onto the record verbatim. The resulting record
// holds the substituted rrdata as its single data value. On failure no
// partial record is returned.
func FromZoneRecord(rrType string, fields map[string]any) (domain.ResourceRecord, error) {
	data, err := Build(rrType, fields)
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	name, _ := fields["name"].(string)
	return domain.NewResourceRecord(rrType, name, ttlValue(fields["ttl"]), data), nil
}

// stringify renders a field value the way it appears in zone-file text.
// Floats come from JSON-parsed zone files and must not render in exponent
// notation.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// ttlValue coerces the loosely-typed ttl field from parsed zone files.
// Unusable values clamp to zero, logged at debug so a surprising TTL can
// be traced back to its zone-file entry.
func ttlValue(v any) uint32 {
	switch t := v.(type) {
	case int:
		if t < 0 {
			return clampTTL(t)
		}
		return uint32(t)
	case int64:
		if t < 0 {
			return clampTTL(t)
		}
		return uint32(t)
	case uint32:
		return t
	case float64:
		if t < 0 {
			return clampTTL(t)
		}
		return uint32(t)
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(t), 10, 32)
		if err != nil {
			return clampTTL(t)
		}
		return uint32(n)
	default:
		return 0
	}
}

func clampTTL(v any) uint32 {
	log.Debug(map[string]any{"ttl": v}, "unusable ttl value, using 0")
	return 0
}
