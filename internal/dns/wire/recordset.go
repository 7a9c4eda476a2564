// Package wire holds the JSON shapes the DNS control-plane API speaks, and
// the explicit mapping between those shapes and the application-facing
// domain types. The wire field for record data is named rrdatas; the
// application field is Data. The two names never coexist on one object.
package wire

import (
	"encoding/json"

	"github.com/haukened/rr-dnsctl/internal/dns/domain"
)

// RecordSet is the request/response body shape for one record set.
type RecordSet struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	TTL     uint32   `json:"ttl"`
	RRDatas []string `json:"rrdatas"`
}

// MarshalJSON emits the rrdatas key only when the slice is non-nil. A nil
// slice means the data field was never set and the key is omitted entirely;
// an empty non-nil slice still emits "rrdatas": []. The distinction matters
// to the service and must survive serialization.
func (rs RecordSet) MarshalJSON() ([]byte, error) {
	type recordSetJSON struct {
		Name    string    `json:"name"`
		Type    string    `json:"type"`
		TTL     uint32    `json:"ttl"`
		RRDatas *[]string `json:"rrdatas,omitempty"`
	}
	out := recordSetJSON{Name: rs.Name, Type: rs.Type, TTL: rs.TTL}
	if rs.RRDatas != nil {
		out.RRDatas = &rs.RRDatas
	}
	return json.Marshal(out)
}

// FromRecord maps an application record to its wire shape: the type tag is
// forced to uppercase and Data becomes rrdatas. The source record is not
// mutated, and mapping the same record twice yields equal results. A record
// whose Data was never set, such as one constructed with no values, maps to
// a RecordSet with nil RRDatas so the rrdatas key is omitted from its JSON.
func FromRecord(rr domain.ResourceRecord) RecordSet {
	rs := RecordSet{
		Name: rr.Name,
		Type: rr.Type.String(),
		TTL:  rr.TTL,
	}
	if rr.Data != nil {
		rs.RRDatas = make([]string, len(rr.Data))
		copy(rs.RRDatas, rr.Data)
	}
	return rs
}

// ToRecord maps a wire record set to the application shape: rrdatas becomes
// Data. Absent rrdatas becomes an empty non-nil slice, so consumers of wire
// data can range and append without nil checks.
func ToRecord(rs RecordSet) domain.ResourceRecord {
	data := make([]string, len(rs.RRDatas))
	copy(data, rs.RRDatas)
	return domain.ResourceRecord{
		Name: rs.Name,
		Type: domain.RRTypeFromString(rs.Type),
		TTL:  rs.TTL,
		Data: data,
	}
}

// RecordSetList is the list envelope for record-set queries.
type RecordSetList struct {
	RRSets        []RecordSet `json:"rrsets"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
}
