package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/haukened/rr-dnsctl/internal/dns/domain"
	"github.com/haukened/rr-dnsctl/internal/dns/wire"
)

// ListRecordSets returns the record sets of a managed zone.
func (c *Client) ListRecordSets(ctx context.Context, zone string) ([]wire.RecordSet, error) {
	var list wire.RecordSetList
	if err := c.do(ctx, http.MethodGet, zonePath(zone)+"/rrsets", nil, &list); err != nil {
		return nil, err
	}
	return list.RRSets, nil
}

// DeleteRecords removes the given records from a zone by submitting a
// change whose deletions are those records. This is forwarding, not codec
// logic: the change semantics (atomicity, validation) belong to the
// service.
func (c *Client) DeleteRecords(ctx context.Context, zone string, records ...domain.ResourceRecord) (*wire.Change, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to delete")
	}
	change := wire.Change{Deletions: make([]wire.RecordSet, len(records))}
	for i, rr := range records {
		change.Deletions[i] = wire.FromRecord(rr)
	}
	return c.CreateChange(ctx, zone, change)
}
