package importer

import (
	"context"

	"github.com/haukened/rr-dnsctl/internal/dns/wire"
)

// ControlPlane is the slice of the API client the importer needs: reading a
// zone's current record sets and applying changes.
type ControlPlane interface {
	ListRecordSets(ctx context.Context, zone string) ([]wire.RecordSet, error)
	CreateChange(ctx context.Context, zone string, change wire.Change) (*wire.Change, error)
	WaitChange(ctx context.Context, zone, id string) (*wire.Change, error)
}

// Journal remembers which record-set fingerprints were already applied, so
// re-running an import skips them without a network round trip.
type Journal interface {
	Seen(fingerprint string) (bool, error)
	Record(fingerprints []string, changeID string) error
}

// SnapshotCache holds per-zone snapshots of remote record sets between
// imports in the same run.
type SnapshotCache interface {
	HasZone(zone string) bool
	SetZone(zone string, rrsets []wire.RecordSet)
	Get(zone, name, rrType string) (wire.RecordSet, bool)
	InvalidateZone(zone string)
}
