// Package rrcache keeps recently fetched zone record sets in memory so
// repeated imports against the same zones do not refetch the remote state
// on every file. Entries are keyed by zone and hold the full record-set
// snapshot for that zone.
package rrcache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haukened/rr-dnsctl/internal/dns/wire"
)

// Cache is an LRU of zone snapshots.
type Cache struct {
	lru *lru.Cache[string, map[string]wire.RecordSet]
}

// New returns a Cache holding at most size zone snapshots.
func New(size int) (*Cache, error) {
	backing, err := lru.New[string, map[string]wire.RecordSet](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: backing}, nil
}

// SetZone replaces the cached snapshot for a zone. Record sets are indexed
// by owner name plus type, the record-set identity on the wire.
func (c *Cache) SetZone(zone string, rrsets []wire.RecordSet) {
	snapshot := make(map[string]wire.RecordSet, len(rrsets))
	for _, rs := range rrsets {
		snapshot[rs.Name+"|"+rs.Type] = rs
	}
	c.lru.Add(zone, snapshot)
}

// Get returns the cached record set for an owner name and type in a zone.
// The second return is false when the zone has no snapshot or the set is
// not in it.
func (c *Cache) Get(zone, name, rrType string) (wire.RecordSet, bool) {
	snapshot, found := c.lru.Get(zone)
	if !found {
		return wire.RecordSet{}, false
	}
	rs, ok := snapshot[name+"|"+rrType]
	return rs, ok
}

// HasZone reports whether a snapshot exists for the zone.
func (c *Cache) HasZone(zone string) bool {
	return c.lru.Contains(zone)
}

// InvalidateZone drops the snapshot for a zone, forcing the next lookup to
// refetch. Called after a change lands, since the snapshot is now stale.
func (c *Cache) InvalidateZone(zone string) {
	c.lru.Remove(zone)
}

// Len returns the number of cached zone snapshots.
func (c *Cache) Len() int {
	return c.lru.Len()
}
