package rrcache

import (
	"testing"

	"github.com/haukened/rr-dnsctl/internal/dns/wire"
)

func TestInvalidCacheSize(t *testing.T) {
	_, err := New(-1)
	if err == nil {
		t.Errorf("expected error for negative cache size, got nil")
	}
}

func TestCache_GetAfterSetZone(t *testing.T) {
	cache, err := New(2)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	cache.SetZone("example-com", []wire.RecordSet{
		{Name: "www.example.com.", Type: "A", TTL: 300, RRDatas: []string{"1.2.3.4"}},
		{Name: "example.com.", Type: "MX", TTL: 3600, RRDatas: []string{"10 mail.example.com."}},
	})

	rs, ok := cache.Get("example-com", "www.example.com.", "A")
	if !ok {
		t.Fatalf("expected record set to be found")
	}
	if len(rs.RRDatas) != 1 || rs.RRDatas[0] != "1.2.3.4" {
		t.Errorf("unexpected rrdatas: %v", rs.RRDatas)
	}

	if _, ok := cache.Get("example-com", "missing.example.com.", "A"); ok {
		t.Errorf("expected miss for unknown record set")
	}
	if _, ok := cache.Get("other-zone", "www.example.com.", "A"); ok {
		t.Errorf("expected miss for unknown zone")
	}
}

func TestCache_HasZone(t *testing.T) {
	cache, err := New(2)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	if cache.HasZone("example-com") {
		t.Errorf("expected no snapshot before SetZone")
	}
	cache.SetZone("example-com", nil)
	if !cache.HasZone("example-com") {
		t.Errorf("expected snapshot after SetZone, even an empty one")
	}
}

func TestCache_InvalidateZone(t *testing.T) {
	cache, err := New(2)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	cache.SetZone("example-com", []wire.RecordSet{
		{Name: "www.example.com.", Type: "A", TTL: 300, RRDatas: []string{"1.2.3.4"}},
	})
	cache.InvalidateZone("example-com")

	if cache.HasZone("example-com") {
		t.Errorf("expected snapshot to be dropped")
	}
	if _, ok := cache.Get("example-com", "www.example.com.", "A"); ok {
		t.Errorf("expected miss after invalidation")
	}
}

func TestCache_EvictsOldestZone(t *testing.T) {
	cache, err := New(2)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	cache.SetZone("zone-a", nil)
	cache.SetZone("zone-b", nil)
	cache.SetZone("zone-c", nil)

	if cache.Len() != 2 {
		t.Errorf("expected 2 snapshots after eviction, got %d", cache.Len())
	}
	if cache.HasZone("zone-a") {
		t.Errorf("expected oldest zone to be evicted")
	}
}
