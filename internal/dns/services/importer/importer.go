// Package importer implements the bulk "create records from zone file"
// flow: records parsed from zone files are grouped into record sets, diffed
// against the journal and the zone's remote state, and the remainder is
// submitted as one atomic change per zone.
package importer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/haukened/rr-dnsctl/internal/dns/common/log"
	"github.com/haukened/rr-dnsctl/internal/dns/domain"
	"github.com/haukened/rr-dnsctl/internal/dns/wire"
)

// Error message constants for consistent error handling
const (
	errControlPlaneRequired = "control plane client is required"
	errJournalRequired      = "journal is required"
	errCacheRequired        = "snapshot cache is required"
	errInvalidRecord        = "invalid record %s: %w"
)

// Service orchestrates zone-file imports against the control plane.
type Service struct {
	api     ControlPlane
	journal Journal
	cache   SnapshotCache
	log     log.Logger
	wait    bool
}

// Options defines configuration parameters for the importer service.
type Options struct {
	// required collaborators
	ControlPlane ControlPlane
	Journal      Journal
	Cache        SnapshotCache
	// WaitForDone blocks each import until the service reports the change
	// applied.
	WaitForDone bool
	// Logger defaults to the global logger.
	Logger log.Logger
}

// New creates an importer service with the specified options.
func New(opts Options) (*Service, error) {
	if opts.ControlPlane == nil {
		return nil, fmt.Errorf(errControlPlaneRequired)
	}
	if opts.Journal == nil {
		return nil, fmt.Errorf(errJournalRequired)
	}
	if opts.Cache == nil {
		return nil, fmt.Errorf(errCacheRequired)
	}
	if opts.Logger == nil {
		opts.Logger = log.GetLogger()
	}
	return &Service{
		api:     opts.ControlPlane,
		journal: opts.Journal,
		cache:   opts.Cache,
		log:     opts.Logger,
		wait:    opts.WaitForDone,
	}, nil
}

// Report summarizes one zone import.
type Report struct {
	Zone             string
	ChangeID         string
	Added            int // record sets submitted as additions
	Replaced         int // record sets that replaced a differing remote set
	SkippedJournaled int // record sets skipped via the journal
	SkippedExisting  int // record sets already present remotely, unchanged
	Done             bool
}

// Import applies the given records to one managed zone. Records are grouped
// into record sets by owner name and type; sets already journaled or
// already live remotely with identical data are skipped, sets that differ
// from the remote state are replaced (deletion plus addition in the same
// change), and the rest are added. When every set is skipped the report
// carries no change ID and nothing is submitted.
func (s *Service) Import(ctx context.Context, zone string, records []domain.ResourceRecord) (*Report, error) {
	for _, rr := range records {
		if err := rr.Validate(); err != nil {
			return nil, fmt.Errorf(errInvalidRecord, rr.Name, err)
		}
	}

	candidates := groupRecordSets(records)
	report := &Report{Zone: zone}

	if err := s.ensureSnapshot(ctx, zone); err != nil {
		return nil, err
	}

	var change wire.Change
	var fingerprints []string
	for _, rs := range candidates {
		fp := fingerprint(zone, rs)

		seen, err := s.journal.Seen(fp)
		if err != nil {
			return nil, fmt.Errorf("journal lookup: %w", err)
		}
		if seen {
			report.SkippedJournaled++
			continue
		}

		remote, exists := s.cache.Get(zone, rs.Name, rs.Type)
		switch {
		case exists && sameRecordSet(remote, rs):
			report.SkippedExisting++
			continue
		case exists:
			// the set is live with different data; replace it atomically
			change.Deletions = append(change.Deletions, remote)
			change.Additions = append(change.Additions, rs)
			report.Replaced++
		default:
			change.Additions = append(change.Additions, rs)
			report.Added++
		}
		fingerprints = append(fingerprints, fp)
	}

	if len(change.Additions) == 0 && len(change.Deletions) == 0 {
		s.log.Info(map[string]any{
			"zone":              zone,
			"skipped_journaled": report.SkippedJournaled,
			"skipped_existing":  report.SkippedExisting,
		}, "nothing to import")
		return report, nil
	}

	created, err := s.api.CreateChange(ctx, zone, change)
	if err != nil {
		return nil, fmt.Errorf("submit change: %w", err)
	}
	report.ChangeID = created.ID
	report.Done = created.IsDone()

	if s.wait && !created.IsDone() {
		done, err := s.api.WaitChange(ctx, zone, created.ID)
		if err != nil {
			return nil, fmt.Errorf("wait for change %s: %w", created.ID, err)
		}
		report.Done = done.IsDone()
	}

	if err := s.journal.Record(fingerprints, created.ID); err != nil {
		return nil, fmt.Errorf("journal change %s: %w", created.ID, err)
	}
	s.cache.InvalidateZone(zone)

	s.log.Info(map[string]any{
		"zone":      zone,
		"change_id": report.ChangeID,
		"added":     report.Added,
		"replaced":  report.Replaced,
	}, "imported records")
	return report, nil
}

// ensureSnapshot fetches the zone's remote record sets once per cache
// lifetime.
func (s *Service) ensureSnapshot(ctx context.Context, zone string) error {
	if s.cache.HasZone(zone) {
		return nil
	}
	rrsets, err := s.api.ListRecordSets(ctx, zone)
	if err != nil {
		return fmt.Errorf("list record sets for %s: %w", zone, err)
	}
	s.cache.SetZone(zone, rrsets)
	return nil
}

// groupRecordSets merges records sharing an owner name and type into one
// record set, concatenating data values. The first record's TTL wins within
// a group. Output order is deterministic (sorted by set key).
func groupRecordSets(records []domain.ResourceRecord) []wire.RecordSet {
	groups := make(map[string]wire.RecordSet)
	for _, rr := range records {
		key := rr.SetKey()
		rs, ok := groups[key]
		if !ok {
			groups[key] = wire.FromRecord(rr)
			continue
		}
		rs.RRDatas = append(rs.RRDatas, rr.Data...)
		groups[key] = rs
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]wire.RecordSet, len(keys))
	for i, k := range keys {
		out[i] = groups[k]
	}
	return out
}

// fingerprint identifies a record set's exact content within a zone. Data
// values are sorted so value order in the zone file does not matter.
func fingerprint(zone string, rs wire.RecordSet) string {
	data := make([]string, len(rs.RRDatas))
	copy(data, rs.RRDatas)
	sort.Strings(data)
	return fmt.Sprintf("%s|%s|%s|%d|%s", zone, rs.Name, rs.Type, rs.TTL, strings.Join(data, ","))
}

// sameRecordSet reports whether two record sets carry the same TTL and the
// same data values, ignoring value order.
func sameRecordSet(a, b wire.RecordSet) bool {
	if a.TTL != b.TTL || len(a.RRDatas) != len(b.RRDatas) {
		return false
	}
	as := make([]string, len(a.RRDatas))
	bs := make([]string, len(b.RRDatas))
	copy(as, a.RRDatas)
	copy(bs, b.RRDatas)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
