// Package zonefile loads structured zone files (YAML, JSON, or TOML) and
// converts them into resource records for bulk import. A zone file names its
// zone root and a default TTL, then lists owner names, each with record
// types and their field maps:
//
//	zone_root: example.com.
//	ttl: 300
//	www:
//	  a:
//	    ip: 1.2.3.4
//	mail:
//	  mx:
//	    preference: 10
//	    host: mail.example.com.
//
// Single-field types also accept a scalar shorthand (a: 1.2.3.4). Multiple
// values for one name and type are written as a list.
package zonefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"

	"github.com/haukened/rr-dnsctl/internal/dns/common/utils"
	"github.com/haukened/rr-dnsctl/internal/dns/common/zonetext"
	"github.com/haukened/rr-dnsctl/internal/dns/domain"
)

// reserved top-level keys that are not owner names
const (
	keyZoneRoot = "zone_root"
	keyTTL      = "ttl"
)

// LoadDirectory walks the given directory, loading all supported zone files
// (YAML, JSON, TOML) and returning a map of zone roots to their records.
// Unsupported file extensions are skipped; any parse failure aborts the walk.
func LoadDirectory(dir string, defaultTTL time.Duration) (map[string][]domain.ResourceRecord, error) {
	zones := make(map[string][]domain.ResourceRecord)

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		root, records, err := LoadFile(path, defaultTTL)
		if err != nil {
			return fmt.Errorf("error parsing zone file %s: %w", path, err)
		}
		if root != "" && len(records) > 0 {
			zones[root] = append(zones[root], records...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return zones, nil
}

// LoadFile loads and parses a single zone file, returning the zone root and
// its records. Files with an unsupported extension yield an empty root and
// no records.
func LoadFile(path string, defaultTTL time.Duration) (string, []domain.ResourceRecord, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	case ".toml":
		parser = toml.Parser()
	default:
		return "", nil, nil // unsupported file type
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return "", nil, fmt.Errorf("failed to load zone file %s: %w", path, err)
	}

	root := k.String(keyZoneRoot)
	if root == "" {
		return "", nil, fmt.Errorf("zone file %s missing '%s'", path, keyZoneRoot)
	}
	root = utils.CanonicalFQDN(root)

	ttl := uint32(defaultTTL.Seconds())
	if fileTTL := k.Int(keyTTL); fileTTL > 0 {
		ttl = uint32(fileTTL)
	}

	var records []domain.ResourceRecord
	for name, raw := range k.Raw() {
		if name == keyZoneRoot || name == keyTTL {
			continue
		}
		rawMap, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		fqdn := expandName(name, root)
		for rrType, val := range rawMap {
			recs, err := buildRecords(fqdn, rrType, val, ttl)
			if err != nil {
				return "", nil, fmt.Errorf("invalid record in %s: %w", path, err)
			}
			records = append(records, recs...)
		}
	}
	return root, records, nil
}

// expandName returns the fully qualified owner name for a label, expanding
// '@' to the zone root and appending the root when the label is relative.
func expandName(label, root string) string {
	if label == "@" {
		return root
	}
	if strings.HasSuffix(label, ".") {
		return utils.CanonicalFQDN(label)
	}
	return utils.CanonicalFQDN(label + "." + root)
}

// buildRecords converts one name/type entry into resource records. The
// value may be a field map, a list of field maps, a scalar shorthand, or a
// list of scalars.
func buildRecords(fqdn, rrType string, val any, ttl uint32) ([]domain.ResourceRecord, error) {
	fieldMaps, err := normalize(rrType, val)
	if err != nil {
		return nil, err
	}
	records := make([]domain.ResourceRecord, 0, len(fieldMaps))
	for _, fields := range fieldMaps {
		fields["name"] = fqdn
		if _, ok := fields["ttl"]; !ok {
			fields["ttl"] = ttl
		}
		rr, err := zonetext.FromZoneRecord(rrType, fields)
		if err != nil {
			return nil, err
		}
		records = append(records, rr)
	}
	return records, nil
}

// normalize coerces a raw parsed value into a slice of field maps. Scalar
// shorthand only works for types whose template has exactly one field.
func normalize(rrType string, val any) ([]map[string]any, error) {
	switch v := val.(type) {
	case map[string]any:
		return []map[string]any{copyFields(v)}, nil
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, elem := range v {
			maps, err := normalize(rrType, elem)
			if err != nil {
				return nil, err
			}
			out = append(out, maps...)
		}
		return out, nil
	default:
		fields, err := scalarFields(rrType, v)
		if err != nil {
			return nil, err
		}
		return []map[string]any{fields}, nil
	}
}

// scalarFields maps a scalar shorthand value onto the type's single
// template field.
func scalarFields(rrType string, val any) (map[string]any, error) {
	field, ok := zonetext.ScalarField(rrType)
	if !ok {
		return nil, fmt.Errorf("%s records require a field map, not a scalar value", strings.ToUpper(rrType))
	}
	return map[string]any{field: val}, nil
}

// copyFields shallow-copies a parsed field map so name/ttl injection does
// not mutate koanf's raw tree.
func copyFields(m map[string]any) map[string]any {
	out := make(map[string]any, len(m)+2)
	for k, v := range m {
		out[k] = v
	}
	return out
}
