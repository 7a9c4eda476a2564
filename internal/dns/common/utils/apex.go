package utils

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// ApexZone returns the registrable apex for a record owner name, in
// canonical absolute form. Used to decide which managed zone a record
// belongs to when a zone file mixes names. Falls back to the input name
// when the public suffix list cannot resolve it (e.g. bare TLDs or
// internal names).
func ApexZone(name string) string {
	relative := strings.TrimSuffix(CanonicalFQDN(name), ".")
	apex, err := publicsuffix.EffectiveTLDPlusOne(relative)
	if err != nil {
		apex = relative
	}
	return CanonicalFQDN(apex)
}
