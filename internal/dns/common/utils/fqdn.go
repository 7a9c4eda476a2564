package utils

import "strings"

// CanonicalFQDN returns a DNS name in the absolute form the control-plane
// API expects:
// - Lowercased
// - Trimmed of surrounding whitespace
// - Exactly one trailing dot
func CanonicalFQDN(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	for strings.HasSuffix(name, ".") {
		name = strings.TrimSuffix(name, ".")
	}
	if name == "" {
		return ""
	}
	return name + "."
}
