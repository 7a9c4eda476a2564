package domain

import "testing"

func TestRRType_String(t *testing.T) {
	tests := []struct {
		rrType   RRType
		expected string
	}{
		{RRTypeA, "A"},
		{RRTypeNS, "NS"},
		{RRTypeCNAME, "CNAME"},
		{RRTypeSOA, "SOA"},
		{RRTypePTR, "PTR"},
		{RRTypeMX, "MX"},
		{RRTypeTXT, "TXT"},
		{RRTypeAAAA, "AAAA"},
		{RRTypeSRV, "SRV"},
		{RRTypeNAPTR, "NAPTR"},
		{RRTypeDS, "DS"},
		{RRTypeDNSKEY, "DNSKEY"},
		{RRTypeTLSA, "TLSA"},
		{RRTypeSPF, "SPF"},
		{RRTypeCAA, "CAA"},
		{RRType(41), "UNKNOWN(41)"},
	}
	for _, tt := range tests {
		if got := tt.rrType.String(); got != tt.expected {
			t.Errorf("RRType(%d).String() = %q, want %q", tt.rrType, got, tt.expected)
		}
	}
}

func TestRRTypeFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected RRType
	}{
		{"A", RRTypeA},
		{"a", RRTypeA},
		{"  aaaa ", RRTypeAAAA},
		{"Mx", RRTypeMX},
		{"soa", RRTypeSOA},
		{"spf", RRTypeSPF},
		{"caa", RRTypeCAA},
		{"BOGUS", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := RRTypeFromString(tt.input); got != tt.expected {
			t.Errorf("RRTypeFromString(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestRRType_IsValid(t *testing.T) {
	for _, valid := range []RRType{RRTypeA, RRTypeNS, RRTypeCNAME, RRTypeSOA, RRTypePTR,
		RRTypeMX, RRTypeTXT, RRTypeAAAA, RRTypeSRV, RRTypeNAPTR, RRTypeDS,
		RRTypeDNSKEY, RRTypeTLSA, RRTypeSPF, RRTypeCAA} {
		if !valid.IsValid() {
			t.Errorf("expected %v to be valid", valid)
		}
	}
	for _, invalid := range []RRType{0, 3, 41, 255, 1000} {
		if invalid.IsValid() {
			t.Errorf("expected %v to be invalid", invalid)
		}
	}
}
