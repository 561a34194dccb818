package domain

import (
	"testing"
)

func TestRRType_IsSupported(t *testing.T) {
	cases := []struct {
		value RRType
		want  bool
	}{
		{1, true}, {2, true}, {5, true}, {6, true}, {11, true}, {12, true},
		{13, true}, {15, true}, {16, true},
		{0, false}, {3, false}, {4, false}, {7, false}, {8, false}, {9, false},
		{10, false}, {14, false}, {28, false}, {99, false}, {9999, false},
	}
	for _, tc := range cases {
		if got := tc.value.IsSupported(); got != tc.want {
			t.Errorf("IsSupported(%d) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestRRType_String(t *testing.T) {
	cases := []struct {
		t    RRType
		want string
	}{
		{1, "A"}, {2, "NS"}, {5, "CNAME"}, {6, "SOA"}, {11, "WKS"}, {12, "PTR"},
		{13, "HINFO"}, {15, "MX"}, {16, "TXT"},
		{0, "TYPE0"}, {3, "TYPE3"}, {99, "TYPE99"}, {9999, "TYPE9999"},
	}
	for _, tc := range cases {
		if got := tc.t.String(); got != tc.want {
			t.Errorf("String(%d) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestRRTypeFromString(t *testing.T) {
	cases := []struct {
		input string
		want  RRType
	}{
		{"A", 1}, {"NS", 2}, {"CNAME", 5}, {"SOA", 6}, {"WKS", 11}, {"PTR", 12},
		{"HINFO", 13}, {"MX", 15}, {"TXT", 16},
		{"AAAA", 0}, {"", 0}, {"foo", 0},
	}
	for _, tc := range cases {
		if got := RRTypeFromString(tc.input); got != tc.want {
			t.Errorf("RRTypeFromString(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
