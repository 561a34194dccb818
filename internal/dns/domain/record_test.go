package domain

import "testing"

func TestNewResourceRecord(t *testing.T) {
	rr, err := NewResourceRecord("example.com", RRTypeA, RRClassIN, 300, AData{Addr: [4]byte{192, 0, 2, 1}})
	if err != nil {
		t.Fatalf("NewResourceRecord returned error: %v", err)
	}
	if rr.TTL != 300 || rr.Type != RRTypeA {
		t.Errorf("unexpected record: %+v", rr)
	}
}

func TestResourceRecord_Validate(t *testing.T) {
	cases := []struct {
		name    string
		rr      ResourceRecord
		wantErr bool
	}{
		{
			name: "valid",
			rr:   ResourceRecord{Name: "a.com", Type: RRTypeNS, Class: RRClassIN, Data: NSData{Host: "ns1.a.com"}},
		},
		{
			name:    "missing rdata",
			rr:      ResourceRecord{Name: "a.com", Type: RRTypeA, Class: RRClassIN},
			wantErr: true,
		},
		{
			name:    "rdata type mismatch",
			rr:      ResourceRecord{Name: "a.com", Type: RRTypeA, Class: RRClassIN, Data: NSData{Host: "ns1.a.com"}},
			wantErr: true,
		},
		{
			name:    "invalid class",
			rr:      ResourceRecord{Name: "a.com", Type: RRTypeA, Class: RRClass(9), Data: AData{}},
			wantErr: true,
		},
		{
			name: "opaque rdata matches its carried code",
			rr:   ResourceRecord{Name: "a.com", Type: RRType(99), Class: RRClassIN, Data: OpaqueData{Code: 99, Raw: []byte{1}}},
		},
	}
	for _, tc := range cases {
		err := tc.rr.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestResourceRecord_String(t *testing.T) {
	rr := ResourceRecord{Name: "example.com", Type: RRTypeA, Class: RRClassIN, TTL: 300,
		Data: AData{Addr: [4]byte{192, 0, 2, 1}}}
	if got := rr.String(); got != "example.com 300 IN A 192.0.2.1" {
		t.Errorf("String() = %q", got)
	}

	// The root name renders as a single dot.
	root := ResourceRecord{Name: "", Type: RRTypeNS, Class: RRClassIN, TTL: 86400,
		Data: NSData{Host: "a.root-servers.net"}}
	if got := root.String(); got != ". 86400 IN NS a.root-servers.net" {
		t.Errorf("String() = %q", got)
	}
}
