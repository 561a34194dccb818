package domain

import "testing"

func TestRCode_IsValid(t *testing.T) {
	for r := RCode(0); r <= 0x0F; r++ {
		if !r.IsValid() {
			t.Errorf("IsValid(%d) = false, want true", r)
		}
	}
	for _, r := range []RCode{16, 17, 255} {
		if r.IsValid() {
			t.Errorf("IsValid(%d) = true, want false", r)
		}
	}
}

func TestRCode_String(t *testing.T) {
	cases := []struct {
		r    RCode
		want string
	}{
		{0, "NOERROR"}, {1, "FORMERR"}, {2, "SERVFAIL"}, {3, "NXDOMAIN"},
		{4, "NOTIMP"}, {5, "REFUSED"},
		{6, "RCODE6"}, {15, "RCODE15"},
	}
	for _, tc := range cases {
		if got := tc.r.String(); got != tc.want {
			t.Errorf("String(%d) = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestOpCode_String(t *testing.T) {
	cases := []struct {
		o    OpCode
		want string
	}{
		{0, "QUERY"}, {1, "IQUERY"}, {2, "STATUS"},
		{3, "OPCODE3"}, {15, "OPCODE15"},
	}
	for _, tc := range cases {
		if got := tc.o.String(); got != tc.want {
			t.Errorf("String(%d) = %v, want %v", tc.o, got, tc.want)
		}
	}
}
