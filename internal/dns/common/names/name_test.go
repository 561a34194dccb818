package names

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

func TestDecodeName_Plain(t *testing.T) {
	tests := []struct {
		name     string
		msg      []byte
		off      int
		expected string
		wantNext int
	}{
		{
			name:     "two labels",
			msg:      []byte{6, 'g', 'o', 'o', 'g', 'l', 'e', 3, 'c', 'o', 'm', 0},
			off:      0,
			expected: "google.com",
			wantNext: 12,
		},
		{
			name:     "root name",
			msg:      []byte{0},
			off:      0,
			expected: "",
			wantNext: 1,
		},
		{
			name:     "name not at buffer start",
			msg:      []byte{0xFF, 0xFF, 3, 'f', 'o', 'o', 0},
			off:      2,
			expected: "foo",
			wantNext: 7,
		},
		{
			name:     "opaque non-ascii label bytes",
			msg:      []byte{2, 0xC3, 0xA9, 0},
			off:      0,
			expected: "\xc3\xa9",
			wantNext: 4,
		},
	}

	for _, tt := range tests {
		got, next, err := DecodeName(tt.msg, tt.off)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("%s: DecodeName = %q, want %q", tt.name, got, tt.expected)
		}
		if next != tt.wantNext {
			t.Errorf("%s: next offset = %d, want %d", tt.name, next, tt.wantNext)
		}
	}
}

func TestDecodeName_Pointer(t *testing.T) {
	// "google.com" at offset 0, then a name "mail" + pointer to offset 0.
	msg := []byte{
		6, 'g', 'o', 'o', 'g', 'l', 'e', 3, 'c', 'o', 'm', 0, // offset 0..11
		4, 'm', 'a', 'i', 'l', 0xC0, 0x00, // offset 12..18
	}

	name, next, err := DecodeName(msg, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "mail.google.com" {
		t.Errorf("DecodeName = %q, want %q", name, "mail.google.com")
	}
	// The pointer consumes exactly 2 bytes at the current position;
	// bytes consumed at the target must not advance the cursor.
	if next != 19 {
		t.Errorf("next offset = %d, want 19", next)
	}

	// The referenced name decodes identically to its first occurrence.
	direct, _, err := DecodeName(msg, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(name, direct) {
		t.Errorf("pointer target %q is not a suffix of %q", direct, name)
	}
}

func TestDecodeName_PointerChain(t *testing.T) {
	// com at 0; example->ptr(0) at 4; www->ptr(4) at 14.
	msg := []byte{
		3, 'c', 'o', 'm', 0, // 0..4
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 0xC0, 0x00, // 5..14
		3, 'w', 'w', 'w', 0xC0, 0x05, // 15..20
	}
	name, next, err := DecodeName(msg, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "www.example.com" {
		t.Errorf("DecodeName = %q, want %q", name, "www.example.com")
	}
	if next != 21 {
		t.Errorf("next offset = %d, want 21", next)
	}
}

func TestDecodeName_PointerCycle(t *testing.T) {
	// Two pointers referencing each other.
	msg := []byte{0xC0, 0x02, 0xC0, 0x00}
	_, _, err := DecodeName(msg, 0)
	if !errors.Is(err, domain.ErrInvalidPointer) {
		t.Errorf("expected ErrInvalidPointer for cycle, got %v", err)
	}

	// Self-referencing pointer.
	msg = []byte{0xC0, 0x00}
	_, _, err = DecodeName(msg, 0)
	if !errors.Is(err, domain.ErrInvalidPointer) {
		t.Errorf("expected ErrInvalidPointer for self reference, got %v", err)
	}
}

func TestDecodeName_PointerOutOfBounds(t *testing.T) {
	msg := []byte{0xC0, 0xFF}
	_, _, err := DecodeName(msg, 0)
	if !errors.Is(err, domain.ErrInvalidPointer) {
		t.Errorf("expected ErrInvalidPointer, got %v", err)
	}
}

func TestDecodeName_ReservedLabelBits(t *testing.T) {
	for _, b := range []byte{0x40, 0x80} {
		msg := []byte{b | 1, 'a', 0}
		_, _, err := DecodeName(msg, 0)
		if !errors.Is(err, domain.ErrMalformedLabel) {
			t.Errorf("label type %#02x: expected ErrMalformedLabel, got %v", b, err)
		}
	}
}

func TestDecodeName_Truncated(t *testing.T) {
	tests := [][]byte{
		{},                  // no length byte
		{5, 'a', 'b'},       // label shorter than declared
		{3, 'f', 'o', 'o'},  // missing terminator
		{0xC0},              // pointer missing second byte
		{2, 'h', 'i', 0xC0}, // pointer missing second byte after label
	}
	for _, msg := range tests {
		_, _, err := DecodeName(msg, 0)
		if !errors.Is(err, domain.ErrTruncatedInput) {
			t.Errorf("DecodeName(%v) expected ErrTruncatedInput, got %v", msg, err)
		}
	}
}

func TestDecodeName_TotalLengthBound(t *testing.T) {
	// Five 63-byte labels assemble past the 255 octet bound.
	var msg []byte
	for i := 0; i < 5; i++ {
		msg = append(msg, 63)
		msg = append(msg, bytes.Repeat([]byte{'a'}, 63)...)
	}
	msg = append(msg, 0)
	_, _, err := DecodeName(msg, 0)
	if !errors.Is(err, domain.ErrInvalidPointer) {
		t.Errorf("expected ErrInvalidPointer for oversized name, got %v", err)
	}
}

func TestEncodeName(t *testing.T) {
	tests := []struct {
		input    string
		expected []byte
	}{
		{
			input:    "google.com",
			expected: []byte{6, 'g', 'o', 'o', 'g', 'l', 'e', 3, 'c', 'o', 'm', 0},
		},
		{
			input:    "example.com.", // trailing dot yields an empty label, skipped
			expected: []byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0},
		},
		{
			input:    "",
			expected: []byte{0},
		},
	}
	for _, tt := range tests {
		got, err := EncodeName(tt.input)
		if err != nil {
			t.Errorf("EncodeName(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if !bytes.Equal(got, tt.expected) {
			t.Errorf("EncodeName(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestEncodeName_LabelBoundary(t *testing.T) {
	// 63-byte label is the hard protocol bound; it must round-trip.
	label63 := strings.Repeat("a", 63)
	encoded, err := EncodeName(label63 + ".com")
	if err != nil {
		t.Fatalf("63-byte label: unexpected error: %v", err)
	}
	decoded, _, err := DecodeName(encoded, 0)
	if err != nil {
		t.Fatalf("63-byte label decode: unexpected error: %v", err)
	}
	if decoded != label63+".com" {
		t.Errorf("round trip = %q, want %q", decoded, label63+".com")
	}

	// One byte more must fail encode.
	_, err = EncodeName(strings.Repeat("a", 64) + ".com")
	if !errors.Is(err, domain.ErrLabelTooLong) {
		t.Errorf("64-byte label: expected ErrLabelTooLong, got %v", err)
	}
}

func TestNameRoundTrip(t *testing.T) {
	inputs := []string{"google.com", "a.b.c.d.e", "xn--bcher-kva.example", "foo"}
	for _, input := range inputs {
		encoded, err := EncodeName(input)
		if err != nil {
			t.Errorf("EncodeName(%q) unexpected error: %v", input, err)
			continue
		}
		decoded, next, err := DecodeName(encoded, 0)
		if err != nil {
			t.Errorf("DecodeName(%q) unexpected error: %v", input, err)
			continue
		}
		if decoded != input {
			t.Errorf("round trip = %q, want %q", decoded, input)
		}
		if next != len(encoded) {
			t.Errorf("next offset = %d, want %d", next, len(encoded))
		}
	}
}
