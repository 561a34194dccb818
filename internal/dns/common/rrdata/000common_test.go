package rrdata

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

func TestDecode_UnsupportedTypeBecomesOpaque(t *testing.T) {
	msg := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	rd, err := Decode(99, msg, 0, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opaque, ok := rd.(domain.OpaqueData)
	if !ok {
		t.Fatalf("expected OpaqueData, got %T", rd)
	}
	if opaque.Code != 99 {
		t.Errorf("Code = %d, want 99", opaque.Code)
	}
	if !bytes.Equal(opaque.Raw, msg) {
		t.Errorf("Raw = %v, want %v", opaque.Raw, msg)
	}

	// Opaque bodies must re-encode byte-for-byte.
	reencoded, err := Encode(opaque)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(reencoded, msg) {
		t.Errorf("Encode = %v, want %v", reencoded, msg)
	}
}

func TestDecode_ReservedTypeCodesStayOpaque(t *testing.T) {
	// The historically reserved/experimental codes have no structured decoding.
	msg := []byte{1, 2, 3}
	for _, code := range []domain.RRType{3, 4, 7, 8, 9, 10, 14} {
		rd, err := Decode(code, msg, 0, 3)
		if err != nil {
			t.Errorf("type %d: unexpected error: %v", code, err)
			continue
		}
		if _, ok := rd.(domain.OpaqueData); !ok {
			t.Errorf("type %d: expected OpaqueData, got %T", code, rd)
		}
	}
}

func TestDecode_OpaqueDoesNotAliasBuffer(t *testing.T) {
	msg := []byte{1, 2, 3, 4}
	rd, err := Decode(99, msg, 0, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg[0] = 0xFF
	if rd.(domain.OpaqueData).Raw[0] != 1 {
		t.Error("opaque RDATA aliases the source buffer")
	}
}

func TestDecode_RdlengthPastBufferEnd(t *testing.T) {
	msg := []byte{1, 2}
	_, err := Decode(domain.RRTypeA, msg, 0, 4)
	if !errors.Is(err, domain.ErrTruncatedInput) {
		t.Errorf("expected ErrTruncatedInput, got %v", err)
	}
}

func TestEncode_RejectsNilVariant(t *testing.T) {
	if _, err := Encode(nil); err == nil {
		t.Error("expected error for nil RData")
	}
}
