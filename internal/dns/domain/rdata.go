package domain

import (
	"fmt"
	"net"
	"strings"
)

// RData is the decoded body of a resource record. The variant set is
// closed: one plain struct per structurally supported RFC 1035 type,
// plus OpaqueData carrying raw bytes for everything else. Variants are
// immutable value objects; none holds offsets into the source buffer.
type RData interface {
	// RRType returns the record type code this body belongs to.
	RRType() RRType

	// String returns the record body in zone-file presentation form.
	String() string
}

// AData is an IPv4 host address (RFC 1035 §3.4.1).
type AData struct {
	Addr [4]byte
}

func (d AData) RRType() RRType { return RRTypeA }

func (d AData) String() string { return net.IP(d.Addr[:]).String() }

// NSData names an authoritative name server (RFC 1035 §3.3.11).
type NSData struct {
	Host string
}

func (d NSData) RRType() RRType { return RRTypeNS }

func (d NSData) String() string { return d.Host }

// CNAMEData names the canonical name for an alias (RFC 1035 §3.3.1).
type CNAMEData struct {
	Target string
}

func (d CNAMEData) RRType() RRType { return RRTypeCNAME }

func (d CNAMEData) String() string { return d.Target }

// SOAData marks the start of a zone of authority (RFC 1035 §3.3.13).
type SOAData struct {
	MName   string // primary name server for the zone
	RName   string // mailbox of the person responsible
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (d SOAData) RRType() RRType { return RRTypeSOA }

func (d SOAData) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d",
		d.MName, d.RName, d.Serial, d.Refresh, d.Retry, d.Expire, d.Minimum)
}

// WKSData describes well known services at an address (RFC 1035 §3.4.2).
// Bitmap holds one bit per port, taken verbatim from the wire.
type WKSData struct {
	Addr     [4]byte
	Protocol uint8
	Bitmap   []byte
}

func (d WKSData) RRType() RRType { return RRTypeWKS }

func (d WKSData) String() string {
	return fmt.Sprintf("%s %d %x", net.IP(d.Addr[:]).String(), d.Protocol, d.Bitmap)
}

// PTRData points to some location in the name space (RFC 1035 §3.3.12).
type PTRData struct {
	Target string
}

func (d PTRData) RRType() RRType { return RRTypePTR }

func (d PTRData) String() string { return d.Target }

// HINFOData identifies host CPU and OS (RFC 1035 §3.3.2). Both fields
// are opaque character strings, not restricted to any charset.
type HINFOData struct {
	CPU string
	OS  string
}

func (d HINFOData) RRType() RRType { return RRTypeHINFO }

func (d HINFOData) String() string { return fmt.Sprintf("%q %q", d.CPU, d.OS) }

// MXData names a mail exchange and its preference (RFC 1035 §3.3.9).
type MXData struct {
	Preference uint16
	Exchange   string
}

func (d MXData) RRType() RRType { return RRTypeMX }

func (d MXData) String() string { return fmt.Sprintf("%d %s", d.Preference, d.Exchange) }

// TXTData holds one or more character strings (RFC 1035 §3.3.14),
// in wire order.
type TXTData struct {
	Segments []string
}

func (d TXTData) RRType() RRType { return RRTypeTXT }

func (d TXTData) String() string {
	quoted := make([]string, len(d.Segments))
	for i, s := range d.Segments {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, " ")
}

// OpaqueData carries the verbatim RDATA of a record type this codec
// does not decode structurally. It re-encodes byte-for-byte, so an
// unknown type survives a decode/encode round trip unchanged.
type OpaqueData struct {
	Code RRType
	Raw  []byte
}

func (d OpaqueData) RRType() RRType { return d.Code }

// String renders the body in RFC 3597 unknown-type syntax: \# length hex.
func (d OpaqueData) String() string {
	if len(d.Raw) == 0 {
		return "\\# 0"
	}
	return fmt.Sprintf("\\# %d %x", len(d.Raw), d.Raw)
}
