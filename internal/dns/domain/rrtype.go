package domain

import "fmt"

// RRType represents a DNS resource record type (e.g. A, NS, MX).
// See IANA DNS Parameters for assigned codes.
type RRType uint16

// DNS Resource Record Type constants for the RFC 1035 types this
// codec decodes structurally. Everything else is carried as opaque RDATA.
const (
	RRTypeA     RRType = 1  // A - IPv4 address
	RRTypeNS    RRType = 2  // NS - Name server
	RRTypeCNAME RRType = 5  // CNAME - Canonical name
	RRTypeSOA   RRType = 6  // SOA - Start of authority
	RRTypeWKS   RRType = 11 // WKS - Well known services
	RRTypePTR   RRType = 12 // PTR - Pointer
	RRTypeHINFO RRType = 13 // HINFO - Host information
	RRTypeMX    RRType = 15 // MX - Mail exchange
	RRTypeTXT   RRType = 16 // TXT - Text
)

// IsSupported returns true if the RRType has a structured RDATA decoding.
// Unsupported types still parse, but their RDATA stays raw bytes.
func (t RRType) IsSupported() bool {
	switch t {
	case RRTypeA, RRTypeNS, RRTypeCNAME, RRTypeSOA, RRTypeWKS,
		RRTypePTR, RRTypeHINFO, RRTypeMX, RRTypeTXT:
		return true
	default:
		return false
	}
}

// String returns the textual representation of the RRType.
// For unknown types, it returns "TYPE<value>" in RFC 3597 style.
func (t RRType) String() string {
	switch t {
	case RRTypeA:
		return "A"
	case RRTypeNS:
		return "NS"
	case RRTypeCNAME:
		return "CNAME"
	case RRTypeSOA:
		return "SOA"
	case RRTypeWKS:
		return "WKS"
	case RRTypePTR:
		return "PTR"
	case RRTypeHINFO:
		return "HINFO"
	case RRTypeMX:
		return "MX"
	case RRTypeTXT:
		return "TXT"
	default:
		return fmt.Sprintf("TYPE%d", uint16(t))
	}
}

// RRTypeFromString converts a record type string to its corresponding RRType value.
// Returns 0 for unknown names.
func RRTypeFromString(s string) RRType {
	switch s {
	case "A":
		return RRTypeA
	case "NS":
		return RRTypeNS
	case "CNAME":
		return RRTypeCNAME
	case "SOA":
		return RRTypeSOA
	case "WKS":
		return RRTypeWKS
	case "PTR":
		return RRTypePTR
	case "HINFO":
		return RRTypeHINFO
	case "MX":
		return RRTypeMX
	case "TXT":
		return RRTypeTXT
	default:
		return 0
	}
}
