package domain

import "fmt"

// RCode represents a DNS response code (RCODE), the low 4 bits
// of the second flag byte in the message header.
type RCode uint8

// DNS response code constants from RFC 1035 §4.1.1.
const (
	RCodeNoError  RCode = 0 // NOERROR - No error condition
	RCodeFormErr  RCode = 1 // FORMERR - Format error
	RCodeServFail RCode = 2 // SERVFAIL - Server failure
	RCodeNXDomain RCode = 3 // NXDOMAIN - Name error
	RCodeNotImp   RCode = 4 // NOTIMP - Not implemented
	RCodeRefused  RCode = 5 // REFUSED - Query refused
)

// IsValid returns true if the RCode fits in the 4-bit header field.
func (r RCode) IsValid() bool {
	return r <= 0x0F
}

// String returns the textual representation of the RCode.
func (r RCode) String() string {
	switch r {
	case RCodeNoError:
		return "NOERROR"
	case RCodeFormErr:
		return "FORMERR"
	case RCodeServFail:
		return "SERVFAIL"
	case RCodeNXDomain:
		return "NXDOMAIN"
	case RCodeNotImp:
		return "NOTIMP"
	case RCodeRefused:
		return "REFUSED"
	default:
		return fmt.Sprintf("RCODE%d", uint8(r))
	}
}

// OpCode represents the kind of query carried by a message,
// the 4-bit field following QR in the header.
type OpCode uint8

// DNS opcode constants from RFC 1035 §4.1.1.
const (
	OpCodeQuery  OpCode = 0 // QUERY - Standard query
	OpCodeIQuery OpCode = 1 // IQUERY - Inverse query (obsolete)
	OpCodeStatus OpCode = 2 // STATUS - Server status request
)

// IsValid returns true if the OpCode fits in the 4-bit header field.
func (o OpCode) IsValid() bool {
	return o <= 0x0F
}

// String returns the textual representation of the OpCode.
func (o OpCode) String() string {
	switch o {
	case OpCodeQuery:
		return "QUERY"
	case OpCodeIQuery:
		return "IQUERY"
	case OpCodeStatus:
		return "STATUS"
	default:
		return fmt.Sprintf("OPCODE%d", uint8(o))
	}
}
