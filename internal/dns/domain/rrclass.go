package domain

import "fmt"

// RRClass represents a DNS class (usually IN for Internet).
type RRClass uint16

// DNS Resource Record Class constants from RFC 1035.
const (
	RRClassIN  RRClass = 1   // IN - Internet
	RRClassCS  RRClass = 2   // CS - CSNET (obsolete)
	RRClassCH  RRClass = 3   // CH - Chaos
	RRClassHS  RRClass = 4   // HS - Hesiod
	RRClassANY RRClass = 255 // ANY - Any class (query only)
)

// IsValid returns true if the RRClass is one of the known classes.
func (c RRClass) IsValid() bool {
	switch c {
	case RRClassIN, RRClassCS, RRClassCH, RRClassHS, RRClassANY:
		return true
	default:
		return false
	}
}

// String returns the textual representation of the RRClass.
func (c RRClass) String() string {
	switch c {
	case RRClassIN:
		return "IN"
	case RRClassCS:
		return "CS"
	case RRClassCH:
		return "CH"
	case RRClassHS:
		return "HS"
	case RRClassANY:
		return "ANY"
	default:
		return fmt.Sprintf("CLASS%d", uint16(c))
	}
}
