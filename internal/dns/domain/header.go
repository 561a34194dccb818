package domain

import "fmt"

// Header represents the fixed DNS message header of RFC 1035 §4.1.1,
// minus the four section counts. Counts are never stored: they are
// derived from the actual section lengths at encode time, so a count
// field can never drift out of sync with its list.
type Header struct {
	ID     uint16
	QR     bool // false = query, true = response
	OpCode OpCode
	AA     bool // authoritative answer
	TC     bool // truncated
	RD     bool // recursion desired
	RA     bool // recursion available
	RCode  RCode
}

// NewHeader constructs a Header and validates its fields.
func NewHeader(id uint16, qr bool, opcode OpCode, aa, tc, rd, ra bool, rcode RCode) (Header, error) {
	h := Header{
		ID:     id,
		QR:     qr,
		OpCode: opcode,
		AA:     aa,
		TC:     tc,
		RD:     rd,
		RA:     ra,
		RCode:  rcode,
	}
	if err := h.Validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// NewQueryHeader constructs a standard query header: QR clear,
// opcode QUERY, all flags clear.
func NewQueryHeader(id uint16) Header {
	return Header{ID: id, OpCode: OpCodeQuery}
}

// Validate checks whether the 4-bit fields fit their wire encoding.
func (h Header) Validate() error {
	if !h.OpCode.IsValid() {
		return fmt.Errorf("opcode %d does not fit in 4 bits", h.OpCode)
	}
	if !h.RCode.IsValid() {
		return fmt.Errorf("rcode %d does not fit in 4 bits", h.RCode)
	}
	return nil
}

// String returns a multi-field debug representation of the header.
func (h Header) String() string {
	return fmt.Sprintf("id=%d qr=%t opcode=%s aa=%t tc=%t rd=%t ra=%t rcode=%s",
		h.ID, h.QR, h.OpCode, h.AA, h.TC, h.RD, h.RA, h.RCode)
}
