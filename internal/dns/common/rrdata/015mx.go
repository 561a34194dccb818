package rrdata

import (
	"encoding/binary"
	"fmt"

	"github.com/mcromptonjr/simpledns/internal/dns/common/names"
	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// decodeMXData decodes an MX record body: a 16-bit preference followed
// by the exchange domain name.
func decodeMXData(msg []byte, off, rdlen int) (domain.RData, error) {
	if rdlen < 2 {
		return nil, fmt.Errorf("MX RDATA at offset %d is %d bytes, want at least 2: %w",
			off, rdlen, domain.ErrTruncatedInput)
	}
	pref := binary.BigEndian.Uint16(msg[off : off+2])
	exchange, _, err := decodeBoundedName(msg, off+2, off+rdlen)
	if err != nil {
		return nil, fmt.Errorf("MX exchange: %w", err)
	}
	return domain.MXData{Preference: pref, Exchange: exchange}, nil
}

// encodeMXData encodes an MX record body.
func encodeMXData(d domain.MXData) ([]byte, error) {
	exchange, err := names.EncodeName(d.Exchange)
	if err != nil {
		return nil, fmt.Errorf("MX exchange: %w", err)
	}
	encoded := make([]byte, 2, 2+len(exchange))
	binary.BigEndian.PutUint16(encoded, d.Preference)
	return append(encoded, exchange...), nil
}
