package rrdata

import (
	"fmt"

	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// decodeAData decodes an A record body: exactly four address octets.
func decodeAData(msg []byte, off, rdlen int) (domain.RData, error) {
	if rdlen != 4 {
		return nil, fmt.Errorf("A RDATA at offset %d is %d bytes, want 4: %w",
			off, rdlen, domain.ErrTruncatedInput)
	}
	var d domain.AData
	copy(d.Addr[:], msg[off:off+4])
	return d, nil
}

// encodeAData encodes an A record body into its four address octets.
func encodeAData(d domain.AData) ([]byte, error) {
	out := make([]byte, 4)
	copy(out, d.Addr[:])
	return out, nil
}
