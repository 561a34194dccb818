package rrdata

import (
	"fmt"

	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// decodeWKSData decodes a WKS record body: four address octets, one
// protocol octet, and a port bitmap filling the remaining RDLENGTH bytes
// (RFC 1035 §3.4.2). An empty bitmap is valid.
func decodeWKSData(msg []byte, off, rdlen int) (domain.RData, error) {
	if rdlen < 5 {
		return nil, fmt.Errorf("WKS RDATA at offset %d is %d bytes, want at least 5: %w",
			off, rdlen, domain.ErrTruncatedInput)
	}
	d := domain.WKSData{
		Protocol: msg[off+4],
		Bitmap:   make([]byte, rdlen-5),
	}
	copy(d.Addr[:], msg[off:off+4])
	copy(d.Bitmap, msg[off+5:off+rdlen])
	return d, nil
}

// encodeWKSData encodes a WKS record body.
func encodeWKSData(d domain.WKSData) ([]byte, error) {
	encoded := make([]byte, 0, 5+len(d.Bitmap))
	encoded = append(encoded, d.Addr[:]...)
	encoded = append(encoded, d.Protocol)
	encoded = append(encoded, d.Bitmap...)
	return encoded, nil
}
