// Package rrdata decodes and encodes resource record bodies. Each
// supported RFC 1035 type lives in its own file, named by type code;
// Decode and Encode dispatch over the closed set of domain.RData
// variants. Decoders receive the whole message buffer because names
// inside RDATA may point back into earlier parts of the message.
package rrdata

import (
	"fmt"

	"github.com/mcromptonjr/simpledns/internal/dns/common/names"
	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// Decode decodes the RDATA of one record. off is where the body starts
// in msg and rdlen is the declared RDLENGTH; no decoder consumes more
// than rdlen bytes. An unsupported type code is not an error: the body
// is captured verbatim as OpaqueData so the surrounding message keeps
// parsing and the record re-encodes byte-for-byte.
func Decode(rrType domain.RRType, msg []byte, off, rdlen int) (domain.RData, error) {
	if off < 0 || rdlen < 0 || off+rdlen > len(msg) {
		return nil, fmt.Errorf("RDATA of %d bytes at offset %d runs past buffer end: %w",
			rdlen, off, domain.ErrTruncatedInput)
	}
	switch rrType {
	case domain.RRTypeA: // 1
		return decodeAData(msg, off, rdlen)
	case domain.RRTypeNS: // 2
		return decodeNSData(msg, off, rdlen)
	case domain.RRTypeCNAME: // 5
		return decodeCNAMEData(msg, off, rdlen)
	case domain.RRTypeSOA: // 6
		return decodeSOAData(msg, off, rdlen)
	case domain.RRTypeWKS: // 11
		return decodeWKSData(msg, off, rdlen)
	case domain.RRTypePTR: // 12
		return decodePTRData(msg, off, rdlen)
	case domain.RRTypeHINFO: // 13
		return decodeHINFOData(msg, off, rdlen)
	case domain.RRTypeMX: // 15
		return decodeMXData(msg, off, rdlen)
	case domain.RRTypeTXT: // 16
		return decodeTXTData(msg, off, rdlen)
	default:
		raw := make([]byte, rdlen)
		copy(raw, msg[off:off+rdlen])
		return domain.OpaqueData{Code: rrType, Raw: raw}, nil
	}
}

// Encode encodes one RDATA body into wire format. The caller derives
// RDLENGTH from the length of the returned slice.
func Encode(rd domain.RData) ([]byte, error) {
	switch d := rd.(type) {
	case domain.AData:
		return encodeAData(d)
	case domain.NSData:
		return encodeNSData(d)
	case domain.CNAMEData:
		return encodeCNAMEData(d)
	case domain.SOAData:
		return encodeSOAData(d)
	case domain.WKSData:
		return encodeWKSData(d)
	case domain.PTRData:
		return encodePTRData(d)
	case domain.HINFOData:
		return encodeHINFOData(d)
	case domain.MXData:
		return encodeMXData(d)
	case domain.TXTData:
		return encodeTXTData(d)
	case domain.OpaqueData:
		raw := make([]byte, len(d.Raw))
		copy(raw, d.Raw)
		return raw, nil
	default:
		return nil, fmt.Errorf("no encoder for RDATA type %T", rd)
	}
}

// decodeBoundedName decodes a name that starts inside an RDATA body.
// Pointers may escape backwards into the message, but the bytes consumed
// at the record itself must stay inside the declared RDLENGTH.
func decodeBoundedName(msg []byte, off, end int) (string, int, error) {
	name, next, err := names.DecodeName(msg, off)
	if err != nil {
		return "", 0, err
	}
	if next > end {
		return "", 0, fmt.Errorf("name at offset %d overruns RDLENGTH boundary %d: %w",
			off, end, domain.ErrTruncatedInput)
	}
	return name, next, nil
}
