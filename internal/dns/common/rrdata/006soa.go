package rrdata

import (
	"encoding/binary"
	"fmt"

	"github.com/mcromptonjr/simpledns/internal/dns/common/names"
	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// decodeSOAData decodes an SOA record body: two domain names followed by
// five 32-bit unsigned integers (serial, refresh, retry, expire, minimum).
func decodeSOAData(msg []byte, off, rdlen int) (domain.RData, error) {
	end := off + rdlen

	mname, pos, err := decodeBoundedName(msg, off, end)
	if err != nil {
		return nil, fmt.Errorf("SOA mname: %w", err)
	}
	rname, pos, err := decodeBoundedName(msg, pos, end)
	if err != nil {
		return nil, fmt.Errorf("SOA rname: %w", err)
	}

	if pos+20 > end {
		return nil, fmt.Errorf("SOA RDATA at offset %d is missing its integer fields: %w",
			off, domain.ErrTruncatedInput)
	}
	return domain.SOAData{
		MName:   mname,
		RName:   rname,
		Serial:  binary.BigEndian.Uint32(msg[pos : pos+4]),
		Refresh: binary.BigEndian.Uint32(msg[pos+4 : pos+8]),
		Retry:   binary.BigEndian.Uint32(msg[pos+8 : pos+12]),
		Expire:  binary.BigEndian.Uint32(msg[pos+12 : pos+16]),
		Minimum: binary.BigEndian.Uint32(msg[pos+16 : pos+20]),
	}, nil
}

// encodeSOAData encodes an SOA record body.
func encodeSOAData(d domain.SOAData) ([]byte, error) {
	mname, err := names.EncodeName(d.MName)
	if err != nil {
		return nil, fmt.Errorf("SOA mname: %w", err)
	}
	rname, err := names.EncodeName(d.RName)
	if err != nil {
		return nil, fmt.Errorf("SOA rname: %w", err)
	}

	u32 := make([]byte, 20)
	binary.BigEndian.PutUint32(u32[0:], d.Serial)
	binary.BigEndian.PutUint32(u32[4:], d.Refresh)
	binary.BigEndian.PutUint32(u32[8:], d.Retry)
	binary.BigEndian.PutUint32(u32[12:], d.Expire)
	binary.BigEndian.PutUint32(u32[16:], d.Minimum)

	encoded := make([]byte, 0, len(mname)+len(rname)+20)
	encoded = append(encoded, mname...)
	encoded = append(encoded, rname...)
	encoded = append(encoded, u32...)
	return encoded, nil
}
