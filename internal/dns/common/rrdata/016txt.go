package rrdata

import (
	"fmt"

	"github.com/mcromptonjr/simpledns/internal/dns/common/names"
	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// decodeTXTData decodes a TXT record body: character strings back to
// back until RDLENGTH is exhausted, kept in wire order.
func decodeTXTData(msg []byte, off, rdlen int) (domain.RData, error) {
	end := off + rdlen
	var segments []string
	pos := off
	for pos < end {
		segment, next, err := names.DecodeCharString(msg, pos)
		if err != nil {
			return nil, fmt.Errorf("TXT segment %d: %w", len(segments), err)
		}
		if next > end {
			return nil, fmt.Errorf("TXT segment at offset %d overruns RDLENGTH boundary %d: %w",
				pos, end, domain.ErrTruncatedInput)
		}
		segments = append(segments, segment)
		pos = next
	}
	return domain.TXTData{Segments: segments}, nil
}

// encodeTXTData encodes a TXT record body.
func encodeTXTData(d domain.TXTData) ([]byte, error) {
	var encoded []byte
	for i, segment := range d.Segments {
		b, err := names.EncodeCharString(segment)
		if err != nil {
			return nil, fmt.Errorf("TXT segment %d: %w", i, err)
		}
		encoded = append(encoded, b...)
	}
	return encoded, nil
}
