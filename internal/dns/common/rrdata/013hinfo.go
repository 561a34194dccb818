package rrdata

import (
	"fmt"

	"github.com/mcromptonjr/simpledns/internal/dns/common/names"
	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// decodeHINFOData decodes an HINFO record body: two character strings,
// CPU then OS. The content starts right after each length byte; both
// strings must fit inside RDLENGTH.
func decodeHINFOData(msg []byte, off, rdlen int) (domain.RData, error) {
	end := off + rdlen

	cpu, pos, err := names.DecodeCharString(msg, off)
	if err != nil {
		return nil, fmt.Errorf("HINFO cpu: %w", err)
	}
	os, pos, err := names.DecodeCharString(msg, pos)
	if err != nil {
		return nil, fmt.Errorf("HINFO os: %w", err)
	}
	if pos > end {
		return nil, fmt.Errorf("HINFO RDATA at offset %d overruns RDLENGTH boundary %d: %w",
			off, end, domain.ErrTruncatedInput)
	}
	return domain.HINFOData{CPU: cpu, OS: os}, nil
}

// encodeHINFOData encodes an HINFO record body.
func encodeHINFOData(d domain.HINFOData) ([]byte, error) {
	cpu, err := names.EncodeCharString(d.CPU)
	if err != nil {
		return nil, fmt.Errorf("HINFO cpu: %w", err)
	}
	os, err := names.EncodeCharString(d.OS)
	if err != nil {
		return nil, fmt.Errorf("HINFO os: %w", err)
	}
	return append(cpu, os...), nil
}
