package rrdata

import (
	"github.com/mcromptonjr/simpledns/internal/dns/common/names"
	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// decodeCNAMEData decodes a CNAME record body: a single domain name.
func decodeCNAMEData(msg []byte, off, rdlen int) (domain.RData, error) {
	target, _, err := decodeBoundedName(msg, off, off+rdlen)
	if err != nil {
		return nil, err
	}
	return domain.CNAMEData{Target: target}, nil
}

// encodeCNAMEData encodes a CNAME record body.
func encodeCNAMEData(d domain.CNAMEData) ([]byte, error) {
	return names.EncodeName(d.Target)
}
