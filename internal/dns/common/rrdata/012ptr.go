package rrdata

import (
	"github.com/mcromptonjr/simpledns/internal/dns/common/names"
	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// decodePTRData decodes a PTR record body: a single domain name.
func decodePTRData(msg []byte, off, rdlen int) (domain.RData, error) {
	target, _, err := decodeBoundedName(msg, off, off+rdlen)
	if err != nil {
		return nil, err
	}
	return domain.PTRData{Target: target}, nil
}

// encodePTRData encodes a PTR record body.
func encodePTRData(d domain.PTRData) ([]byte, error) {
	return names.EncodeName(d.Target)
}
