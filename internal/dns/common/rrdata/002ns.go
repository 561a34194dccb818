package rrdata

import (
	"github.com/mcromptonjr/simpledns/internal/dns/common/names"
	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// decodeNSData decodes an NS record body: a single domain name.
func decodeNSData(msg []byte, off, rdlen int) (domain.RData, error) {
	host, _, err := decodeBoundedName(msg, off, off+rdlen)
	if err != nil {
		return nil, err
	}
	return domain.NSData{Host: host}, nil
}

// encodeNSData encodes an NS record body.
func encodeNSData(d domain.NSData) ([]byte, error) {
	return names.EncodeName(d.Host)
}
