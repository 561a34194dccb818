package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/mcromptonjr/simpledns/internal/dns/common/names"
	"github.com/mcromptonjr/simpledns/internal/dns/common/rrdata"
	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// decodeRecord parses one resource record at off. The declared RDLENGTH
// is the authoritative boundary: the next record starts rdlen bytes
// after the fixed fields no matter what the body decoder consumed.
func (c *udpCodec) decodeRecord(msg []byte, off int) (domain.ResourceRecord, int, error) {
	name, pos, err := names.DecodeName(msg, off)
	if err != nil {
		return domain.ResourceRecord{}, 0, err
	}
	if pos+10 > len(msg) {
		return domain.ResourceRecord{}, 0,
			fmt.Errorf("record at offset %d is missing its fixed fields: %w", off, domain.ErrTruncatedInput)
	}

	rrType := domain.RRType(binary.BigEndian.Uint16(msg[pos : pos+2]))
	class := domain.RRClass(binary.BigEndian.Uint16(msg[pos+2 : pos+4]))
	ttl := binary.BigEndian.Uint32(msg[pos+4 : pos+8])
	rdlen := int(binary.BigEndian.Uint16(msg[pos+8 : pos+10]))
	pos += 10

	if pos+rdlen > len(msg) {
		return domain.ResourceRecord{}, 0,
			fmt.Errorf("RDATA of %d bytes at offset %d runs past buffer end: %w", rdlen, pos, domain.ErrTruncatedInput)
	}

	data, err := rrdata.Decode(rrType, msg, pos, rdlen)
	if err != nil {
		return domain.ResourceRecord{}, 0, err
	}
	if !rrType.IsSupported() {
		c.logger.Debug(map[string]any{
			"name":   name,
			"type":   uint16(rrType),
			"rdlen":  rdlen,
			"offset": pos,
		}, "Unsupported RR type kept as opaque RDATA")
	}

	rr := domain.ResourceRecord{
		Name:  name,
		Type:  rrType,
		Class: class,
		TTL:   ttl,
		Data:  data,
	}
	return rr, pos + rdlen, nil
}

// encodeRecord writes one resource record. RDLENGTH is the byte count of
// the freshly serialized body, never a stored value.
func encodeRecord(buf *bytes.Buffer, rr domain.ResourceRecord) error {
	if err := rr.Validate(); err != nil {
		return err
	}
	name, err := names.EncodeName(rr.Name)
	if err != nil {
		return err
	}
	body, err := rrdata.Encode(rr.Data)
	if err != nil {
		return err
	}
	if len(body) > 0xFFFF {
		return fmt.Errorf("RDATA of %s record is %d bytes (max 65535)", rr.Type, len(body))
	}

	buf.Write(name)
	_ = binary.Write(buf, binary.BigEndian, uint16(rr.Type))
	_ = binary.Write(buf, binary.BigEndian, uint16(rr.Class))
	_ = binary.Write(buf, binary.BigEndian, rr.TTL)
	_ = binary.Write(buf, binary.BigEndian, uint16(len(body)))
	buf.Write(body)
	return nil
}
