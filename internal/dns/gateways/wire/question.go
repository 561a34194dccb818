package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/mcromptonjr/simpledns/internal/dns/common/names"
	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// decodeQuestion parses one question entry at off: name, qtype, qclass.
func decodeQuestion(msg []byte, off int) (domain.Question, int, error) {
	name, pos, err := names.DecodeName(msg, off)
	if err != nil {
		return domain.Question{}, 0, err
	}
	if pos+4 > len(msg) {
		return domain.Question{}, 0,
			fmt.Errorf("question at offset %d is missing qtype/qclass: %w", off, domain.ErrTruncatedInput)
	}
	q := domain.Question{
		Name:  name,
		Type:  domain.RRType(binary.BigEndian.Uint16(msg[pos : pos+2])),
		Class: domain.RRClass(binary.BigEndian.Uint16(msg[pos+2 : pos+4])),
	}
	return q, pos + 4, nil
}

// encodeQuestion writes one question entry: name, qtype, qclass.
func encodeQuestion(buf *bytes.Buffer, q domain.Question) error {
	name, err := names.EncodeName(q.Name)
	if err != nil {
		return err
	}
	buf.Write(name)
	_ = binary.Write(buf, binary.BigEndian, uint16(q.Type))
	_ = binary.Write(buf, binary.BigEndian, uint16(q.Class))
	return nil
}
