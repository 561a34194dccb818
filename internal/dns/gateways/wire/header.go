package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// headerLength is the fixed size of the RFC 1035 §4.1.1 header.
const headerLength = 12

// sectionCounts carries the four 16-bit section counts. On decode they
// come from the wire; on encode they are derived from section lengths
// just before the header is written.
type sectionCounts struct {
	qd, an, ns, ar uint16
}

// decodeHeader parses the fixed 12-byte header at off and returns the
// header value, the section counts, and the offset of the first question.
func decodeHeader(msg []byte, off int) (domain.Header, sectionCounts, int, error) {
	if off < 0 || off+headerLength > len(msg) {
		return domain.Header{}, sectionCounts{}, 0,
			fmt.Errorf("header at offset %d needs %d bytes: %w", off, headerLength, domain.ErrTruncatedInput)
	}

	flagHi := msg[off+2] // QR | opcode | AA | TC | RD
	flagLo := msg[off+3] // RA | Z | RCODE

	h := domain.Header{
		ID:     binary.BigEndian.Uint16(msg[off : off+2]),
		QR:     flagHi&0x80 != 0,
		OpCode: domain.OpCode((flagHi >> 3) & 0x0F),
		AA:     flagHi&0x04 != 0,
		TC:     flagHi&0x02 != 0,
		RD:     flagHi&0x01 != 0,
		RA:     flagLo&0x80 != 0,
		RCode:  domain.RCode(flagLo & 0x0F),
	}
	counts := sectionCounts{
		qd: binary.BigEndian.Uint16(msg[off+4 : off+6]),
		an: binary.BigEndian.Uint16(msg[off+6 : off+8]),
		ns: binary.BigEndian.Uint16(msg[off+8 : off+10]),
		ar: binary.BigEndian.Uint16(msg[off+10 : off+12]),
	}
	return h, counts, off + headerLength, nil
}

// encodeHeader writes the fixed 12-byte header. The reserved Z bits are
// always emitted as zero.
func encodeHeader(buf *bytes.Buffer, h domain.Header, counts sectionCounts) {
	_ = binary.Write(buf, binary.BigEndian, h.ID)

	var flagHi byte
	if h.QR {
		flagHi |= 0x80
	}
	flagHi |= byte(h.OpCode&0x0F) << 3
	if h.AA {
		flagHi |= 0x04
	}
	if h.TC {
		flagHi |= 0x02
	}
	if h.RD {
		flagHi |= 0x01
	}
	buf.WriteByte(flagHi)

	var flagLo byte
	if h.RA {
		flagLo |= 0x80
	}
	flagLo |= byte(h.RCode & 0x0F)
	buf.WriteByte(flagLo)

	_ = binary.Write(buf, binary.BigEndian, counts.qd)
	_ = binary.Write(buf, binary.BigEndian, counts.an)
	_ = binary.Write(buf, binary.BigEndian, counts.ns)
	_ = binary.Write(buf, binary.BigEndian, counts.ar)
}
