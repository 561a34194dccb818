// Package wire encodes and decodes DNS messages in the RFC 1035 §4 wire
// format: fixed-width header bit packing, label/compression-pointer
// names, and per-type RDATA bodies. Decoding threads an explicit cursor
// offset through every section; encoding accumulates into one buffer and
// emits names uncompressed.
package wire

import (
	"bytes"
	"fmt"

	"github.com/mcromptonjr/simpledns/internal/dns/common/log"
	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// udpCodec implements DNSCodec for standard uncompressed DNS messages.
type udpCodec struct {
	logger log.Logger
}

// NewUDPCodec creates a codec using the provided logger. The logger only
// sees debug notes (e.g. unsupported RR types); it never affects results.
func NewUDPCodec(logger log.Logger) *udpCodec {
	return &udpCodec{
		logger: logger,
	}
}

// EncodeMessage serializes a message into wire format. The four section
// counts are computed from the section lengths here and nowhere else.
func (c *udpCodec) EncodeMessage(m domain.Message) ([]byte, error) {
	if err := m.Header.Validate(); err != nil {
		return nil, err
	}
	counts := sectionCounts{}
	for _, n := range []struct {
		section string
		length  int
		dst     *uint16
	}{
		{"question", len(m.Questions), &counts.qd},
		{"answer", len(m.Answers), &counts.an},
		{"authority", len(m.Authority), &counts.ns},
		{"additional", len(m.Additional), &counts.ar},
	} {
		if n.length > 0xFFFF {
			return nil, fmt.Errorf("%s section has %d entries (max 65535)", n.section, n.length)
		}
		*n.dst = uint16(n.length)
	}

	var buf bytes.Buffer
	encodeHeader(&buf, m.Header, counts)

	for i, q := range m.Questions {
		if err := encodeQuestion(&buf, q); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}
	for _, s := range []struct {
		name    string
		records []domain.ResourceRecord
	}{
		{"answer", m.Answers},
		{"authority", m.Authority},
		{"additional", m.Additional},
	} {
		for i, rr := range s.records {
			if err := encodeRecord(&buf, rr); err != nil {
				return nil, fmt.Errorf("%s record %d: %w", s.name, i, err)
			}
		}
	}

	c.logger.Debug(map[string]any{
		"size": buf.Len(),
		"qd":   counts.qd,
		"an":   counts.an,
		"ns":   counts.ns,
		"ar":   counts.ar,
	}, "Encoded DNS message")

	return buf.Bytes(), nil
}

// DecodeMessage parses a message from data starting at offset. Section
// counts from the header drive the four sequential parse loops; the
// running offset advances by exactly the length each entry consumed.
func (c *udpCodec) DecodeMessage(data []byte, offset int) (domain.Message, error) {
	header, counts, pos, err := decodeHeader(data, offset)
	if err != nil {
		return domain.Message{}, err
	}

	m := domain.Message{Header: header}

	for i := 0; i < int(counts.qd); i++ {
		q, next, err := decodeQuestion(data, pos)
		if err != nil {
			return domain.Message{}, fmt.Errorf("question %d: %w", i, err)
		}
		m.Questions = append(m.Questions, q)
		pos = next
	}

	for _, s := range []struct {
		name  string
		count uint16
		dst   *[]domain.ResourceRecord
	}{
		{"answer", counts.an, &m.Answers},
		{"authority", counts.ns, &m.Authority},
		{"additional", counts.ar, &m.Additional},
	} {
		for i := 0; i < int(s.count); i++ {
			rr, next, err := c.decodeRecord(data, pos)
			if err != nil {
				return domain.Message{}, fmt.Errorf("%s record %d: %w", s.name, i, err)
			}
			*s.dst = append(*s.dst, rr)
			pos = next
		}
	}

	return m, nil
}

var _ DNSCodec = &udpCodec{}
