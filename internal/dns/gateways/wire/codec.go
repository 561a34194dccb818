package wire

import (
	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// DNSCodec converts between domain.Message and the RFC 1035 §4 wire
// format. Implementations are stateless over their inputs: every call
// is a pure function of the buffer and offset, safe to use concurrently
// on independent buffers.
type DNSCodec interface {
	// EncodeMessage serializes a message. Section counts are derived
	// from the actual section lengths; names are emitted uncompressed.
	EncodeMessage(msg domain.Message) ([]byte, error)

	// DecodeMessage parses a message from data starting at offset.
	// Any structural failure aborts the whole parse.
	DecodeMessage(data []byte, offset int) (domain.Message, error)
}
