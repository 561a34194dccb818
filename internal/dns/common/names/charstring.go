package names

import (
	"fmt"

	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

// maxCharStringLength bounds one character string (one length byte).
const maxCharStringLength = 255

// DecodeCharString decodes a length-prefixed character string at off.
// The content is the length bytes immediately after the length byte,
// treated as opaque; the next offset is off + 1 + length.
func DecodeCharString(msg []byte, off int) (string, int, error) {
	if off < 0 || off >= len(msg) {
		return "", 0, fmt.Errorf("character string at offset %d has no length byte: %w", off, domain.ErrTruncatedInput)
	}
	length := int(msg[off])
	if off+1+length > len(msg) {
		return "", 0, fmt.Errorf("character string at offset %d runs past buffer end: %w", off, domain.ErrTruncatedInput)
	}
	return string(msg[off+1 : off+1+length]), off + 1 + length, nil
}

// EncodeCharString encodes a character string as one length byte
// followed by the raw bytes.
func EncodeCharString(s string) ([]byte, error) {
	if len(s) > maxCharStringLength {
		return nil, fmt.Errorf("character string is %d bytes: %w", len(s), domain.ErrStringTooLong)
	}
	encoded := make([]byte, 0, len(s)+1)
	encoded = append(encoded, byte(len(s)))
	encoded = append(encoded, s...)
	return encoded, nil
}
