// Package names implements the two RFC 1035 primitives shared by every
// section of a DNS message: domain names (§3.1, with §4.1.4 message
// compression) and character strings (§3.3). All functions are pure over
// an immutable buffer plus a cursor offset.
package names

import (
	"fmt"
	"strings"

	"github.com/mcromptonjr/simpledns/internal/dns/domain"
)

const (
	// maxLabelLength is the hard protocol bound on one label (6 bits of length).
	maxLabelLength = 63

	// maxNameLength is the bound on a whole encoded name, RFC 1035 §2.3.4.
	maxNameLength = 255

	// maxPointerHops bounds compression pointer chains. Any legitimate
	// message stays far below this; only adversarial input reaches it.
	maxPointerHops = 128
)

// DecodeName decodes a domain name starting at off. Compression pointers
// are followed through the same buffer; the returned next offset is the
// position after the name at the original location, so bytes consumed at
// a pointer target never advance the caller's cursor. The name comes back
// in presentation form without the trailing dot; the root name is "".
func DecodeName(msg []byte, off int) (string, int, error) {
	var labels []string
	pos := off
	next := -1 // next offset at the original location, set at the first pointer
	hops := 0
	visited := make(map[int]bool)
	encodedLen := 1 // terminating zero byte

	for {
		if pos < 0 || pos >= len(msg) {
			return "", 0, fmt.Errorf("name at offset %d runs past buffer end: %w", off, domain.ErrTruncatedInput)
		}
		b := msg[pos]
		switch b & 0xC0 {
		case 0x00:
			if b == 0 {
				// Root label terminates the name.
				pos++
				if next < 0 {
					next = pos
				}
				return strings.Join(labels, "."), next, nil
			}
			length := int(b)
			if pos+1+length > len(msg) {
				return "", 0, fmt.Errorf("label at offset %d runs past buffer end: %w", pos, domain.ErrTruncatedInput)
			}
			encodedLen += 1 + length
			if encodedLen > maxNameLength {
				return "", 0, fmt.Errorf("name at offset %d exceeds %d octets: %w", off, maxNameLength, domain.ErrInvalidPointer)
			}
			// Label bytes are opaque; non-ASCII content is preserved as-is.
			labels = append(labels, string(msg[pos+1:pos+1+length]))
			pos += 1 + length

		case 0xC0:
			if pos+1 >= len(msg) {
				return "", 0, fmt.Errorf("pointer at offset %d is missing its second byte: %w", pos, domain.ErrTruncatedInput)
			}
			target := int(b&0x3F)<<8 | int(msg[pos+1])
			if target >= len(msg) {
				return "", 0, fmt.Errorf("pointer at offset %d targets %d beyond buffer: %w", pos, target, domain.ErrInvalidPointer)
			}
			if visited[target] {
				return "", 0, fmt.Errorf("pointer at offset %d forms a cycle via %d: %w", pos, target, domain.ErrInvalidPointer)
			}
			visited[target] = true
			hops++
			if hops > maxPointerHops {
				return "", 0, fmt.Errorf("name at offset %d exceeds %d pointer hops: %w", off, maxPointerHops, domain.ErrInvalidPointer)
			}
			// A pointer occupies exactly two bytes at the current position.
			if next < 0 {
				next = pos + 2
			}
			pos = target

		default:
			// 0x40 and 0x80 are reserved bit patterns.
			return "", 0, fmt.Errorf("reserved label type %#02x at offset %d: %w", b&0xC0, pos, domain.ErrMalformedLabel)
		}
	}
}

// EncodeName encodes a domain name into wire format: length-prefixed
// labels terminated by a zero byte. No compression is emitted; an
// uncompressed name is always valid per RFC 1035 §4.1.4.
func EncodeName(name string) ([]byte, error) {
	encoded := make([]byte, 0, len(name)+2)
	for _, label := range strings.Split(name, ".") {
		if len(label) == 0 {
			continue
		}
		if len(label) > maxLabelLength {
			return nil, fmt.Errorf("label %q is %d bytes: %w", label, len(label), domain.ErrLabelTooLong)
		}
		encoded = append(encoded, byte(len(label)))
		encoded = append(encoded, label...)
	}
	encoded = append(encoded, 0)
	return encoded, nil
}
