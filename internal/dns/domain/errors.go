package domain

import "errors"

// Wire-format decoding and encoding failures. Decoders wrap these with
// offset context via fmt.Errorf("...: %w", ...) so callers can classify
// a failure with errors.Is while still seeing where it happened.
var (
	// ErrTruncatedInput indicates fewer bytes were available than a field requires.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrInvalidPointer indicates a compression pointer outside the buffer,
	// a pointer cycle, an exceeded hop bound, or an assembled name over 255 octets.
	ErrInvalidPointer = errors.New("invalid compression pointer")

	// ErrMalformedLabel indicates a label length byte using the reserved
	// 0x40 or 0x80 high-bit patterns.
	ErrMalformedLabel = errors.New("malformed label")

	// ErrLabelTooLong indicates a label longer than 63 bytes on encode.
	ErrLabelTooLong = errors.New("label exceeds 63 bytes")

	// ErrStringTooLong indicates a character string longer than 255 bytes on encode.
	ErrStringTooLong = errors.New("character string exceeds 255 bytes")
)

// Any of the above except ErrLabelTooLong/ErrStringTooLong aborts decoding of
// the entire message: once an internal offset may be wrong, nothing after it
// can be trusted. An unsupported RR type is deliberately not in this list —
// the record degrades to OpaqueData and parsing continues.
