package domain

import "errors"

// Decode and construction failures. Call sites wrap these with positional
// context via fmt.Errorf and %w, so callers match them with errors.Is.
var (
	// ErrInvalidLabelCharset indicates a label byte outside [A-Za-z0-9-].
	ErrInvalidLabelCharset = errors.New("label contains invalid character")

	// ErrInvalidLabelControlByte indicates a label control octet whose top
	// bits are 10 or 01, which RFC 1035 leaves undefined.
	ErrInvalidLabelControlByte = errors.New("invalid label control byte")

	// ErrPointerToPointer indicates a compression pointer whose target is
	// itself a compression pointer.
	ErrPointerToPointer = errors.New("compression pointer targets another pointer")

	// ErrPointerForward indicates a compression pointer that does not
	// target an offset strictly before the name it belongs to. Such
	// pointers can form decompression loops.
	ErrPointerForward = errors.New("compression pointer does not target an earlier offset")

	// ErrNameTooLong indicates a domain name whose encoded form, label
	// length prefixes included, reaches 256 octets.
	ErrNameTooLong = errors.New("domain name too long")

	// ErrLabelTooLong indicates a label longer than 63 octets.
	ErrLabelTooLong = errors.New("label exceeds 63 octets")

	// ErrBufferTruncated indicates fixed fields or a declared length that
	// run past the end of the message buffer.
	ErrBufferTruncated = errors.New("buffer truncated")

	// ErrRecordCountMismatch indicates header section counts that disagree
	// with the records actually present, in either direction.
	ErrRecordCountMismatch = errors.New("section counts disagree with records present")

	// ErrMalformedFixedSizePayload indicates an A or AAAA payload of the
	// wrong byte length.
	ErrMalformedFixedSizePayload = errors.New("fixed-size payload has wrong length")

	// ErrRDataTooLarge indicates RDATA longer than the 16-bit length field
	// can describe.
	ErrRDataTooLarge = errors.New("rdata exceeds 65535 bytes")
)
