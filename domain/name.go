package domain

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/net/idna"
)

const (
	// maxLabelLength is the RFC 1035 per-label limit.
	maxLabelLength = 63

	// maxNameLength bounds the encoded form of a name: label bytes plus one
	// length prefix per label must stay under 256 octets.
	maxNameLength = 256
)

// Name represents a DNS domain name as an ordered sequence of ASCII labels.
// The root name is a single empty label and renders as ".". Names compare
// case-insensitively. The zero value is not a valid name; construct with
// NewName, NameFromString, Root, or ParseName.
type Name struct {
	labels []string

	// wire holds the exact byte span the name was parsed from, compression
	// pointer bytes included, when the name came off the wire. Nil for
	// programmatically built names.
	wire []byte
}

var rootName = sync.OnceValue(func() Name {
	return Name{labels: []string{""}}
})

// Root returns the root domain name ".".
func Root() Name {
	return rootName()
}

// NewName constructs a Name from an ordered label sequence. Labels must be
// 63 octets or fewer and drawn from [A-Za-z0-9-]; the total encoded length
// must stay under 256 octets. An empty sequence yields the root name.
func NewName(labels []string) (Name, error) {
	if len(labels) == 0 {
		return Root(), nil
	}
	total := 0
	for _, label := range labels {
		if label == "" {
			continue
		}
		if len(label) > maxLabelLength {
			return Name{}, fmt.Errorf("label %q: %w", label, ErrLabelTooLong)
		}
		for i := 0; i < len(label); i++ {
			if !isLabelByte(label[i]) {
				return Name{}, fmt.Errorf("label %q: %w", label, ErrInvalidLabelCharset)
			}
		}
		total += len(label) + 1
	}
	if total >= maxNameLength {
		return Name{}, fmt.Errorf("%d encoded octets: %w", total, ErrNameTooLong)
	}
	return Name{labels: slices.Clone(labels)}, nil
}

// NameFromString constructs a Name from a dotted string, trimming a single
// trailing dot. Unicode input is converted to its punycode ASCII form first,
// so "bücher.example" becomes "xn--bcher-kva.example".
func NameFromString(s string) (Name, error) {
	if s == "" || s == "." {
		return Root(), nil
	}
	ascii, err := idna.Lookup.ToASCII(strings.TrimSuffix(s, "."))
	if err != nil {
		return Name{}, fmt.Errorf("idna conversion of %q: %w", s, err)
	}
	return NewName(strings.Split(ascii, "."))
}

// ParseName decodes a domain name from msg starting at offset, following at
// most one compression pointer, and returns the name together with the
// offset of the first byte after the consumed span. The consumed span is
// retained on the Name for later wire comparisons.
func ParseName(msg []byte, offset int) (Name, int, error) {
	start := offset
	var labels []string
	encodedLen := 0

walk:
	for {
		if offset >= len(msg) {
			return Name{}, 0, fmt.Errorf("name at offset %d: %w", start, ErrBufferTruncated)
		}
		control := msg[offset]
		switch {
		case control == 0:
			offset++
			break walk
		case control < 64:
			length := int(control)
			if offset+1+length > len(msg) {
				return Name{}, 0, fmt.Errorf("label at offset %d: %w", offset, ErrBufferTruncated)
			}
			label := msg[offset+1 : offset+1+length]
			for _, b := range label {
				if !isLabelByte(b) {
					return Name{}, 0, fmt.Errorf("label at offset %d: %w", offset, ErrInvalidLabelCharset)
				}
			}
			labels = append(labels, string(label))
			encodedLen += length + 1
			if encodedLen >= maxNameLength {
				return Name{}, 0, fmt.Errorf("name at offset %d: %w", start, ErrNameTooLong)
			}
			offset += 1 + length
		case control&0xC0 == 0xC0:
			if offset+1 >= len(msg) {
				return Name{}, 0, fmt.Errorf("pointer at offset %d: %w", offset, ErrBufferTruncated)
			}
			target := int(binary.BigEndian.Uint16(msg[offset:offset+2]) & 0x3FFF)
			offset += 2
			if target >= len(msg) {
				return Name{}, 0, fmt.Errorf("pointer target %d: %w", target, ErrBufferTruncated)
			}
			// Each jump must land strictly before the name it belongs to,
			// so every recursion starts at a smaller offset and a crafted
			// self-referential chain cannot run forever.
			if target >= start {
				return Name{}, 0, fmt.Errorf("pointer target %d from offset %d: %w", target, start, ErrPointerForward)
			}
			if msg[target]&0xC0 == 0xC0 {
				return Name{}, 0, fmt.Errorf("pointer target %d: %w", target, ErrPointerToPointer)
			}
			suffix, _, err := ParseName(msg, target)
			if err != nil {
				return Name{}, 0, err
			}
			labels = append(labels, suffix.labels...)
			encodedLen += suffix.encodedLength()
			if encodedLen >= maxNameLength {
				return Name{}, 0, fmt.Errorf("name at offset %d: %w", start, ErrNameTooLong)
			}
			// A pointer is always the final element of a label sequence.
			break walk
		default:
			return Name{}, 0, fmt.Errorf("control byte 0x%02x at offset %d: %w", control, offset, ErrInvalidLabelControlByte)
		}
	}

	if len(labels) == 0 {
		labels = []string{""}
	}
	return Name{
		labels: labels,
		wire:   slices.Clone(msg[start:offset]),
	}, offset, nil
}

// Encode serializes the name in uncompressed wire form: one length byte per
// label followed by the label bytes, closed by a zero terminator. Encoding
// stops at the first empty label. Compression is never applied.
func (n Name) Encode() []byte {
	buf := make([]byte, 0, n.encodedLength()+1)
	for _, label := range n.labels {
		if label == "" {
			break
		}
		buf = append(buf, byte(len(label)))
		buf = append(buf, label...)
	}
	return append(buf, 0)
}

// Labels returns a copy of the label sequence.
func (n Name) Labels() []string {
	return slices.Clone(n.labels)
}

// WireOriginal returns the byte span the name was parsed from, or nil for a
// programmatically built name.
func (n Name) WireOriginal() []byte {
	return slices.Clone(n.wire)
}

// String returns the dotted form of the name; the root name renders as ".".
func (n Name) String() string {
	if n.IsRoot() {
		return "."
	}
	return strings.Join(n.labels, ".")
}

// Key returns the case-folded dotted form used for equality and map keys.
func (n Name) Key() string {
	return strings.ToUpper(n.String())
}

// Equal reports whether two names are equal under case-insensitive label
// comparison. Retained wire encodings do not participate.
func (n Name) Equal(other Name) bool {
	return n.Key() == other.Key()
}

// IsRoot reports whether the name is the root name.
func (n Name) IsRoot() bool {
	return len(n.labels) == 1 && n.labels[0] == ""
}

// IsZero reports whether the name is the unusable zero value.
func (n Name) IsZero() bool {
	return n.labels == nil
}

// encodedLength is the uncompressed wire size excluding the terminator.
func (n Name) encodedLength() int {
	total := 0
	for _, label := range n.labels {
		if label == "" {
			break
		}
		total += len(label) + 1
	}
	return total
}

// isLabelByte reports whether b is allowed inside a label: letters, digits,
// and hyphen only.
func isLabelByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '-':
		return true
	}
	return false
}
