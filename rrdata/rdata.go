// Package rrdata interprets the type-specific payload (RDATA) of DNS
// resource records. The set of typed variants is closed: SOA, SingleName
// (covering NS, CNAME and PTR), A, AAAA, and the Opaque fallback every
// unrecognized type code decodes to.
package rrdata

import (
	"fmt"
	"net"

	"github.com/loryka/dnswire/domain"
)

// RData is the decoded, type-specific payload of a resource record. Each
// variant owns its own data; names inside RDATA are independent copies.
type RData interface {
	// Encode serializes the payload in uncompressed wire form.
	Encode() []byte

	// String returns the zone-file style presentation of the payload.
	String() string

	rdata()
}

// Compressible reports whether RDATA of the given type may embed
// compression pointers into the surrounding message. RFC 1035 allows this
// for the names inside NS, SOA, CNAME and PTR records.
func Compressible(t domain.RRType) bool {
	switch t {
	case domain.RRTypeNS, domain.RRTypeSOA, domain.RRTypeCNAME, domain.RRTypePTR:
		return true
	default:
		return false
	}
}

// Decode interprets rdlength bytes of RDATA starting at offset in msg
// according to the record type. The full message buffer is required, not
// just the RDATA slice, because embedded names may point back into earlier
// parts of the message. Unknown type codes decode as Opaque rather than
// failing; only malformed payloads of known types are errors.
func Decode(t domain.RRType, msg []byte, offset, rdlength int) (RData, error) {
	if offset < 0 || rdlength < 0 || offset+rdlength > len(msg) {
		return nil, fmt.Errorf("rdata %d bytes at offset %d: %w", rdlength, offset, domain.ErrBufferTruncated)
	}
	switch t {
	case domain.RRTypeA:
		return decodeA(msg[offset : offset+rdlength])
	case domain.RRTypeNS, domain.RRTypeCNAME, domain.RRTypePTR:
		return decodeSingleName(msg, offset)
	case domain.RRTypeSOA:
		return decodeSOA(msg, offset, rdlength)
	case domain.RRTypeAAAA:
		return decodeAAAA(msg[offset : offset+rdlength])
	default:
		return decodeOpaque(msg[offset : offset+rdlength]), nil
	}
}

// isIPv4 checks whether the provided net.IP address is an IPv4 address.
func isIPv4(ip net.IP) bool {
	return ip != nil && ip.To4() != nil
}

// isIPv6 checks whether the provided net.IP is a valid IPv6 address.
func isIPv6(ip net.IP) bool {
	return ip != nil && ip.To16() != nil && ip.To4() == nil
}
