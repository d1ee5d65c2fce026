package rrdata

import (
	"fmt"
	"net"
	"slices"

	"github.com/loryka/dnswire/domain"
)

// AAAA is the RDATA of an AAAA record: a single IPv6 address.
type AAAA struct {
	IP net.IP
}

// NewAAAA constructs an AAAA payload from an IPv6 address.
func NewAAAA(ip net.IP) (AAAA, error) {
	if !isIPv6(ip) {
		return AAAA{}, fmt.Errorf("not an IPv6 address: %v: %w", ip, domain.ErrMalformedFixedSizePayload)
	}
	return AAAA{IP: ip.To16()}, nil
}

// decodeAAAA parses exactly 16 bytes as an IPv6 address.
func decodeAAAA(b []byte) (AAAA, error) {
	if len(b) != net.IPv6len {
		return AAAA{}, fmt.Errorf("AAAA rdata is %d bytes, want 16: %w", len(b), domain.ErrMalformedFixedSizePayload)
	}
	return AAAA{IP: net.IP(slices.Clone(b))}, nil
}

// Encode returns the 16-byte address.
func (a AAAA) Encode() []byte {
	return slices.Clone(a.IP.To16())
}

// String returns the textual form of the address.
func (a AAAA) String() string {
	return a.IP.String()
}

func (AAAA) rdata() {}
