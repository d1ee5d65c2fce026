package rrdata

import (
	"fmt"
	"net"
	"slices"

	"github.com/loryka/dnswire/domain"
)

// A is the RDATA of an A record: a single IPv4 address.
type A struct {
	IP net.IP
}

// NewA constructs an A payload from an IPv4 address.
func NewA(ip net.IP) (A, error) {
	if !isIPv4(ip) {
		return A{}, fmt.Errorf("not an IPv4 address: %v: %w", ip, domain.ErrMalformedFixedSizePayload)
	}
	return A{IP: ip.To4()}, nil
}

// decodeA parses exactly 4 bytes as an IPv4 address.
func decodeA(b []byte) (A, error) {
	if len(b) != net.IPv4len {
		return A{}, fmt.Errorf("A rdata is %d bytes, want 4: %w", len(b), domain.ErrMalformedFixedSizePayload)
	}
	return A{IP: net.IP(slices.Clone(b))}, nil
}

// Encode returns the 4-byte address.
func (a A) Encode() []byte {
	return slices.Clone(a.IP.To4())
}

// String returns the dotted-quad form of the address.
func (a A) String() string {
	return a.IP.String()
}

func (A) rdata() {}
