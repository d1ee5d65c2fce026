package rrdata

import (
	"bytes"
	"errors"
	"net"
	"testing"

	"github.com/loryka/dnswire/domain"
)

func TestDecodeAAAA_Valid(t *testing.T) {
	ip := net.ParseIP("2001:db8::ff00:42:8329").To16()
	rd, err := Decode(domain.RRTypeAAAA, ip, 0, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	aaaa, ok := rd.(AAAA)
	if !ok {
		t.Fatalf("got %T, want AAAA", rd)
	}
	if aaaa.String() != "2001:db8::ff00:42:8329" {
		t.Errorf("String() = %q", aaaa.String())
	}
	if !bytes.Equal(aaaa.Encode(), ip) {
		t.Errorf("Encode() = %x, want %x", aaaa.Encode(), ip)
	}
}

func TestDecodeAAAA_WrongLength(t *testing.T) {
	for _, n := range []int{0, 4, 15, 17} {
		_, err := Decode(domain.RRTypeAAAA, make([]byte, n), 0, n)
		if !errors.Is(err, domain.ErrMalformedFixedSizePayload) {
			t.Errorf("length %d: expected ErrMalformedFixedSizePayload, got %v", n, err)
		}
	}
}

func TestNewAAAA(t *testing.T) {
	aaaa, err := NewAAAA(net.ParseIP("2001:db8::1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(aaaa.Encode()) != 16 {
		t.Errorf("Encode() length = %d, want 16", len(aaaa.Encode()))
	}

	if _, err := NewAAAA(net.ParseIP("192.0.2.1")); !errors.Is(err, domain.ErrMalformedFixedSizePayload) {
		t.Errorf("IPv4 input: expected ErrMalformedFixedSizePayload, got %v", err)
	}
}
