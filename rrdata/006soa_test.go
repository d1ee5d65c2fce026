package rrdata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/loryka/dnswire/domain"
)

// buildSOAMessage lays out a message fragment: a name at offset 0 and SOA
// rdata at soaOffset whose mname is a pointer back to offset 0.
func buildSOAMessage(t *testing.T) (msg []byte, soaOffset, rdlength int) {
	t.Helper()
	msg = []byte("\x03ns1\x07example\x03com\x00") // offset 0: ns1.example.com
	soaOffset = len(msg)

	var rdata []byte
	rdata = append(rdata, 0xC0, 0x00)                           // mname: pointer to ns1.example.com
	rdata = append(rdata, []byte("\x04host\x03com\x00")...)     // rname: host.com
	for _, v := range []uint32{2024060100, 3600, 600, 86400} {  // serial refresh retry expire
		rdata = binary.BigEndian.AppendUint32(rdata, v)
	}
	msg = append(msg, rdata...)
	return msg, soaOffset, len(rdata)
}

func TestDecodeSOA(t *testing.T) {
	msg, offset, rdlength := buildSOAMessage(t)

	rd, err := Decode(domain.RRTypeSOA, msg, offset, rdlength)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	soa, ok := rd.(SOA)
	if !ok {
		t.Fatalf("got %T, want SOA", rd)
	}
	if soa.MName.String() != "ns1.example.com" {
		t.Errorf("mname = %q, want %q", soa.MName, "ns1.example.com")
	}
	if soa.RName.String() != "host.com" {
		t.Errorf("rname = %q, want %q", soa.RName, "host.com")
	}
	if soa.Serial != 2024060100 || soa.Refresh != 3600 || soa.Retry != 600 || soa.Expire != 86400 {
		t.Errorf("integer fields = %d %d %d %d", soa.Serial, soa.Refresh, soa.Retry, soa.Expire)
	}
}

func TestSOA_EncodeExpandsPointers(t *testing.T) {
	msg, offset, rdlength := buildSOAMessage(t)

	rd, err := Decode(domain.RRTypeSOA, msg, offset, rdlength)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	encoded := rd.Encode()

	// The canonical form is longer than the wire form because the mname
	// pointer is expanded.
	if bytes.Equal(encoded, msg[offset:offset+rdlength]) {
		t.Error("expected re-encoding to differ from the compressed wire form")
	}
	wantPrefix := []byte("\x03ns1\x07example\x03com\x00")
	if !bytes.HasPrefix(encoded, wantPrefix) {
		t.Errorf("encoded = %x, want prefix %x", encoded, wantPrefix)
	}
	// Integer fields survive the round trip.
	if got := binary.BigEndian.Uint32(encoded[len(encoded)-16:]); got != 2024060100 {
		t.Errorf("serial = %d, want 2024060100", got)
	}
}

func TestDecodeSOA_TruncatedIntegers(t *testing.T) {
	msg, offset, rdlength := buildSOAMessage(t)
	short := msg[:len(msg)-4]

	_, err := Decode(domain.RRTypeSOA, short, offset, rdlength-4)
	if !errors.Is(err, domain.ErrBufferTruncated) {
		t.Errorf("expected ErrBufferTruncated, got %v", err)
	}
}

func TestSOA_String(t *testing.T) {
	msg, offset, rdlength := buildSOAMessage(t)
	rd, err := Decode(domain.RRTypeSOA, msg, offset, rdlength)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "ns1.example.com host.com 2024060100 3600 600 86400"
	if got := rd.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
