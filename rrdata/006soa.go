package rrdata

import (
	"encoding/binary"
	"fmt"

	"github.com/loryka/dnswire/domain"
)

// SOA is the RDATA of a start-of-authority record: the primary name server,
// the responsible mailbox rendered as a name, and four timing integers.
type SOA struct {
	MName   domain.Name
	RName   domain.Name
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
}

// decodeSOA parses SOA RDATA starting at offset in msg. Both names are
// resolved against the full message because either may be compressed.
func decodeSOA(msg []byte, offset, rdlength int) (SOA, error) {
	end := offset + rdlength
	mname, next, err := domain.ParseName(msg, offset)
	if err != nil {
		return SOA{}, fmt.Errorf("SOA mname: %w", err)
	}
	rname, next, err := domain.ParseName(msg, next)
	if err != nil {
		return SOA{}, fmt.Errorf("SOA rname: %w", err)
	}
	if next+16 > len(msg) || next+16 > end {
		return SOA{}, fmt.Errorf("SOA integer fields: %w", domain.ErrBufferTruncated)
	}
	return SOA{
		MName:   mname,
		RName:   rname,
		Serial:  binary.BigEndian.Uint32(msg[next:]),
		Refresh: binary.BigEndian.Uint32(msg[next+4:]),
		Retry:   binary.BigEndian.Uint32(msg[next+8:]),
		Expire:  binary.BigEndian.Uint32(msg[next+12:]),
	}, nil
}

// Encode serializes the SOA payload with both names uncompressed.
func (s SOA) Encode() []byte {
	mname := s.MName.Encode()
	rname := s.RName.Encode()
	out := make([]byte, 0, len(mname)+len(rname)+16)
	out = append(out, mname...)
	out = append(out, rname...)
	out = binary.BigEndian.AppendUint32(out, s.Serial)
	out = binary.BigEndian.AppendUint32(out, s.Refresh)
	out = binary.BigEndian.AppendUint32(out, s.Retry)
	out = binary.BigEndian.AppendUint32(out, s.Expire)
	return out
}

// String returns the zone-file style presentation of the payload.
func (s SOA) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d", s.MName, s.RName, s.Serial, s.Refresh, s.Retry, s.Expire)
}

func (SOA) rdata() {}
