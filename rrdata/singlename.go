package rrdata

import (
	"fmt"

	"github.com/loryka/dnswire/domain"
)

// SingleName is the RDATA shape shared by NS, CNAME and PTR records: one
// domain name and nothing else.
type SingleName struct {
	Name domain.Name
}

// decodeSingleName parses one name at offset, resolved against the full
// message so compression pointers into earlier sections work.
func decodeSingleName(msg []byte, offset int) (SingleName, error) {
	name, _, err := domain.ParseName(msg, offset)
	if err != nil {
		return SingleName{}, fmt.Errorf("rdata name: %w", err)
	}
	return SingleName{Name: name}, nil
}

// Encode serializes the name uncompressed.
func (s SingleName) Encode() []byte {
	return s.Name.Encode()
}

// String returns the dotted form of the name.
func (s SingleName) String() string {
	return s.Name.String()
}

func (SingleName) rdata() {}
