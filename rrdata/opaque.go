package rrdata

import (
	"encoding/hex"
	"slices"
)

// Opaque is the fallback RDATA variant for record types this package does
// not interpret. The bytes are stored exactly as received.
type Opaque struct {
	Blob []byte
}

// decodeOpaque copies the raw payload without interpretation.
func decodeOpaque(b []byte) Opaque {
	return Opaque{Blob: slices.Clone(b)}
}

// Encode returns the stored bytes unchanged.
func (o Opaque) Encode() []byte {
	return slices.Clone(o.Blob)
}

// String returns the payload as lowercase hex.
func (o Opaque) String() string {
	return hex.EncodeToString(o.Blob)
}

func (Opaque) rdata() {}
