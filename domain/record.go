package domain

import "fmt"

// ResourceRecord represents a DNS resource record. Data always holds the
// canonical RDATA encoding: for the compression-eligible types (NS, SOA,
// CNAME, PTR) embedded names are fully expanded. When the record arrived
// with compressed RDATA that differs from the canonical form, the original
// wire bytes are kept in CompressedData so the source packet can be
// reproduced exactly. The rdlength field is derived, never stored.
type ResourceRecord struct {
	Name  Name
	Type  RRType
	Class RRClass
	TTL   uint32
	Data  []byte

	// CompressedData holds the as-seen-on-wire RDATA when it differed from
	// Data. Nil for records that arrived uncompressed or were built
	// programmatically. Set at construction, never attached afterwards.
	CompressedData []byte
}

// NewResourceRecord constructs a ResourceRecord and validates its fields.
// compressed may be nil; pass the original wire RDATA only when it differs
// from the canonical data.
func NewResourceRecord(name Name, rrtype RRType, class RRClass, ttl uint32, data []byte, compressed []byte) (ResourceRecord, error) {
	rr := ResourceRecord{
		Name:           name,
		Type:           rrtype,
		Class:          class,
		TTL:            ttl,
		Data:           data,
		CompressedData: compressed,
	}
	if err := rr.Validate(); err != nil {
		return ResourceRecord{}, err
	}
	return rr, nil
}

// Validate checks whether the ResourceRecord fields are valid. Unknown type
// and class codes are deliberately accepted.
func (rr ResourceRecord) Validate() error {
	if rr.Name.IsZero() {
		return fmt.Errorf("record name must not be empty")
	}
	if len(rr.Data) > 0xFFFF {
		return fmt.Errorf("%d bytes: %w", len(rr.Data), ErrRDataTooLarge)
	}
	return nil
}

// RDLength returns the wire rdlength field, derived from the canonical data.
func (rr ResourceRecord) RDLength() uint16 {
	return uint16(len(rr.Data))
}

// String returns a human-readable summary of the record.
func (rr ResourceRecord) String() string {
	return fmt.Sprintf("%s %d %s %s (%d bytes rdata)", rr.Name, rr.TTL, rr.Class, rr.Type, len(rr.Data))
}
