package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/loryka/dnswire/domain"
	"github.com/loryka/dnswire/rrdata"
)

// decodeRecord parses one resource record at offset: name, the fixed
// 10-byte header, then exactly rdlength bytes of RDATA. For the four
// compression-eligible types the payload is additionally decoded against
// the full message and re-encoded; when the re-encoding differs from the
// wire bytes the record keeps the canonical form as Data and the original
// bytes as CompressedData.
func (c *Codec) decodeRecord(data []byte, offset int) (domain.ResourceRecord, int, error) {
	name, next, err := domain.ParseName(data, offset)
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("record name: %w", err)
	}
	if next+10 > len(data) {
		return domain.ResourceRecord{}, 0, fmt.Errorf("record fixed fields: %w", domain.ErrBufferTruncated)
	}
	rrtype := domain.RRType(binary.BigEndian.Uint16(data[next : next+2]))
	class := domain.RRClass(binary.BigEndian.Uint16(data[next+2 : next+4]))
	ttl := binary.BigEndian.Uint32(data[next+4 : next+8])
	rdlength := int(binary.BigEndian.Uint16(data[next+8 : next+10]))
	next += 10

	if next+rdlength > len(data) {
		return domain.ResourceRecord{}, 0, fmt.Errorf("rdata of %d bytes: %w", rdlength, domain.ErrBufferTruncated)
	}
	raw := make([]byte, rdlength)
	copy(raw, data[next:next+rdlength])

	rdata := raw
	var compressed []byte
	if rrdata.Compressible(rrtype) {
		payload, err := rrdata.Decode(rrtype, data, next, rdlength)
		if err != nil {
			return domain.ResourceRecord{}, 0, fmt.Errorf("%s rdata: %w", rrtype, err)
		}
		canonical := payload.Encode()
		if !bytes.Equal(canonical, raw) {
			rdata = canonical
			compressed = raw
			c.logger.Debug(map[string]any{
				"name":      name.String(),
				"type":      rrtype.String(),
				"wire_len":  len(raw),
				"canon_len": len(canonical),
			}, "Expanded compressed rdata")
		}
	}
	next += rdlength

	rr, err := domain.NewResourceRecord(name, rrtype, class, ttl, rdata, compressed)
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("invalid resource record: %w", err)
	}
	return rr, next, nil
}

// encodeRecord serializes a record: name, the fixed 10-byte header with
// rdlength derived from the stored data, then the canonical RDATA. Names
// inside RDATA are never recompressed.
func encodeRecord(rr domain.ResourceRecord) ([]byte, error) {
	if err := rr.Validate(); err != nil {
		return nil, err
	}
	buf := rr.Name.Encode()
	buf = binary.BigEndian.AppendUint16(buf, uint16(rr.Type))
	buf = binary.BigEndian.AppendUint16(buf, uint16(rr.Class))
	buf = binary.BigEndian.AppendUint32(buf, rr.TTL)
	buf = binary.BigEndian.AppendUint16(buf, rr.RDLength())
	return append(buf, rr.Data...), nil
}
