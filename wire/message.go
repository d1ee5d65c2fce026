package wire

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/loryka/dnswire/domain"
)

// headerSize is the fixed DNS message header length.
const headerSize = 12

// DecodeMessage parses a raw DNS datagram into a Message. Section counts
// are enforced against the records actually present in both directions;
// bytes after the last declared record that do not form a record are
// preserved verbatim as the message suffix.
func (c *Codec) DecodeMessage(data []byte) (*domain.Message, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%d byte message header: %w", len(data), domain.ErrBufferTruncated)
	}
	hdr := decodeHeader(data)

	c.logger.Debug(map[string]any{
		"id":    hdr.ID,
		"kind":  hdr.QR.String(),
		"qd":    hdr.QDCount,
		"an":    hdr.ANCount,
		"ns":    hdr.NSCount,
		"ar":    hdr.ARCount,
		"rcode": hdr.RCode.String(),
	}, "Decoded DNS header")

	offset := headerSize
	questions := make([]domain.Question, 0, hdr.QDCount)
	for i := 0; i < int(hdr.QDCount); i++ {
		q, next, err := decodeQuestion(data, offset)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		questions = append(questions, q)
		offset = next
	}

	// One loop over all trailing records, routed into the three sections
	// strictly by remaining header quota.
	answers := []domain.ResourceRecord{}
	nameservers := []domain.ResourceRecord{}
	additional := []domain.ResourceRecord{}
	total := int(hdr.ANCount) + int(hdr.NSCount) + int(hdr.ARCount)
	for offset < len(data) && len(answers)+len(nameservers)+len(additional) < total {
		rr, next, err := c.decodeRecord(data, offset)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(answers)+len(nameservers)+len(additional), err)
		}
		switch {
		case len(answers) < int(hdr.ANCount):
			answers = append(answers, rr)
		case len(nameservers) < int(hdr.NSCount):
			nameservers = append(nameservers, rr)
		default:
			additional = append(additional, rr)
		}
		offset = next
	}

	if len(answers) != int(hdr.ANCount) || len(nameservers) != int(hdr.NSCount) || len(additional) != int(hdr.ARCount) {
		return nil, fmt.Errorf("declared %d/%d/%d records, found %d/%d/%d: %w",
			hdr.ANCount, hdr.NSCount, hdr.ARCount,
			len(answers), len(nameservers), len(additional),
			domain.ErrRecordCountMismatch)
	}

	// All quotas are satisfied. Anything left that still parses as a
	// record is one record too many; anything else is padding, preserved
	// verbatim as the suffix.
	var suffix []byte
	if offset < len(data) {
		if _, _, err := c.decodeRecord(data, offset); err == nil {
			return nil, fmt.Errorf("record beyond declared counts at offset %d: %w", offset, domain.ErrRecordCountMismatch)
		}
		suffix = slices.Clone(data[offset:])
		c.logger.Debug(map[string]any{
			"offset": offset,
			"bytes":  len(suffix),
		}, "Preserved trailing suffix")
	}

	return &domain.Message{
		Header:      hdr,
		Questions:   questions,
		Answers:     answers,
		Nameservers: nameservers,
		Additional:  additional,
		Suffix:      suffix,
	}, nil
}

// EncodeMessage serializes a message. The four header counts are always
// recomputed from the section lengths, and the suffix, if any, is dropped.
func (c *Codec) EncodeMessage(m *domain.Message) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	buf := make([]byte, 0, headerSize)
	buf = encodeHeader(buf, m)

	for _, q := range m.Questions {
		buf = append(buf, encodeQuestion(q)...)
	}
	for _, section := range [][]domain.ResourceRecord{m.Answers, m.Nameservers, m.Additional} {
		for _, rr := range section {
			encoded, err := encodeRecord(rr)
			if err != nil {
				return nil, err
			}
			buf = append(buf, encoded...)
		}
	}

	c.logger.Debug(map[string]any{
		"id":   m.Header.ID,
		"kind": m.Kind().String(),
		"size": len(buf),
	}, "Encoded DNS message")

	return buf, nil
}

// decodeHeader unpacks the fixed 12-byte header. The caller guarantees at
// least 12 bytes. The Z bits are carried through without validation.
func decodeHeader(data []byte) domain.Header {
	return domain.Header{
		ID:      binary.BigEndian.Uint16(data[0:2]),
		QR:      domain.QR(data[2] >> 7),
		OpCode:  domain.OpCode((data[2] >> 3) & 0x0F),
		AA:      data[2]&0x04 != 0,
		TC:      data[2]&0x02 != 0,
		RD:      data[2]&0x01 != 0,
		RA:      data[3]&0x80 != 0,
		Z:       (data[3] >> 4) & 0x07,
		RCode:   domain.RCode(data[3] & 0x0F),
		QDCount: binary.BigEndian.Uint16(data[4:6]),
		ANCount: binary.BigEndian.Uint16(data[6:8]),
		NSCount: binary.BigEndian.Uint16(data[8:10]),
		ARCount: binary.BigEndian.Uint16(data[10:12]),
	}
}

// encodeHeader packs the header, computing the counts from the actual
// section lengths so they can never desynchronize from the content.
func encodeHeader(buf []byte, m *domain.Message) []byte {
	h := m.Header

	var flagsHi byte
	if h.QR == domain.QRResponse {
		flagsHi |= 0x80
	}
	flagsHi |= byte(h.OpCode&0x0F) << 3
	if h.AA {
		flagsHi |= 0x04
	}
	if h.TC {
		flagsHi |= 0x02
	}
	if h.RD {
		flagsHi |= 0x01
	}

	var flagsLo byte
	if h.RA {
		flagsLo |= 0x80
	}
	flagsLo |= (h.Z & 0x07) << 4
	flagsLo |= byte(h.RCode) & 0x0F

	buf = binary.BigEndian.AppendUint16(buf, h.ID)
	buf = append(buf, flagsHi, flagsLo)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(m.Questions)))
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(m.Answers)))
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(m.Nameservers)))
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(m.Additional)))
	return buf
}
