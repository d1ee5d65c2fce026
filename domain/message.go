package domain

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// MessageKind tags a message as a query or a response. The tag is derived
// solely from the header QR flag; the two kinds share one wire shape.
type MessageKind uint8

// Message kind values
const (
	KindQuery MessageKind = iota
	KindResponse
)

// String returns the textual representation of the MessageKind.
func (k MessageKind) String() string {
	if k == KindResponse {
		return "response"
	}
	return "query"
}

// Message represents a full DNS message: header plus the four ordered
// sections. Construct from wire bytes via wire.DecodeMessage or
// programmatically via NewMessage.
type Message struct {
	Header      Header
	Questions   []Question
	Answers     []ResourceRecord
	Nameservers []ResourceRecord
	Additional  []ResourceRecord

	// Suffix holds any bytes found after the last declared record when the
	// message was parsed, preserved verbatim. Real-world datagrams are
	// sometimes padded. Encoding never re-emits the suffix.
	Suffix []byte
}

// NewMessage returns a Message with query defaults: a random transaction
// ID, opcode QUERY, recursion desired and available, and empty sections.
// Each call builds fresh section slices so messages never alias.
func NewMessage() *Message {
	return &Message{
		Header: Header{
			ID:     randomID(),
			QR:     QRQuery,
			OpCode: OpCodeQuery,
			RD:     true,
			RA:     true,
			RCode:  RCodeNoError,
		},
		Questions:   []Question{},
		Answers:     []ResourceRecord{},
		Nameservers: []ResourceRecord{},
		Additional:  []ResourceRecord{},
	}
}

// Kind returns the message role, determined solely by the header QR flag.
func (m *Message) Kind() MessageKind {
	if m.Header.QR == QRResponse {
		return KindResponse
	}
	return KindQuery
}

// Validate checks the structural invariants the encoder relies on. Section
// counts in the header are not checked here because encoding recomputes
// them from the section lengths.
func (m *Message) Validate() error {
	for _, section := range []struct {
		name    string
		records []ResourceRecord
	}{
		{"answer", m.Answers},
		{"nameserver", m.Nameservers},
		{"additional", m.Additional},
	} {
		if len(section.records) > 0xFFFF {
			return fmt.Errorf("too many %s records: %d (max 65535)", section.name, len(section.records))
		}
		for i, rr := range section.records {
			if err := rr.Validate(); err != nil {
				return fmt.Errorf("%s record %d: %w", section.name, i, err)
			}
		}
	}
	if len(m.Questions) > 0xFFFF {
		return fmt.Errorf("too many questions: %d (max 65535)", len(m.Questions))
	}
	for i, q := range m.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
	}
	return nil
}

// randomID returns a random 16-bit transaction ID.
func randomID() uint16 {
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0
	}
	return binary.BigEndian.Uint16(b[:])
}
