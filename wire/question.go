package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/loryka/dnswire/domain"
)

// decodeQuestion parses a question entry at offset: a name followed by two
// big-endian 16-bit codes. Unrecognized codes pass through as raw integers.
func decodeQuestion(data []byte, offset int) (domain.Question, int, error) {
	name, next, err := domain.ParseName(data, offset)
	if err != nil {
		return domain.Question{}, 0, fmt.Errorf("question name: %w", err)
	}
	if next+4 > len(data) {
		return domain.Question{}, 0, fmt.Errorf("question type/class fields: %w", domain.ErrBufferTruncated)
	}
	q := domain.Question{
		Name:  name,
		Type:  domain.RRType(binary.BigEndian.Uint16(data[next : next+2])),
		Class: domain.RRClass(binary.BigEndian.Uint16(data[next+2 : next+4])),
	}
	return q, next + 4, nil
}

// encodeQuestion serializes a question entry: name bytes plus the two code
// fields, values taken as-is.
func encodeQuestion(q domain.Question) []byte {
	buf := q.Name.Encode()
	buf = binary.BigEndian.AppendUint16(buf, uint16(q.Type))
	buf = binary.BigEndian.AppendUint16(buf, uint16(q.Class))
	return buf
}
