// Package wire encodes and decodes full DNS messages in RFC 1035 wire
// format: the bit-packed 12-byte header, the question section, and the
// three resource record sections with compression-aware RDATA handling.
// Names are always emitted uncompressed on encode.
package wire

import (
	"github.com/loryka/dnswire/domain"
	"github.com/loryka/dnswire/log"
)

// Codec encodes and decodes DNS messages. A Codec is stateless apart from
// its logger and is safe for concurrent use on distinct buffers.
type Codec struct {
	logger log.Logger
}

// NewCodec creates a Codec using the provided logger for debug tracing.
func NewCodec(logger log.Logger) *Codec {
	return &Codec{
		logger: logger,
	}
}

var defaultCodec = NewCodec(log.NewNoopLogger())

// DecodeMessage parses a raw DNS datagram with a quiet default codec.
func DecodeMessage(data []byte) (*domain.Message, error) {
	return defaultCodec.DecodeMessage(data)
}

// EncodeMessage serializes a message with a quiet default codec.
func EncodeMessage(m *domain.Message) ([]byte, error) {
	return defaultCodec.EncodeMessage(m)
}

// DecodeQuestion parses one question entry starting at offset and returns
// it with the offset of the first byte after it.
func DecodeQuestion(data []byte, offset int) (domain.Question, int, error) {
	return decodeQuestion(data, offset)
}

// EncodeQuestion serializes one question entry in wire form.
func EncodeQuestion(q domain.Question) []byte {
	return encodeQuestion(q)
}
