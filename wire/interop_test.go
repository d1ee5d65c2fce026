package wire

import (
	"net"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loryka/dnswire/domain"
)

// These tests cross-check the codec against miekg/dns, the reference DNS
// implementation, in both directions.

func TestInterop_OurEncodeTheirDecode(t *testing.T) {
	name, err := domain.NewName([]string{"www", "example", "com"})
	require.NoError(t, err)
	question, err := domain.NewQuestion(name, domain.RRTypeA, domain.RRClassIN)
	require.NoError(t, err)
	answer, err := domain.NewResourceRecord(name, domain.RRTypeA, domain.RRClassIN, 300, []byte{93, 184, 216, 34}, nil)
	require.NoError(t, err)

	m := domain.NewMessage()
	m.Header.ID = 4321
	m.Header.QR = domain.QRResponse
	m.Questions = append(m.Questions, question)
	m.Answers = append(m.Answers, answer)

	encoded, err := EncodeMessage(m)
	require.NoError(t, err)

	var their dns.Msg
	require.NoError(t, their.Unpack(encoded))

	assert.Equal(t, uint16(4321), their.Id)
	assert.True(t, their.Response)
	assert.True(t, their.RecursionDesired)
	assert.True(t, their.RecursionAvailable)

	require.Len(t, their.Question, 1)
	assert.Equal(t, "www.example.com.", their.Question[0].Name)
	assert.Equal(t, dns.TypeA, their.Question[0].Qtype)
	assert.Equal(t, uint16(dns.ClassINET), their.Question[0].Qclass)

	require.Len(t, their.Answer, 1)
	a, ok := their.Answer[0].(*dns.A)
	require.True(t, ok, "expected an A record, got %T", their.Answer[0])
	assert.Equal(t, "www.example.com.", a.Hdr.Name)
	assert.Equal(t, uint32(300), a.Hdr.Ttl)
	assert.True(t, a.A.Equal(net.IPv4(93, 184, 216, 34)))
}

func TestInterop_TheirEncodeOurDecode(t *testing.T) {
	their := new(dns.Msg)
	their.Id = 999
	their.Response = true
	their.RecursionDesired = true
	their.Question = []dns.Question{{
		Name:   "www.example.com.",
		Qtype:  dns.TypeA,
		Qclass: dns.ClassINET,
	}}
	their.Answer = []dns.RR{&dns.A{
		Hdr: dns.RR_Header{
			Name:   "www.example.com.",
			Rrtype: dns.TypeA,
			Class:  dns.ClassINET,
			Ttl:    600,
		},
		A: net.IPv4(192, 0, 2, 7),
	}}

	packed, err := their.Pack()
	require.NoError(t, err)

	msg, err := DecodeMessage(packed)
	require.NoError(t, err)

	assert.Equal(t, uint16(999), msg.Header.ID)
	assert.Equal(t, domain.KindResponse, msg.Kind())
	require.Len(t, msg.Questions, 1)
	assert.Equal(t, "www.example.com", msg.Questions[0].Name.String())
	require.Len(t, msg.Answers, 1)
	assert.Equal(t, domain.RRTypeA, msg.Answers[0].Type)
	assert.Equal(t, uint32(600), msg.Answers[0].TTL)
	assert.Equal(t, []byte{192, 0, 2, 7}, msg.Answers[0].Data)
}

func TestInterop_TheirCompressedCNAMEOurDecode(t *testing.T) {
	their := new(dns.Msg)
	their.Id = 77
	their.Response = true
	their.Compress = true
	their.Question = []dns.Question{{
		Name:   "alias.example.com.",
		Qtype:  dns.TypeCNAME,
		Qclass: dns.ClassINET,
	}}
	their.Answer = []dns.RR{&dns.CNAME{
		Hdr: dns.RR_Header{
			Name:   "alias.example.com.",
			Rrtype: dns.TypeCNAME,
			Class:  dns.ClassINET,
			Ttl:    120,
		},
		Target: "alias.example.com.",
	}}

	packed, err := their.Pack()
	require.NoError(t, err)

	msg, err := DecodeMessage(packed)
	require.NoError(t, err)
	require.Len(t, msg.Answers, 1)

	// Whatever compression miekg applied, the canonical rdata must be the
	// fully expanded target name.
	want, err := domain.NewName([]string{"alias", "example", "com"})
	require.NoError(t, err)
	assert.Equal(t, want.Encode(), msg.Answers[0].Data)
}
