package domain

// QR distinguishes the two message roles sharing one wire shape.
type QR uint8

// Query/response flag values
const (
	QRQuery    QR = 0
	QRResponse QR = 1
)

// String returns the textual representation of the QR flag.
func (q QR) String() string {
	if q == QRResponse {
		return "response"
	}
	return "query"
}

// Header holds the fixed 12-byte DNS message header fields. The four
// section counts are authoritative after a parse; on encode they are
// recomputed from the actual section lengths and the stored values are
// ignored.
type Header struct {
	ID     uint16
	QR     QR
	OpCode OpCode
	AA     bool
	TC     bool
	RD     bool
	RA     bool
	Z      uint8 // 3 reserved bits, passed through unvalidated
	RCode  RCode

	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}
