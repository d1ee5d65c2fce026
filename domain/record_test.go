package domain

import (
	"errors"
	"testing"
)

func mustName(t *testing.T, labels ...string) Name {
	t.Helper()
	n, err := NewName(labels)
	if err != nil {
		t.Fatalf("NewName(%v): %v", labels, err)
	}
	return n
}

func TestNewResourceRecord(t *testing.T) {
	name := mustName(t, "example", "com")

	tests := []struct {
		name       string
		rrName     Name
		rrtype     RRType
		class      RRClass
		data       []byte
		compressed []byte
		wantErr    error
	}{
		{
			name:   "valid A record",
			rrName: name,
			rrtype: RRTypeA,
			class:  RRClassIN,
			data:   []byte{192, 0, 2, 1},
		},
		{
			name:   "unknown type code is retained",
			rrName: name,
			rrtype: RRType(4242),
			class:  RRClass(9000),
			data:   []byte{0xDE, 0xAD},
		},
		{
			name:    "zero name",
			rrName:  Name{},
			rrtype:  RRTypeA,
			class:   RRClassIN,
			data:    []byte{192, 0, 2, 1},
			wantErr: errors.New("record name must not be empty"),
		},
		{
			name:    "rdata too large",
			rrName:  name,
			rrtype:  RRTypeTXT,
			class:   RRClassIN,
			data:    make([]byte, 0x10000),
			wantErr: ErrRDataTooLarge,
		},
		{
			name:       "compressed original retained",
			rrName:     name,
			rrtype:     RRTypeCNAME,
			class:      RRClassIN,
			data:       []byte("\x03www\x07example\x03com\x00"),
			compressed: []byte{0xC0, 0x0C},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, err := NewResourceRecord(tt.rrName, tt.rrtype, tt.class, 300, tt.data, tt.compressed)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("expected error")
				}
				if errors.Is(tt.wantErr, ErrRDataTooLarge) && !errors.Is(err, ErrRDataTooLarge) {
					t.Errorf("got %v, want ErrRDataTooLarge", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if int(rr.RDLength()) != len(tt.data) {
				t.Errorf("RDLength() = %d, want %d", rr.RDLength(), len(tt.data))
			}
			if tt.compressed != nil && rr.CompressedData == nil {
				t.Error("compressed original was dropped")
			}
		})
	}
}

func TestNewQuestion(t *testing.T) {
	name := mustName(t, "example", "com")

	q, err := NewQuestion(name, RRTypeAAAA, RRClassIN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.Name.Equal(name) || q.Type != RRTypeAAAA || q.Class != RRClassIN {
		t.Errorf("unexpected question: %+v", q)
	}

	// Unknown codes pass through rather than failing.
	if _, err := NewQuestion(name, RRType(65280), RRClass(65280)); err != nil {
		t.Errorf("unknown codes must be accepted, got %v", err)
	}

	if _, err := NewQuestion(Name{}, RRTypeA, RRClassIN); err == nil {
		t.Error("expected error for zero name")
	}
}
