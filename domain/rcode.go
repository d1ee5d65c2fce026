package domain

import "fmt"

// RCode represents a DNS response code. Only the legacy 4-bit field is
// carried; EDNS0 extended codes are out of scope.
type RCode uint8

// DNS response code constants
const (
	RCodeNoError  RCode = 0 // NOERROR - No error condition
	RCodeFormErr  RCode = 1 // FORMERR - Format error
	RCodeServFail RCode = 2 // SERVFAIL - Server failure
	RCodeNXDomain RCode = 3 // NXDOMAIN - Non-existent domain
	RCodeNotImp   RCode = 4 // NOTIMP - Not implemented
	RCodeRefused  RCode = 5 // REFUSED - Query refused
)

// String returns the textual representation of the RCode.
func (r RCode) String() string {
	switch r {
	case RCodeNoError:
		return "NOERROR"
	case RCodeFormErr:
		return "FORMERR"
	case RCodeServFail:
		return "SERVFAIL"
	case RCodeNXDomain:
		return "NXDOMAIN"
	case RCodeNotImp:
		return "NOTIMP"
	case RCodeRefused:
		return "REFUSED"
	case 6:
		return "YXDOMAIN"
	case 7:
		return "YXRRSET"
	case 8:
		return "NXRRSET"
	case 9:
		return "NOTAUTH"
	case 10:
		return "NOTZONE"
	default:
		return fmt.Sprintf("RCODE%d", uint8(r))
	}
}
