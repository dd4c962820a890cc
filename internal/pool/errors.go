// errors.go - Stable error codes for the shielded pool.
//
// Every failing branch of the handler names exactly one code. The numeric
// values are part of the wire contract and must never be renumbered.

package pool

import "fmt"

// Error is a terminal pool error with a stable 16-bit code.
type Error struct {
	Code uint16
	Name string
}

func (e *Error) Error() string {
	return fmt.Sprintf("pool: %s (0x%04x)", e.Name, e.Code)
}

var (
	ErrUnauthorized         = &Error{0x1770, "Unauthorized"}
	ErrExtDataHashMismatch  = &Error{0x1771, "ExtDataHashMismatch"}
	ErrUnknownRoot          = &Error{0x1772, "UnknownRoot"}
	ErrDepositLimitExceeded = &Error{0x1773, "DepositLimitExceeded"}
	ErrInvalidMintAddress   = &Error{0x1774, "InvalidMintAddress"}
	ErrInvalidProof         = &Error{0x1775, "InvalidProof"}
	ErrInvalidFeeRate       = &Error{0x1776, "InvalidFeeRate"}
	ErrArithmeticOverflow   = &Error{0x1777, "ArithmeticOverflow"}
	ErrTreeFull             = &Error{0x1778, "TreeFull"}
	ErrRecipientMismatch    = &Error{0x1779, "RecipientMismatch"}
)
