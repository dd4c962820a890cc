// field.go - Canonical byte codecs for the BN254 scalar field.
//
// Every value that crosses the wire (tree nodes, nullifiers, commitments,
// public signals) is a 32-byte big-endian encoding of an element of Fr.
// Decoding is injective on {0 .. r-1} and rejects anything >= r, so a given
// field element has exactly one accepted byte representation.

package field

import (
	"errors"
	"math"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Size is the byte length of an encoded field element.
const Size = fr.Bytes

var (
	ErrNotCanonical = errors.New("field: value is not a canonical encoding (>= r)")
	ErrAmountRange  = errors.New("field: ext amount out of range")
)

// FromBytes decodes a 32-byte big-endian scalar. It fails if the value is
// greater than or equal to the field modulus.
func FromBytes(b [Size]byte) (fr.Element, error) {
	var e fr.Element
	if err := e.SetBytesCanonical(b[:]); err != nil {
		return fr.Element{}, ErrNotCanonical
	}
	return e, nil
}

// ToBytes encodes a scalar as 32 big-endian bytes.
func ToBytes(e fr.Element) [Size]byte {
	return e.Bytes()
}

// IsCanonical reports whether b is a valid encoding, i.e. strictly less than
// the BN254 scalar field modulus when read as a big-endian integer.
func IsCanonical(b []byte) bool {
	if len(b) != Size {
		return false
	}
	return new(big.Int).SetBytes(b).Cmp(fr.Modulus()) < 0
}

// ReduceBytes reduces an arbitrary 32-byte big-endian integer modulo r and
// re-encodes it. Used for the SHA-256 extData digest, which is a uniform
// 256-bit value rather than a field element.
func ReduceBytes(b [Size]byte) [Size]byte {
	v := new(big.Int).SetBytes(b[:])
	v.Mod(v, fr.Modulus())
	var e fr.Element
	e.SetBigInt(v)
	return e.Bytes()
}

// PublicAmount maps the signed quantity extAmount - fee into Fr: a
// non-negative value encodes as itself, a negative value as r - |value|.
// The int64 minimum has no absolute value and is rejected.
func PublicAmount(extAmount int64, fee uint64) (fr.Element, error) {
	if extAmount == math.MinInt64 {
		return fr.Element{}, ErrAmountRange
	}
	var amount fr.Element
	if extAmount >= 0 {
		amount.SetUint64(uint64(extAmount))
	} else {
		amount.SetUint64(uint64(-extAmount))
		amount.Neg(&amount)
	}
	var f fr.Element
	f.SetUint64(fee)
	amount.Sub(&amount, &f)
	return amount, nil
}

// CheckPublicAmount reports whether signal is the canonical encoding of
// extAmount - fee under the signed mapping above.
func CheckPublicAmount(extAmount int64, fee uint64, signal [Size]byte) bool {
	if !IsCanonical(signal[:]) {
		return false
	}
	expected, err := PublicAmount(extAmount, fee)
	if err != nil {
		return false
	}
	return expected.Bytes() == signal
}

// Uint64Bytes encodes a uint64 as a canonical field element. Convenience for
// leaf indices and amounts fed to the hash.
func Uint64Bytes(v uint64) [Size]byte {
	var e fr.Element
	e.SetUint64(v)
	return e.Bytes()
}
