// extdata.go - Canonical serialization and hashing of external transaction data.
//
// The extData hash binds a proof to everything the circuit cannot see: the
// recipient, the fee, the asset and the exact encrypted note blobs. The
// serialization is fixed byte-for-byte; host and client must agree or every
// transaction fails the signal check.

package extdata

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math"

	"zkcash/internal/field"
)

// MaxEncryptedLen bounds each encrypted note blob to what the u32 length
// prefix can carry.
const MaxEncryptedLen = uint64(math.MaxUint32)

var ErrBlobTooLarge = errors.New("extdata: encrypted output exceeds length prefix range")

// ExtData is the external (non-private) part of a transaction.
type ExtData struct {
	Recipient        [32]byte
	ExtAmount        int64
	EncryptedOutput1 []byte
	EncryptedOutput2 []byte
	Fee              uint64
	MintAddress      [32]byte
}

// Serialize produces the canonical byte string:
// recipient(32) || ext_amount(i64 LE) || len1(u32 LE) || blob1 ||
// len2(u32 LE) || blob2 || fee(u64 LE) || mint(32).
func (e *ExtData) Serialize() ([]byte, error) {
	if uint64(len(e.EncryptedOutput1)) > MaxEncryptedLen || uint64(len(e.EncryptedOutput2)) > MaxEncryptedLen {
		return nil, ErrBlobTooLarge
	}
	out := make([]byte, 0, 32+8+4+len(e.EncryptedOutput1)+4+len(e.EncryptedOutput2)+8+32)
	out = append(out, e.Recipient[:]...)
	out = binary.LittleEndian.AppendUint64(out, uint64(e.ExtAmount))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(e.EncryptedOutput1)))
	out = append(out, e.EncryptedOutput1...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(e.EncryptedOutput2)))
	out = append(out, e.EncryptedOutput2...)
	out = binary.LittleEndian.AppendUint64(out, e.Fee)
	out = append(out, e.MintAddress[:]...)
	return out, nil
}

// Hash is the SHA-256 digest of the canonical serialization.
func (e *ExtData) Hash() ([32]byte, error) {
	blob, err := e.Serialize()
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(blob), nil
}

// HashMod is the digest reduced into the scalar field, the form the circuit
// carries as a public signal.
func (e *ExtData) HashMod() ([32]byte, error) {
	digest, err := e.Hash()
	if err != nil {
		return [32]byte{}, err
	}
	return field.ReduceBytes(digest), nil
}
