// note.go - Note (UTXO) helpers for the shielded pool.
//
// A note is the off-chain spendable unit; only its commitment (a tree leaf)
// and, once spent, its nullifier ever appear in pool state. The helpers here
// mirror the circuit's hashing so that host-built scenario data agrees with
// proofs bit-for-bit.

package note

import (
	"crypto/rand"
	"fmt"

	"zkcash/internal/field"
	"zkcash/internal/hasher"
)

// Note represents a confidential value note.
type Note struct {
	Amount   uint64   // value in minor units
	Owner    [32]byte // owner public key, a field element
	Blinding [32]byte // per-note randomness
	Asset    [32]byte // asset tag
}

// New creates a note for the given owner with fresh blinding.
func New(amount uint64, owner, asset [32]byte) (*Note, error) {
	blinding, err := RandomScalar()
	if err != nil {
		return nil, err
	}
	return &Note{Amount: amount, Owner: owner, Blinding: blinding, Asset: asset}, nil
}

// Commitment is Poseidon(amount, owner, blinding, asset).
func (n *Note) Commitment() ([32]byte, error) {
	return hasher.Hash(field.Uint64Bytes(n.Amount), n.Owner, n.Blinding, n.Asset)
}

// PublicKey derives an owner public key from a spending key:
// pk = Poseidon(sk).
func PublicKey(sk [32]byte) ([32]byte, error) {
	return hasher.Hash(sk)
}

// SpendSignature is the circuit's spend authorization over a note position:
// Poseidon(sk, commitment, leafIndex).
func SpendSignature(sk, commitment [32]byte, leafIndex uint64) ([32]byte, error) {
	return hasher.Hash(sk, commitment, field.Uint64Bytes(leafIndex))
}

// Nullifier marks a note spent without revealing which one:
// Poseidon(commitment, leafIndex, signature).
func Nullifier(commitment [32]byte, leafIndex uint64, signature [32]byte) ([32]byte, error) {
	return hasher.Hash(commitment, field.Uint64Bytes(leafIndex), signature)
}

// RandomScalar samples a uniform field element for blinding.
func RandomScalar() ([32]byte, error) {
	for {
		var b [32]byte
		if _, err := rand.Read(b[:]); err != nil {
			return [32]byte{}, fmt.Errorf("note: randomness: %w", err)
		}
		b[0] &= 0x3f // trim above the 254-bit modulus, then rejection-sample
		if field.IsCanonical(b[:]) {
			return b, nil
		}
	}
}
