// account.go - Program-derived addresses for the shielded pool.
//
// A PDA is a deterministic address derived from a seed tuple under the
// program identity. The pool uses PDAs as a uniqueness oracle: the address
// derived from a nullifier or commitment either exists (seen before) or it
// does not. The derivation walks bump bytes downward from 255 so that every
// seed tuple resolves to exactly one (address, bump) pair.

package account

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// Address is a 32-byte account address.
type Address [32]byte

// ProgramID is the pool program's own identity, mixed into every derivation.
var ProgramID = Address{
	0x7a, 0x6b, 0x63, 0x61, 0x73, 0x68, 0x2d, 0x70,
	0x6f, 0x6f, 0x6c, 0x2d, 0x70, 0x72, 0x6f, 0x67,
	0x72, 0x61, 0x6d, 0x2d, 0x76, 0x31, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
}

// Seed tags. The two nullifier namespaces are what make the slot-swap
// cross-check possible: the same nullifier value derives different addresses
// in slot 0 and slot 1.
const (
	SeedNullifier0  = "nullifier0"
	SeedNullifier1  = "nullifier1"
	SeedCommitment0 = "commitment0"
	SeedCommitment1 = "commitment1"
	SeedTree        = "merkle_tree"
	SeedVault       = "tree_token"
	SeedConfig      = "global_config"
)

const derivationMarker = "ProgramDerivedAddress"

var ErrNoBump = errors.New("account: no valid bump for seed tuple")

// Derive resolves a seed tuple to its program-derived address and bump.
func Derive(seeds ...[]byte) (Address, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		h := sha256.New()
		for _, s := range seeds {
			h.Write(s)
		}
		h.Write([]byte{uint8(bump)})
		h.Write(ProgramID[:])
		h.Write([]byte(derivationMarker))
		var addr Address
		copy(addr[:], h.Sum(nil))
		if addr.valid() {
			return addr, uint8(bump), nil
		}
	}
	return Address{}, 0, ErrNoBump
}

// valid rejects the one address no account may occupy. The host's derivation
// additionally rejects curve points; a hash-keyed store has no such class.
func (a Address) valid() bool {
	return a != Address{}
}

// Nullifier0 derives the slot-0 nullifier singleton address.
func Nullifier0(nullifier [32]byte) (Address, uint8, error) {
	return Derive([]byte(SeedNullifier0), nullifier[:])
}

// Nullifier1 derives the slot-1 nullifier singleton address.
func Nullifier1(nullifier [32]byte) (Address, uint8, error) {
	return Derive([]byte(SeedNullifier1), nullifier[:])
}

// Commitment0 derives the slot-0 commitment singleton address.
func Commitment0(commitment [32]byte) (Address, uint8, error) {
	return Derive([]byte(SeedCommitment0), commitment[:])
}

// Commitment1 derives the slot-1 commitment singleton address.
func Commitment1(commitment [32]byte) (Address, uint8, error) {
	return Derive([]byte(SeedCommitment1), commitment[:])
}

// Tree derives the Merkle tree account address.
func Tree() (Address, uint8, error) {
	return Derive([]byte(SeedTree))
}

// Vault derives the pool vault address.
func Vault() (Address, uint8, error) {
	return Derive([]byte(SeedVault))
}

// Config derives the global config address.
func Config() (Address, uint8, error) {
	return Derive([]byte(SeedConfig))
}

// String renders the address as hex.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// AddressFromHex parses a 64-character hex address.
func AddressFromHex(s string) (Address, error) {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		return Address{}, errors.New("account: address must be 32 hex-encoded bytes")
	}
	var a Address
	copy(a[:], b)
	return a, nil
}
