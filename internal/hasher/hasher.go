// hasher.go - Poseidon hashing over the BN254 scalar field.
//
// The circuit commits to notes and nullifiers with the circomlib Poseidon
// parameter set; the host must produce bit-identical digests or every proof
// would be rejected. go-iden3-crypto implements exactly that parameter set.

package hasher

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/iden3/go-iden3-crypto/poseidon"

	"zkcash/internal/field"
)

// MaxInputs is the widest Poseidon permutation the circuit uses.
const MaxInputs = 12

var ErrInputCount = errors.New("hasher: poseidon takes 1 to 12 inputs")

// Hash computes Poseidon over 1..=12 field elements, each given in the
// canonical 32-byte big-endian encoding. Non-canonical inputs are rejected.
func Hash(inputs ...[32]byte) ([32]byte, error) {
	if len(inputs) == 0 || len(inputs) > MaxInputs {
		return [32]byte{}, ErrInputCount
	}
	elems := make([]*big.Int, len(inputs))
	for i, in := range inputs {
		if !field.IsCanonical(in[:]) {
			return [32]byte{}, fmt.Errorf("hasher: input %d: %w", i, field.ErrNotCanonical)
		}
		elems[i] = new(big.Int).SetBytes(in[:])
	}
	digest, err := poseidon.Hash(elems)
	if err != nil {
		return [32]byte{}, fmt.Errorf("hasher: %w", err)
	}
	var out [32]byte
	digest.FillBytes(out[:])
	return out, nil
}

const zeroHeight = 32

var (
	zeroOnce  sync.Once
	zeroChain [][32]byte
)

// Zeros returns the empty-subtree hashes for levels 0..height, where level 0
// is the zero leaf and level k is Poseidon(zeros[k-1], zeros[k-1]).
func Zeros(height int) ([][32]byte, error) {
	if height < 0 || height > zeroHeight {
		return nil, fmt.Errorf("hasher: unsupported tree height %d", height)
	}
	var buildErr error
	zeroOnce.Do(func() {
		chain := make([][32]byte, zeroHeight+1)
		for k := 1; k <= zeroHeight; k++ {
			h, err := Hash(chain[k-1], chain[k-1])
			if err != nil {
				buildErr = err
				return
			}
			chain[k] = h
		}
		zeroChain = chain
	})
	if buildErr != nil {
		return nil, buildErr
	}
	if zeroChain == nil {
		return nil, errors.New("hasher: zero chain initialization failed")
	}
	return zeroChain[:height+1], nil
}
