// merkle.go - Incremental Poseidon Merkle tree with a rolling root history.
//
// The tree is append-only. Insertion keeps only the right frontier (one node
// per level), so state is O(height) regardless of how many leaves exist. The
// last RootHistorySize roots are kept in a ring buffer; a proof is accepted
// against any root still present in the ring.

package merkle

import (
	"errors"
	"fmt"

	"zkcash/internal/hasher"
)

const (
	// DefaultHeight bounds the tree at 2^26 leaves.
	DefaultHeight = 26
	// DefaultRootHistorySize is the length of the known-root ring buffer.
	DefaultRootHistorySize = 100

	maxHeight      = 32
	maxHistorySize = 255
)

var (
	ErrTreeFull    = errors.New("merkle: tree is at capacity")
	ErrBadGeometry = errors.New("merkle: invalid height or root history size")
)

// TreeState is the persistent state of the pool's Merkle tree. The field set
// mirrors the on-chain account layout: the right frontier, the history ring
// and the deposit policy all live in one record.
type TreeState struct {
	Authority        [32]byte
	NextIndex        uint64
	Subtrees         [][32]byte // right frontier, one node per level
	Root             [32]byte
	RootHistory      [][32]byte
	RootIndex        uint64
	MaxDepositAmount uint64
	Height           uint8
	RootHistorySize  uint8
	Bump             uint8
}

// NewTreeState allocates an empty tree with the default geometry and writes
// the initial root (the height-level empty subtree) into the history ring.
func NewTreeState(authority [32]byte, maxDeposit uint64, bump uint8) (*TreeState, error) {
	t := &TreeState{
		Authority:        authority,
		Subtrees:         make([][32]byte, DefaultHeight),
		RootHistory:      make([][32]byte, DefaultRootHistorySize),
		MaxDepositAmount: maxDeposit,
		Height:           DefaultHeight,
		RootHistorySize:  DefaultRootHistorySize,
		Bump:             bump,
	}
	if err := t.Initialize(); err != nil {
		return nil, err
	}
	return t, nil
}

// Initialize resets the tree to the empty state: every frontier slot holds
// the empty subtree of its level and the root is the height-level zero hash.
func (t *TreeState) Initialize() error {
	if t.Height == 0 || t.Height > maxHeight ||
		t.RootHistorySize == 0 || int(t.RootHistorySize) > maxHistorySize {
		return ErrBadGeometry
	}
	zeros, err := hasher.Zeros(int(t.Height))
	if err != nil {
		return err
	}
	if len(t.Subtrees) != int(t.Height) {
		t.Subtrees = make([][32]byte, t.Height)
	}
	for k := 0; k < int(t.Height); k++ {
		t.Subtrees[k] = zeros[k]
	}
	if len(t.RootHistory) != int(t.RootHistorySize) {
		t.RootHistory = make([][32]byte, t.RootHistorySize)
	}
	for i := range t.RootHistory {
		t.RootHistory[i] = [32]byte{}
	}
	t.NextIndex = 0
	t.RootIndex = 0
	t.Root = zeros[t.Height]
	t.RootHistory[0] = t.Root
	return nil
}

// Capacity returns the maximum number of leaves the tree can hold.
func (t *TreeState) Capacity() uint64 {
	return 1 << t.Height
}

// Append inserts a leaf at the next free index and advances the root and the
// history ring. It returns the new root, the index the leaf landed at, and
// the sibling path of the insertion (level 0 first).
func (t *TreeState) Append(leaf [32]byte) (root [32]byte, index uint64, siblings [][32]byte, err error) {
	if t.NextIndex >= t.Capacity() {
		return [32]byte{}, 0, nil, ErrTreeFull
	}
	zeros, err := hasher.Zeros(int(t.Height))
	if err != nil {
		return [32]byte{}, 0, nil, err
	}

	index = t.NextIndex
	current := leaf
	siblings = make([][32]byte, t.Height)
	idx := index
	for k := 0; k < int(t.Height); k++ {
		if idx&1 == 0 {
			// Left child: this node becomes the new frontier at level k and
			// pairs with the empty subtree on its right.
			t.Subtrees[k] = current
			siblings[k] = zeros[k]
			current, err = hasher.Hash(current, zeros[k])
		} else {
			// Right child: pairs with the stored frontier on its left.
			siblings[k] = t.Subtrees[k]
			current, err = hasher.Hash(t.Subtrees[k], current)
		}
		if err != nil {
			return [32]byte{}, 0, nil, fmt.Errorf("merkle: level %d: %w", k, err)
		}
		idx >>= 1
	}

	t.NextIndex++
	t.Root = current
	t.RootIndex = (t.RootIndex + 1) % uint64(t.RootHistorySize)
	t.RootHistory[t.RootIndex] = current
	return current, index, siblings, nil
}

// IsKnownRoot reports whether r is one of the last RootHistorySize roots.
// The zero root is always rejected so an untouched ring slot can never match.
func (t *TreeState) IsKnownRoot(r [32]byte) bool {
	if r == ([32]byte{}) {
		return false
	}
	for _, h := range t.RootHistory {
		if h == r {
			return true
		}
	}
	return false
}
