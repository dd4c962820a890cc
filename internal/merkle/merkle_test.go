package merkle

import (
	"testing"

	"zkcash/internal/field"
	"zkcash/internal/hasher"
)

func newTestTree(t *testing.T) *TreeState {
	t.Helper()
	tree, err := NewTreeState([32]byte{0xaa}, 1_000_000_000_000, 255)
	if err != nil {
		t.Fatalf("NewTreeState failed: %v", err)
	}
	return tree
}

func TestInitialization(t *testing.T) {
	tree := newTestTree(t)

	if tree.NextIndex != 0 {
		t.Errorf("next index = %d, want 0", tree.NextIndex)
	}
	if tree.RootIndex != 0 {
		t.Errorf("root index = %d, want 0", tree.RootIndex)
	}

	zeros, err := hasher.Zeros(int(tree.Height))
	if err != nil {
		t.Fatalf("Zeros failed: %v", err)
	}
	if tree.Root != zeros[tree.Height] {
		t.Error("initial root must be the height-level empty subtree")
	}
	if tree.RootHistory[0] != tree.Root {
		t.Error("history slot 0 must hold the initial root")
	}
	for k := 0; k < int(tree.Height); k++ {
		if tree.Subtrees[k] != zeros[k] {
			t.Errorf("frontier level %d must start as the empty subtree", k)
		}
	}
}

func TestSingleAppend(t *testing.T) {
	tree := newTestTree(t)
	leaf := field.Uint64Bytes(1)

	root, index, siblings, err := tree.Append(leaf)
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if index != 0 {
		t.Errorf("leaf index = %d, want 0", index)
	}
	if tree.NextIndex != 1 {
		t.Errorf("next index = %d, want 1", tree.NextIndex)
	}
	if len(siblings) != int(tree.Height) {
		t.Errorf("sibling path length = %d, want %d", len(siblings), tree.Height)
	}
	if root != tree.Root {
		t.Error("returned root must equal stored root")
	}

	// Recompute the root from the sibling path.
	current := leaf
	idx := index
	for k, sib := range siblings {
		var h [32]byte
		if idx&1 == 0 {
			h, err = hasher.Hash(current, sib)
		} else {
			h, err = hasher.Hash(sib, current)
		}
		if err != nil {
			t.Fatalf("hash failed at level %d: %v", k, err)
		}
		current = h
		idx >>= 1
	}
	if current != root {
		t.Error("sibling path does not reproduce the root")
	}
}

func TestMultipleAppends(t *testing.T) {
	tree := newTestTree(t)

	var lastRoot [32]byte
	for i := uint64(0); i < 10; i++ {
		root, index, _, err := tree.Append(field.Uint64Bytes(i + 1))
		if err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
		if index != i {
			t.Errorf("append %d landed at index %d", i, index)
		}
		if tree.NextIndex != i+1 {
			t.Errorf("next index = %d after append %d", tree.NextIndex, i)
		}
		if root == lastRoot {
			t.Errorf("append %d did not change the root", i)
		}
		lastRoot = root
	}
}

func TestAppendDeterministic(t *testing.T) {
	a := newTestTree(t)
	b := newTestTree(t)

	for i := uint64(0); i < 5; i++ {
		ra, _, _, err := a.Append(field.Uint64Bytes(100 + i))
		if err != nil {
			t.Fatalf("append failed: %v", err)
		}
		rb, _, _, err := b.Append(field.Uint64Bytes(100 + i))
		if err != nil {
			t.Fatalf("append failed: %v", err)
		}
		if ra != rb {
			t.Fatalf("same leaf sequence produced different roots at step %d", i)
		}
	}
}

func TestRootHistoryRing(t *testing.T) {
	tree := newTestTree(t)

	initial := tree.Root
	roots := make([][32]byte, 0, int(tree.RootHistorySize)+1)
	roots = append(roots, initial)
	for i := 0; i < int(tree.RootHistorySize); i++ {
		root, _, _, err := tree.Append(field.Uint64Bytes(uint64(i + 1)))
		if err != nil {
			t.Fatalf("append failed: %v", err)
		}
		roots = append(roots, root)
	}

	// The ring holds RootHistorySize entries; after exactly that many
	// appends the initial root has been overwritten.
	if tree.IsKnownRoot(initial) {
		t.Error("initial root should have aged out of the ring")
	}
	for _, r := range roots[1:] {
		if !tree.IsKnownRoot(r) {
			t.Errorf("recent root %x should still be known", r[:8])
		}
	}
}

func TestIsKnownRootRejectsZero(t *testing.T) {
	tree := newTestTree(t)
	if tree.IsKnownRoot([32]byte{}) {
		t.Error("the zero root must always be rejected")
	}
}

func TestTreeFull(t *testing.T) {
	tree := newTestTree(t)

	// Jump to one slot below capacity; the final append must succeed and the
	// one after it must fail without mutating state.
	tree.NextIndex = tree.Capacity() - 1
	if _, _, _, err := tree.Append(field.Uint64Bytes(1)); err != nil {
		t.Fatalf("append at capacity-1 should succeed: %v", err)
	}
	if tree.NextIndex != tree.Capacity() {
		t.Errorf("next index = %d, want capacity %d", tree.NextIndex, tree.Capacity())
	}

	rootBefore := tree.Root
	if _, _, _, err := tree.Append(field.Uint64Bytes(2)); err != ErrTreeFull {
		t.Fatalf("append beyond capacity: got %v, want ErrTreeFull", err)
	}
	if tree.Root != rootBefore || tree.NextIndex != tree.Capacity() {
		t.Error("failed append must not change state")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	tree := newTestTree(t)
	for i := uint64(0); i < 7; i++ {
		if _, _, _, err := tree.Append(field.Uint64Bytes(i + 1)); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	blob, err := tree.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var back TreeState
	if err := back.UnmarshalBinary(blob); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.Root != tree.Root || back.NextIndex != tree.NextIndex ||
		back.RootIndex != tree.RootIndex || back.Authority != tree.Authority ||
		back.MaxDepositAmount != tree.MaxDepositAmount ||
		back.Height != tree.Height || back.RootHistorySize != tree.RootHistorySize {
		t.Error("decoded record differs from the original")
	}
	for k := range tree.Subtrees {
		if back.Subtrees[k] != tree.Subtrees[k] {
			t.Errorf("frontier level %d differs after round trip", k)
		}
	}

	// Appending to the decoded copy must agree with the original.
	r1, _, _, err := tree.Append(field.Uint64Bytes(99))
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	r2, _, _, err := back.Append(field.Uint64Bytes(99))
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if r1 != r2 {
		t.Error("decoded tree diverged from the original on append")
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	var tr TreeState
	if err := tr.UnmarshalBinary(nil); err == nil {
		t.Error("nil record must be rejected")
	}
	if err := tr.UnmarshalBinary(make([]byte, 50)); err == nil {
		t.Error("truncated record must be rejected")
	}
}
