package account

import "testing"

func TestDeriveDeterministic(t *testing.T) {
	var nf [32]byte
	nf[0] = 0x11

	a1, b1, err := Nullifier0(nf)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	a2, b2, err := Nullifier0(nf)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	if a1 != a2 || b1 != b2 {
		t.Error("derivation must be deterministic")
	}
}

func TestSeedNamespaceSeparation(t *testing.T) {
	var v [32]byte
	v[5] = 0xee

	n0, _, err := Nullifier0(v)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	n1, _, err := Nullifier1(v)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	c0, _, err := Commitment0(v)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	c1, _, err := Commitment1(v)
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}

	addrs := []Address{n0, n1, c0, c1}
	for i := range addrs {
		for j := i + 1; j < len(addrs); j++ {
			if addrs[i] == addrs[j] {
				t.Errorf("tags %d and %d collide for the same value", i, j)
			}
		}
	}
}

func TestDistinctValuesDistinctAddresses(t *testing.T) {
	var a, b [32]byte
	a[31] = 1
	b[31] = 2
	n1, _, _ := Nullifier0(a)
	n2, _, _ := Nullifier0(b)
	if n1 == n2 {
		t.Error("distinct nullifiers must derive distinct addresses")
	}
}

func TestSingletonAddresses(t *testing.T) {
	tree, _, err := Tree()
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	vault, _, err := Vault()
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	cfg, _, err := Config()
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	if tree == vault || tree == cfg || vault == cfg {
		t.Error("the tree, vault and config addresses must all differ")
	}
}

func TestHexRoundTrip(t *testing.T) {
	tree, _, _ := Tree()
	parsed, err := AddressFromHex(tree.String())
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed != tree {
		t.Error("hex round trip changed the address")
	}

	if _, err := AddressFromHex("zz"); err == nil {
		t.Error("invalid hex must be rejected")
	}
	if _, err := AddressFromHex("abcd"); err == nil {
		t.Error("short hex must be rejected")
	}
}
