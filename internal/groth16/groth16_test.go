package groth16

import (
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"zkcash/internal/field"
)

func encodeG1(p bn254.G1Affine) [64]byte {
	var out [64]byte
	x := p.X.Bytes()
	y := p.Y.Bytes()
	copy(out[:32], x[:])
	copy(out[32:], y[:])
	return out
}

func encodeG2(p bn254.G2Affine) [128]byte {
	var out [128]byte
	x1 := p.X.A1.Bytes()
	x0 := p.X.A0.Bytes()
	y1 := p.Y.A1.Bytes()
	y0 := p.Y.A0.Bytes()
	copy(out[0:32], x1[:])
	copy(out[32:64], x0[:])
	copy(out[64:96], y1[:])
	copy(out[96:128], y0[:])
	return out
}

func g1Mul(k int64) bn254.G1Affine {
	_, _, g, _ := bn254.Generators()
	var p bn254.G1Affine
	p.ScalarMultiplication(&g, big.NewInt(k))
	return p
}

func g2Mul(k int64) bn254.G2Affine {
	_, _, _, g := bn254.Generators()
	var p bn254.G2Affine
	p.ScalarMultiplication(&g, big.NewInt(k))
	return p
}

func validSignals() [][32]byte {
	signals := make([][32]byte, NumSignals)
	for i := range signals {
		signals[i] = field.Uint64Bytes(uint64(i + 1))
	}
	return signals
}

func TestDecodeG1(t *testing.T) {
	t.Run("generator round trips", func(t *testing.T) {
		want := g1Mul(1)
		got, err := decodeG1(encodeG1(want))
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if !got.Equal(&want) {
			t.Error("decoded point differs from the original")
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		for _, fill := range []byte{0x00, 0x01, 0x80, 0xfe, 0xff} {
			var b [64]byte
			for i := range b {
				b[i] = fill
			}
			if _, err := decodeG1(b); err == nil {
				t.Errorf("fill 0x%02x should not decode as a curve point", fill)
			}
		}
	})
}

func TestDecodeG2(t *testing.T) {
	want := g2Mul(1)
	got, err := decodeG2(encodeG2(want))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !got.Equal(&want) {
		t.Error("decoded point differs from the original")
	}

	var zero [128]byte
	if _, err := decodeG2(zero); err == nil {
		t.Error("the zero encoding should be rejected")
	}
}

func TestEmbeddedKeyDecodes(t *testing.T) {
	vk := VerifyingKeyTransact
	if len(vk.IC) != vk.NrPubInputs+1 {
		t.Fatalf("IC arity = %d, want %d", len(vk.IC), vk.NrPubInputs+1)
	}
	if _, err := decodeG1(vk.AlphaG1); err != nil {
		t.Errorf("alpha: %v", err)
	}
	if _, err := decodeG2(vk.BetaG2); err != nil {
		t.Errorf("beta: %v", err)
	}
	if _, err := decodeG2(vk.DeltaG2); err != nil {
		t.Errorf("delta: %v", err)
	}
	for i, ic := range vk.IC {
		if _, err := decodeG1(ic); err != nil {
			t.Errorf("IC[%d]: %v", i, err)
		}
	}

	// The ceremony fixes gamma to the G2 generator; decoding it pins down the
	// imaginary-first coordinate order of the wire format.
	gamma, err := decodeG2(vk.GammaG2)
	if err != nil {
		t.Fatalf("gamma: %v", err)
	}
	gen := g2Mul(1)
	if !gamma.Equal(&gen) {
		t.Error("vk gamma should decode to the G2 generator")
	}
}

func TestNewVerifierInputValidation(t *testing.T) {
	proof := &Proof{A: encodeG1(g1Mul(2)), B: encodeG2(g2Mul(3)), C: encodeG1(g1Mul(5))}

	t.Run("wrong signal count", func(t *testing.T) {
		if _, err := NewVerifier(proof, validSignals()[:6], VerifyingKeyTransact); !errors.Is(err, ErrMalformedKey) {
			t.Errorf("got %v, want ErrMalformedKey", err)
		}
	})

	t.Run("empty IC", func(t *testing.T) {
		bad := *VerifyingKeyTransact
		bad.IC = nil
		if _, err := NewVerifier(proof, validSignals(), &bad); !errors.Is(err, ErrMalformedKey) {
			t.Errorf("got %v, want ErrMalformedKey", err)
		}
	})

	t.Run("non-canonical signal", func(t *testing.T) {
		signals := validSignals()
		fr.Modulus().FillBytes(signals[0][:])
		if _, err := NewVerifier(proof, signals, VerifyingKeyTransact); !errors.Is(err, ErrSignalNotCanonical) {
			t.Errorf("got %v, want ErrSignalNotCanonical", err)
		}
	})

	t.Run("malformed proof A", func(t *testing.T) {
		bad := *proof
		for i := range bad.A {
			bad.A[i] = 0xff
		}
		if _, err := NewVerifier(&bad, validSignals(), VerifyingKeyTransact); !errors.Is(err, ErrInvalidG1) {
			t.Errorf("got %v, want ErrInvalidG1", err)
		}
	})
}

func TestVerifyRejectsForgedProof(t *testing.T) {
	// Structurally valid curve points that satisfy no circuit: the pairing
	// product cannot equal one.
	proof := &Proof{A: encodeG1(g1Mul(2)), B: encodeG2(g2Mul(3)), C: encodeG1(g1Mul(5))}
	v, err := NewVerifier(proof, validSignals(), VerifyingKeyTransact)
	if err != nil {
		t.Fatalf("NewVerifier failed: %v", err)
	}
	if err := v.Verify(); !errors.Is(err, ErrVerificationFailed) {
		t.Errorf("got %v, want ErrVerificationFailed", err)
	}

	if VerifyProof(proof, validSignals(), VerifyingKeyTransact) {
		t.Error("VerifyProof must reject a forged proof")
	}
}

func TestVerifyProofNeverPanics(t *testing.T) {
	fills := []byte{0x00, 0x01, 0x80, 0xfe, 0xff}
	for _, fill := range fills {
		var proof Proof
		for i := range proof.A {
			proof.A[i] = fill
		}
		for i := range proof.B {
			proof.B[i] = fill
		}
		for i := range proof.C {
			proof.C[i] = fill
		}
		if VerifyProof(&proof, validSignals(), VerifyingKeyTransact) {
			t.Errorf("garbage proof (fill 0x%02x) must not verify", fill)
		}
	}
}

func TestNegateA(t *testing.T) {
	proof := &Proof{A: encodeG1(g1Mul(7)), B: encodeG2(g2Mul(3)), C: encodeG1(g1Mul(5))}

	negated, err := NegateA(proof)
	if err != nil {
		t.Fatalf("NegateA failed: %v", err)
	}
	if negated.A == proof.A {
		t.Error("negation must change A")
	}
	if negated.B != proof.B || negated.C != proof.C {
		t.Error("negation must not touch B or C")
	}

	double, err := NegateA(negated)
	if err != nil {
		t.Fatalf("second NegateA failed: %v", err)
	}
	if double.A != proof.A {
		t.Error("negating twice must restore A")
	}

	var garbage Proof
	if _, err := NegateA(&garbage); err == nil {
		t.Error("NegateA must reject a malformed point")
	}
}
