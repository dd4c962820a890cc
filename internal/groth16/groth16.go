// groth16.go - Groth16 proof verification over BN254.
//
// The wire encoding matches the client's prover output: G1 points are two
// 32-byte big-endian coordinates, G2 points four 32-byte big-endian
// coordinates with the imaginary component of each pair first. Proof A
// arrives with Y already negated by the submitter, so the pairing equation
// reduces to a single product check:
//
//	e(A, B) * e(alpha, beta) * e(vk_x, gamma) * e(C, delta) == 1
//
// where vk_x = IC[0] + sum(signal_i * IC[i]).

package groth16

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"zkcash/internal/field"
)

// NumSignals is the fixed public-signal arity of the transact circuit.
const NumSignals = 7

// Public-signal positions.
const (
	SignalRoot = iota
	SignalPublicAmount
	SignalExtDataHash
	SignalNullifier0
	SignalNullifier1
	SignalCommitment0
	SignalCommitment1
)

var (
	ErrInvalidG1          = errors.New("groth16: malformed G1 point")
	ErrInvalidG2          = errors.New("groth16: malformed G2 point")
	ErrSignalNotCanonical = errors.New("groth16: public signal is not a canonical field element")
	ErrMalformedKey       = errors.New("groth16: malformed verifying key")
	ErrVerificationFailed = errors.New("groth16: proof verification failed")
)

// Proof is a Groth16 proof in wire encoding. A's Y coordinate is negated by
// the submitter.
type Proof struct {
	A [64]byte
	B [128]byte
	C [64]byte
}

// VerifyingKey is a Groth16 verifying key in wire encoding. IC must hold
// NrPubInputs+1 points.
type VerifyingKey struct {
	NrPubInputs int
	AlphaG1     [64]byte
	BetaG2      [128]byte
	GammaG2     [128]byte
	DeltaG2     [128]byte
	IC          [][64]byte
}

// Verifier holds the decoded points of one verification.
type Verifier struct {
	a, c, alpha, vkX      bn254.G1Affine
	b, beta, gamma, delta bn254.G2Affine
}

// decodeG1 reads x||y big-endian coordinates and checks curve membership.
// The point at infinity and off-curve points are rejected.
func decodeG1(b [64]byte) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	if err := p.X.SetBytesCanonical(b[:32]); err != nil {
		return bn254.G1Affine{}, ErrInvalidG1
	}
	if err := p.Y.SetBytesCanonical(b[32:]); err != nil {
		return bn254.G1Affine{}, ErrInvalidG1
	}
	if p.IsInfinity() || !p.IsOnCurve() {
		return bn254.G1Affine{}, ErrInvalidG1
	}
	return p, nil
}

// decodeG2 reads the four coordinates (x imaginary, x real, y imaginary,
// y real) and checks curve and subgroup membership.
func decodeG2(b [128]byte) (bn254.G2Affine, error) {
	var p bn254.G2Affine
	coords := []*fp.Element{&p.X.A1, &p.X.A0, &p.Y.A1, &p.Y.A0}
	for i, c := range coords {
		if err := c.SetBytesCanonical(b[i*32 : (i+1)*32]); err != nil {
			return bn254.G2Affine{}, ErrInvalidG2
		}
	}
	if p.IsInfinity() || !p.IsOnCurve() || !p.IsInSubGroup() {
		return bn254.G2Affine{}, ErrInvalidG2
	}
	return p, nil
}

// NewVerifier decodes the proof, key and signals, and prepares vk_x. Proof A
// must already be negated.
func NewVerifier(proof *Proof, signals [][32]byte, vk *VerifyingKey) (*Verifier, error) {
	if vk.NrPubInputs != len(signals) {
		return nil, fmt.Errorf("%w: key expects %d signals, got %d", ErrMalformedKey, vk.NrPubInputs, len(signals))
	}
	if len(vk.IC) != len(signals)+1 {
		return nil, fmt.Errorf("%w: %d IC points for %d signals", ErrMalformedKey, len(vk.IC), len(signals))
	}

	var v Verifier
	var err error
	if v.a, err = decodeG1(proof.A); err != nil {
		return nil, fmt.Errorf("proof A: %w", err)
	}
	if v.b, err = decodeG2(proof.B); err != nil {
		return nil, fmt.Errorf("proof B: %w", err)
	}
	if v.c, err = decodeG1(proof.C); err != nil {
		return nil, fmt.Errorf("proof C: %w", err)
	}
	if v.alpha, err = decodeG1(vk.AlphaG1); err != nil {
		return nil, fmt.Errorf("vk alpha: %w", err)
	}
	if v.beta, err = decodeG2(vk.BetaG2); err != nil {
		return nil, fmt.Errorf("vk beta: %w", err)
	}
	if v.gamma, err = decodeG2(vk.GammaG2); err != nil {
		return nil, fmt.Errorf("vk gamma: %w", err)
	}
	if v.delta, err = decodeG2(vk.DeltaG2); err != nil {
		return nil, fmt.Errorf("vk delta: %w", err)
	}

	// vk_x = 1*IC[0] + sum(signal_i * IC[i]), one multiscalar multiplication.
	points := make([]bn254.G1Affine, len(vk.IC))
	scalars := make([]fr.Element, len(vk.IC))
	for i, ic := range vk.IC {
		if points[i], err = decodeG1(ic); err != nil {
			return nil, fmt.Errorf("vk IC[%d]: %w", i, err)
		}
	}
	scalars[0].SetOne()
	for i, sig := range signals {
		s, err := field.FromBytes(sig)
		if err != nil {
			return nil, fmt.Errorf("signal %d: %w", i, ErrSignalNotCanonical)
		}
		scalars[i+1] = s
	}
	if _, err := v.vkX.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return nil, fmt.Errorf("groth16: vk_x: %w", err)
	}
	return &v, nil
}

// Verify runs the product pairing check.
func (v *Verifier) Verify() error {
	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{v.a, v.alpha, v.vkX, v.c},
		[]bn254.G2Affine{v.b, v.beta, v.gamma, v.delta},
	)
	if err != nil {
		return fmt.Errorf("groth16: pairing: %w", err)
	}
	if !ok {
		return ErrVerificationFailed
	}
	return nil
}

// VerifyProof runs the full check on a proof whose A is already negated (the
// wire convention; the product equation needs -A on the left pairing). It
// does not negate A itself and never panics on malformed input.
func VerifyProof(proof *Proof, signals [][32]byte, vk *VerifyingKey) bool {
	v, err := NewVerifier(proof, signals, vk)
	if err != nil {
		return false
	}
	return v.Verify() == nil
}

// NegateA returns a copy of the proof with A's Y coordinate negated. Used by
// callers whose clients produce the non-negated convention.
func NegateA(proof *Proof) (*Proof, error) {
	p, err := decodeG1(proof.A)
	if err != nil {
		return nil, err
	}
	p.Neg(&p)
	out := *proof
	x := p.X.Bytes()
	y := p.Y.Bytes()
	copy(out.A[:32], x[:])
	copy(out.A[32:], y[:])
	return &out, nil
}
