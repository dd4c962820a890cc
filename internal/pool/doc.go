// Package pool implements the on-chain core of a shielded-value transfer
// protocol: deposits into a common vault and withdrawals to arbitrary
// recipients that cannot be linked to the deposits that funded them.
//
// Overview:
//   - Note commitments accumulate in an append-only Poseidon Merkle tree with
//     a rolling window of recent roots
//   - Spent notes are marked by nullifier singleton accounts; existence of the
//     account is the double-spend check
//   - Each transaction carries a Groth16 proof over BN254 binding the claimed
//     root, amounts, nullifiers and commitments
//   - External data (recipient, fee, asset, encrypted note blobs) is bound to
//     the proof by a SHA-256 hash carried as a public signal
//
// Security model:
//   - The verifier accepts only canonical field encodings and on-curve,
//     in-subgroup points
//   - Four nullifier addresses are checked per call: the two primary slots
//     plus the two addresses the same values would occupy if their slots were
//     swapped, closing the slot-swap replay
//   - Every state change of an accepted call commits in one atomic store
//     batch; a failure at any pipeline step has no observable effect
//   - Fee rates and the deposit cap are authority-gated policy
//
// The circuit toolchain, trusted setup and client-side prover live outside
// this module; the pool consumes their wire artifacts (proofs, public
// signals, encrypted blobs) and exposes tree state and singleton accounts
// back to indexers.
package pool
