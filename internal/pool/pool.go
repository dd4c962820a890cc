// pool.go - The shielded pool state machine.
//
// One Pool owns the tree, the vault and the config through the store. Every
// entry point validates fully before staging a single store batch, so a
// failure at any step leaves no observable effect.

package pool

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"sync"

	"github.com/rs/zerolog"

	"zkcash/internal/account"
	"zkcash/internal/extdata"
	"zkcash/internal/field"
	"zkcash/internal/groth16"
	"zkcash/internal/merkle"
	"zkcash/internal/store"
)

// NativeMint is the pinned asset tag of the pool. The extData hash binds
// every proof to it; any other tag is rejected before cryptographic work.
var NativeMint = account.Address{31: 0x01}

var ErrNotInitialized = errors.New("pool: not initialized")

// Proof carries a transact proof and its seven public signals in wire form.
type Proof struct {
	Root              [32]byte
	PublicAmount      [32]byte
	ExtDataHash       [32]byte
	InputNullifiers   [2][32]byte
	OutputCommitments [2][32]byte
	A                 [64]byte
	B                 [128]byte
	C                 [64]byte
}

// TransactParams names everything a transact call touches. The full ExtData
// is reconstructed from these fields and the pinned asset tag; only the
// minified (ext amount, fee) pair and the blobs travel with the proof.
type TransactParams struct {
	Proof            Proof
	ExtAmount        int64
	Fee              uint64
	EncryptedOutput1 []byte
	EncryptedOutput2 []byte
	Recipient        account.Address
	FeeRecipient     account.Address
	Mint             account.Address
	Signer           account.Address
}

// Pool is the on-chain program state machine over a local store.
type Pool struct {
	mu    sync.Mutex
	store *store.Store
	log   zerolog.Logger
	stats *Stats

	// admin, when set, pins who may initialize the pool.
	admin *account.Address

	// verify is swapped by tests that exercise the handler without a prover.
	verify func(proof *Proof) bool
}

// New creates a pool over st. A non-nil admin restricts Initialize to that
// signer.
func New(st *store.Store, log zerolog.Logger, admin *account.Address) *Pool {
	p := &Pool{store: st, log: log, stats: NewStats(), admin: admin}
	p.verify = p.verifyGroth16
	return p
}

// Stats returns the pool's counters.
func (p *Pool) Stats() *Stats {
	return p.stats
}

func (p *Pool) verifyGroth16(proof *Proof) bool {
	wire := &groth16.Proof{A: proof.A, B: proof.B, C: proof.C}
	signals := [][32]byte{
		proof.Root,
		proof.PublicAmount,
		proof.ExtDataHash,
		proof.InputNullifiers[0],
		proof.InputNullifiers[1],
		proof.OutputCommitments[0],
		proof.OutputCommitments[1],
	}
	return groth16.VerifyProof(wire, signals, groth16.VerifyingKeyTransact)
}

// Initialize creates the tree, vault and config accounts. It fails if the
// pool already exists or, with a pinned admin, if authority is anyone else.
func (p *Pool) Initialize(authority account.Address) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.admin != nil && *p.admin != authority {
		return ErrUnauthorized
	}

	treeAddr, treeBump, err := account.Tree()
	if err != nil {
		return err
	}
	vaultAddr, _, err := account.Vault()
	if err != nil {
		return err
	}
	cfgAddr, cfgBump, err := account.Config()
	if err != nil {
		return err
	}

	tree, err := merkle.NewTreeState(authority, DefaultMaxDepositAmount, treeBump)
	if err != nil {
		return err
	}
	treeBlob, err := tree.MarshalBinary()
	if err != nil {
		return err
	}
	cfg := &GlobalConfig{
		Authority:         authority,
		DepositFeeRate:    DefaultDepositFeeRate,
		WithdrawalFeeRate: DefaultWithdrawalFeeRate,
		FeeErrorMargin:    DefaultFeeErrorMargin,
		Bump:              cfgBump,
	}
	cfgBlob, err := cfg.MarshalBinary()
	if err != nil {
		return err
	}

	u := store.NewUpdate()
	if err := u.CreateAccount(treeAddr, treeBlob); err != nil {
		return err
	}
	if err := u.CreateAccount(vaultAddr, []byte{1}); err != nil {
		return err
	}
	if err := u.CreateAccount(cfgAddr, cfgBlob); err != nil {
		return err
	}
	if err := p.store.Commit(u); err != nil {
		return err
	}

	p.log.Info().
		Str("tree", treeAddr.String()).
		Str("authority", authority.String()).
		Uint8("height", tree.Height).
		Uint8("root_history_size", tree.RootHistorySize).
		Uint64("max_deposit", tree.MaxDepositAmount).
		Msg("pool initialized")
	return nil
}

func (p *Pool) loadTree() (*merkle.TreeState, account.Address, error) {
	addr, _, err := account.Tree()
	if err != nil {
		return nil, account.Address{}, err
	}
	blob, err := p.store.GetAccount(addr)
	if errors.Is(err, store.ErrAccountNotFound) {
		return nil, account.Address{}, ErrNotInitialized
	}
	if err != nil {
		return nil, account.Address{}, err
	}
	var tree merkle.TreeState
	if err := tree.UnmarshalBinary(blob); err != nil {
		return nil, account.Address{}, err
	}
	return &tree, addr, nil
}

func (p *Pool) loadConfig() (*GlobalConfig, account.Address, error) {
	addr, _, err := account.Config()
	if err != nil {
		return nil, account.Address{}, err
	}
	blob, err := p.store.GetAccount(addr)
	if errors.Is(err, store.ErrAccountNotFound) {
		return nil, account.Address{}, ErrNotInitialized
	}
	if err != nil {
		return nil, account.Address{}, err
	}
	var cfg GlobalConfig
	if err := cfg.UnmarshalBinary(blob); err != nil {
		return nil, account.Address{}, err
	}
	return &cfg, addr, nil
}

// UpdateDepositLimit writes a new per-tree deposit cap. Authority-gated.
func (p *Pool) UpdateDepositLimit(authority account.Address, newLimit uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	tree, treeAddr, err := p.loadTree()
	if err != nil {
		return err
	}
	if tree.Authority != authority {
		return ErrUnauthorized
	}
	tree.MaxDepositAmount = newLimit
	blob, err := tree.MarshalBinary()
	if err != nil {
		return err
	}
	u := store.NewUpdate()
	u.PutAccount(treeAddr, blob)
	if err := p.store.Commit(u); err != nil {
		return err
	}
	p.log.Info().Uint64("max_deposit", newLimit).Msg("deposit limit updated")
	return nil
}

// UpdateGlobalConfig rewrites the fee policy. Nil fields are left unchanged;
// present fields must be at most 10_000 basis points. Authority-gated.
func (p *Pool) UpdateGlobalConfig(authority account.Address, depositRate, withdrawalRate, errorMargin *uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	cfg, cfgAddr, err := p.loadConfig()
	if err != nil {
		return err
	}
	if cfg.Authority != authority {
		return ErrUnauthorized
	}
	for _, rate := range []*uint16{depositRate, withdrawalRate, errorMargin} {
		if rate != nil && *rate > basisPoints {
			return ErrInvalidFeeRate
		}
	}
	if depositRate != nil {
		cfg.DepositFeeRate = *depositRate
	}
	if withdrawalRate != nil {
		cfg.WithdrawalFeeRate = *withdrawalRate
	}
	if errorMargin != nil {
		cfg.FeeErrorMargin = *errorMargin
	}
	blob, err := cfg.MarshalBinary()
	if err != nil {
		return err
	}
	u := store.NewUpdate()
	u.PutAccount(cfgAddr, blob)
	if err := p.store.Commit(u); err != nil {
		return err
	}
	p.log.Info().
		Uint16("deposit_rate", cfg.DepositFeeRate).
		Uint16("withdrawal_rate", cfg.WithdrawalFeeRate).
		Uint16("fee_error_margin", cfg.FeeErrorMargin).
		Msg("global config updated")
	return nil
}

// validateFee enforces the fee policy band before any cryptographic work.
func validateFee(extAmount int64, fee uint64, cfg *GlobalConfig) error {
	if extAmount == math.MinInt64 {
		return ErrArithmeticOverflow
	}
	if extAmount == 0 {
		// Internal transfer: the fee is a tip bounded by the margin alone.
		if fee > uint64(cfg.FeeErrorMargin) {
			return ErrInvalidFeeRate
		}
		return nil
	}
	var amount uint64
	rate := uint64(cfg.WithdrawalFeeRate)
	if extAmount > 0 {
		amount = uint64(extAmount)
		rate = uint64(cfg.DepositFeeRate)
	} else {
		amount = uint64(-extAmount)
	}
	if fee > amount {
		return ErrInvalidFeeRate
	}
	// maxFee = floor(amount * (rate + margin) / 10_000); the product needs
	// 128-bit headroom.
	hi, lo := bits.Mul64(amount, rate+uint64(cfg.FeeErrorMargin))
	maxFee, _ := bits.Div64(hi, lo, basisPoints)
	if fee > maxFee {
		return ErrInvalidFeeRate
	}
	return nil
}

// checkPublicAmount verifies the amount signal against ext_amount - fee
// under the signed field mapping.
func checkPublicAmount(extAmount int64, fee uint64, signal [32]byte) bool {
	return field.CheckPublicAmount(extAmount, fee, signal)
}

// checkedAdd and checkedSub guard every balance mutation.
func checkedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrArithmeticOverflow
	}
	return sum, nil
}

func checkedSub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, ErrArithmeticOverflow
	}
	return diff, nil
}

// Transact runs the full pipeline:
//
//	PRE-CHECK -> EXTDATA-HASH -> ROOT-KNOWN -> GROTH16 -> NULLIFIER-UNIQ(4)
//	-> COMMITMENT-UNIQ(2) -> VALUE-MOVE -> TREE-INSERT -> ACCEPT
//
// Any failure aborts the call with no observable effect.
func (p *Pool) Transact(params *TransactParams) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.transact(params)
	if err != nil {
		p.stats.recordReject(err)
		var perr *Error
		if errors.As(err, &perr) {
			p.log.Warn().Str("reason", perr.Name).Uint16("code", perr.Code).Msg("transact rejected")
		} else {
			p.log.Warn().Err(err).Msg("transact rejected")
		}
		return err
	}
	p.stats.recordAccept(params.ExtAmount, params.Fee)
	return nil
}

func (p *Pool) transact(params *TransactParams) error {
	tree, treeAddr, err := p.loadTree()
	if err != nil {
		return err
	}
	cfg, _, err := p.loadConfig()
	if err != nil {
		return err
	}

	// PRE-CHECK: fee band, deposit cap, pinned asset.
	if err := validateFee(params.ExtAmount, params.Fee, cfg); err != nil {
		return err
	}
	if params.ExtAmount > 0 && uint64(params.ExtAmount) > tree.MaxDepositAmount {
		return ErrDepositLimitExceeded
	}
	if params.Mint != NativeMint {
		return ErrInvalidMintAddress
	}

	// EXTDATA-HASH: rebuild from the named accounts and compare the signal.
	ext := extdata.ExtData{
		Recipient:        params.Recipient,
		ExtAmount:        params.ExtAmount,
		EncryptedOutput1: params.EncryptedOutput1,
		EncryptedOutput2: params.EncryptedOutput2,
		Fee:              params.Fee,
		MintAddress:      params.Mint,
	}
	hash, err := ext.HashMod()
	if err != nil {
		return err
	}
	if hash != params.Proof.ExtDataHash {
		return ErrExtDataHashMismatch
	}

	// ROOT-KNOWN.
	if !tree.IsKnownRoot(params.Proof.Root) {
		return ErrUnknownRoot
	}

	// The public amount signal must attest exactly ext_amount - fee.
	if !checkPublicAmount(params.ExtAmount, params.Fee, params.Proof.PublicAmount) {
		return ErrInvalidProof
	}

	// GROTH16.
	if !p.verify(&params.Proof) {
		return ErrInvalidProof
	}

	// NULLIFIER-UNIQ: the two primary singletons plus the two cross-check
	// addresses the same values would occupy in the opposite slots. A note
	// replayed with its slot swapped trips the cross-check.
	n0, n1 := params.Proof.InputNullifiers[0], params.Proof.InputNullifiers[1]
	type derived struct {
		addr   account.Address
		create bool
	}
	var slots [4]derived
	if slots[0].addr, _, err = account.Nullifier0(n0); err != nil {
		return err
	}
	if slots[1].addr, _, err = account.Nullifier1(n1); err != nil {
		return err
	}
	if slots[2].addr, _, err = account.Nullifier0(n1); err != nil {
		return err
	}
	if slots[3].addr, _, err = account.Nullifier1(n0); err != nil {
		return err
	}
	slots[0].create = true
	slots[1].create = true
	u := store.NewUpdate()
	for _, s := range slots {
		exists, err := p.store.HasAccount(s.addr)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: nullifier %s", store.ErrAccountExists, s.addr)
		}
		if s.create {
			if err := u.CreateAccount(s.addr, []byte{1}); err != nil {
				return err
			}
		}
	}

	// COMMITMENT-UNIQ: both output singletons, payload = commitment || blob.
	c0, c1 := params.Proof.OutputCommitments[0], params.Proof.OutputCommitments[1]
	commitments := [2]struct {
		value [32]byte
		blob  []byte
	}{{c0, params.EncryptedOutput1}, {c1, params.EncryptedOutput2}}
	deriveCommitment := [2]func([32]byte) (account.Address, uint8, error){
		account.Commitment0, account.Commitment1,
	}
	for i, cm := range commitments {
		addr, _, err := deriveCommitment[i](cm.value)
		if err != nil {
			return err
		}
		exists, err := p.store.HasAccount(addr)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: commitment %s", store.ErrAccountExists, addr)
		}
		payload := make([]byte, 0, 32+len(cm.blob))
		payload = append(payload, cm.value[:]...)
		payload = append(payload, cm.blob...)
		if err := u.CreateAccount(addr, payload); err != nil {
			return err
		}
	}

	// Both output leaves must fit before any value moves.
	if tree.NextIndex+2 > tree.Capacity() {
		return ErrTreeFull
	}

	// VALUE-MOVE, staged as absolute balances so aliased accounts resolve
	// naturally.
	if err := p.stageTransfers(u, params); err != nil {
		return err
	}

	// TREE-INSERT.
	for _, leaf := range [2][32]byte{c0, c1} {
		if _, _, _, err := tree.Append(leaf); err != nil {
			if errors.Is(err, merkle.ErrTreeFull) {
				return ErrTreeFull
			}
			return err
		}
	}
	treeBlob, err := tree.MarshalBinary()
	if err != nil {
		return err
	}
	u.PutAccount(treeAddr, treeBlob)

	// ACCEPT: one atomic batch.
	if err := p.store.Commit(u); err != nil {
		return err
	}
	p.log.Info().
		Int64("ext_amount", params.ExtAmount).
		Uint64("fee", params.Fee).
		Uint64("next_index", tree.NextIndex).
		Hex("root", tree.Root[:]).
		Msg("transact accepted")
	return nil
}

// stageTransfers computes the post-call balances for signer, vault,
// recipient and fee recipient with checked arithmetic.
func (p *Pool) stageTransfers(u *store.Update, params *TransactParams) error {
	vaultAddr, _, err := account.Vault()
	if err != nil {
		return err
	}

	balances := make(map[account.Address]uint64)
	read := func(addr account.Address) (uint64, error) {
		if b, ok := balances[addr]; ok {
			return b, nil
		}
		b, err := p.store.Balance(addr)
		if err != nil {
			return 0, err
		}
		balances[addr] = b
		return b, nil
	}
	move := func(from, to account.Address, amount uint64) error {
		fromBal, err := read(from)
		if err != nil {
			return err
		}
		toBal, err := read(to)
		if err != nil {
			return err
		}
		if fromBal, err = checkedSub(fromBal, amount); err != nil {
			return err
		}
		balances[from] = fromBal
		if toBal, err = checkedAdd(toBal, amount); err != nil {
			return err
		}
		balances[to] = toBal
		return nil
	}

	switch {
	case params.ExtAmount > 0:
		// Deposit: signer funds the vault, the vault pays the fee.
		if err := move(params.Signer, vaultAddr, uint64(params.ExtAmount)); err != nil {
			return err
		}
		if err := move(vaultAddr, params.FeeRecipient, params.Fee); err != nil {
			return err
		}
	case params.ExtAmount < 0:
		// Withdrawal: the vault pays recipient and fee; both must be covered.
		amount := uint64(-params.ExtAmount)
		total, err := checkedAdd(amount, params.Fee)
		if err != nil {
			return err
		}
		vaultBal, err := read(vaultAddr)
		if err != nil {
			return err
		}
		if vaultBal < total {
			return ErrArithmeticOverflow
		}
		if err := move(vaultAddr, params.Recipient, amount); err != nil {
			return err
		}
		if err := move(vaultAddr, params.FeeRecipient, params.Fee); err != nil {
			return err
		}
	default:
		if err := move(vaultAddr, params.FeeRecipient, params.Fee); err != nil {
			return err
		}
	}

	for addr, bal := range balances {
		u.SetBalance(addr, bal)
	}
	return nil
}
