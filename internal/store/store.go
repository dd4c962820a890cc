// store.go - Persistent account and balance store backed by LevelDB.
//
// Every accepted transaction commits exactly one write batch: account
// creations, state blob rewrites and balance updates land together or not at
// all. That single property is what lets the handler fail at any pipeline
// step without ever undoing its own work.

package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"

	"zkcash/internal/account"
)

var (
	ErrAccountNotFound = errors.New("store: account not found")
	ErrAccountExists   = errors.New("store: account already exists")
)

// Key namespaces. Accounts carry payloads; balances carry a u64.
var (
	prefixAccount = []byte("a/")
	prefixBalance = []byte("b/")
)

// Store is the pool's persistent state.
type Store struct {
	mu sync.Mutex
	db *leveldb.DB
}

// Open opens (or creates) a store at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// OpenMemory opens an in-memory store. Used by tests and dry runs.
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("store: open memory: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func accountKey(addr account.Address) []byte {
	return append(append([]byte{}, prefixAccount...), addr[:]...)
}

func balanceKey(addr account.Address) []byte {
	return append(append([]byte{}, prefixBalance...), addr[:]...)
}

// HasAccount reports whether an account exists.
func (s *Store) HasAccount(addr account.Address) (bool, error) {
	ok, err := s.db.Has(accountKey(addr), nil)
	if err != nil {
		return false, fmt.Errorf("store: has %s: %w", addr, err)
	}
	return ok, nil
}

// GetAccount returns an account's payload.
func (s *Store) GetAccount(addr account.Address) ([]byte, error) {
	v, err := s.db.Get(accountKey(addr), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", addr, err)
	}
	return v, nil
}

// Balance returns an address's balance; a missing entry reads as zero.
func (s *Store) Balance(addr account.Address) (uint64, error) {
	v, err := s.db.Get(balanceKey(addr), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("store: balance %s: %w", addr, err)
	}
	if len(v) != 8 {
		return 0, fmt.Errorf("store: balance %s: malformed record", addr)
	}
	return binary.LittleEndian.Uint64(v), nil
}

// Update stages a set of writes for one atomic commit.
type Update struct {
	creates  map[account.Address][]byte
	puts     map[account.Address][]byte
	balances map[account.Address]uint64
}

// NewUpdate returns an empty staging set.
func NewUpdate() *Update {
	return &Update{
		creates:  make(map[account.Address][]byte),
		puts:     make(map[account.Address][]byte),
		balances: make(map[account.Address]uint64),
	}
}

// CreateAccount stages a create-only write: commit fails if the account
// already exists, and staging the same address twice fails here.
func (u *Update) CreateAccount(addr account.Address, payload []byte) error {
	if _, dup := u.creates[addr]; dup {
		return ErrAccountExists
	}
	u.creates[addr] = append([]byte(nil), payload...)
	return nil
}

// PutAccount stages an overwrite of a mutable account (tree, config).
func (u *Update) PutAccount(addr account.Address, payload []byte) {
	u.puts[addr] = append([]byte(nil), payload...)
}

// SetBalance stages an absolute balance value.
func (u *Update) SetBalance(addr account.Address, lamports uint64) {
	u.balances[addr] = lamports
}

// Commit applies the staged writes in one batch. Creations are re-checked
// against the live database under the store lock, so a create can never
// clobber an existing singleton.
func (s *Store) Commit(u *Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch := new(leveldb.Batch)
	for addr, payload := range u.creates {
		ok, err := s.db.Has(accountKey(addr), nil)
		if err != nil {
			return fmt.Errorf("store: commit check %s: %w", addr, err)
		}
		if ok {
			return fmt.Errorf("%w: %s", ErrAccountExists, addr)
		}
		batch.Put(accountKey(addr), payload)
	}
	for addr, payload := range u.puts {
		batch.Put(accountKey(addr), payload)
	}
	for addr, lamports := range u.balances {
		var v [8]byte
		binary.LittleEndian.PutUint64(v[:], lamports)
		batch.Put(balanceKey(addr), v[:])
	}
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}
