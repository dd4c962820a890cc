// stats.go - Operational counters for the pool.
//
// In-process metrics in the spirit of a collector: accepted and rejected
// calls, value flow through the vault, broken down by rejection code. The
// counters live in the Pool instance and are read back through Pool.Stats;
// the operator CLI's status view does not show them.

package pool

import (
	"errors"
	"sync"
)

// Stats collects pool counters. Safe for concurrent use.
type Stats struct {
	mu sync.Mutex

	accepted      uint64
	rejected      uint64
	rejectedByRsn map[string]uint64
	deposited     uint64
	withdrawn     uint64
	fees          uint64
}

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	Accepted         uint64
	Rejected         uint64
	RejectedByReason map[string]uint64
	Deposited        uint64
	Withdrawn        uint64
	Fees             uint64
}

// NewStats returns an empty counter set.
func NewStats() *Stats {
	return &Stats{rejectedByRsn: make(map[string]uint64)}
}

func (s *Stats) recordAccept(extAmount int64, fee uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accepted++
	s.fees += fee
	if extAmount > 0 {
		s.deposited += uint64(extAmount)
	} else if extAmount < 0 {
		s.withdrawn += uint64(-extAmount)
	}
}

func (s *Stats) recordReject(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejected++
	reason := "internal"
	var perr *Error
	if errors.As(err, &perr) {
		reason = perr.Name
	}
	s.rejectedByRsn[reason]++
}

// Snapshot copies the counters.
func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	byReason := make(map[string]uint64, len(s.rejectedByRsn))
	for k, v := range s.rejectedByRsn {
		byReason[k] = v
	}
	return StatsSnapshot{
		Accepted:         s.accepted,
		Rejected:         s.rejected,
		RejectedByReason: byReason,
		Deposited:        s.deposited,
		Withdrawn:        s.withdrawn,
		Fees:             s.fees,
	}
}
