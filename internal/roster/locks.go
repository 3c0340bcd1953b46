package roster

import "sync"

// matchLocks hands out one mutex per match so that count-then-write
// sequences (admission capacity check, withdrawal promotion, rank swaps)
// are serialized per match. Cross-match operations never contend.
type matchLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newMatchLocks() *matchLocks {
	return &matchLocks{locks: make(map[uint]*sync.Mutex)}
}

// lock acquires the mutex for matchID and returns the unlock func.
func (m *matchLocks) lock(matchID uint) func() {
	m.mu.Lock()
	l, ok := m.locks[matchID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[matchID] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// forget drops the mutex for a deleted match. Safe to call while other
// goroutines still hold the old mutex; they finish on the stale lock and
// later requests for the same (now nonexistent) match fail on lookup.
func (m *matchLocks) forget(matchID uint) {
	m.mu.Lock()
	delete(m.locks, matchID)
	m.mu.Unlock()
}
