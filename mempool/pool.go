// Package mempool implements the transaction memory pool of a
// CryptoNote-family node: admission, conflict detection against key
// images and spent outputs, priority ordering for block assembly,
// expiration, reorg reconciliation, and persistence.
package mempool

import (
	"fmt"
	"sync"

	"github.com/cryptonote-go/txpool/chainhash"
	"github.com/cryptonote-go/txpool/mempool/heapindex"
)

// Pool is a CryptoNote transaction pool. The zero value is not usable;
// construct one with New.
//
// A single mutex (mu) guards every field below it. Every exported method
// is self-locking. Internal helpers with a Locked suffix assume the
// caller already holds mu — they exist so that a sequence of operations
// (for example fill_block_template calling the readiness check for every
// candidate) can run to completion under one critical section without
// needing a true re-entrant mutex: nothing ever needs to re-acquire mu
// because the validator and chain ports are handed plain data, never a
// handle back into Pool's locking API.
type Pool struct {
	mu sync.Mutex

	cfg Config

	byID      map[chainhash.Hash]*PoolEntry
	priority  *heapindex.Queue[*PoolEntry]
	conflicts *conflictIndex
	secondary *secondaryIndex

	// recentlyDeleted maps a tx id to the time it was removed from the
	// pool. It never contains an id also present in byID (invariant 7).
	recentlyDeleted map[chainhash.Hash]int64

	lastSweep int64

	pendingEvents []Event

	observersLock sync.RWMutex
	observers     []Observer
}

// New constructs an empty Pool from cfg.
func New(cfg Config) *Pool {
	p := &Pool{
		cfg:             cfg,
		byID:            make(map[chainhash.Hash]*PoolEntry),
		priority:        heapindex.New(entryLess),
		conflicts:       newConflictIndex(),
		secondary:       newSecondaryIndex(cfg.EnableBlockchainIndices),
		recentlyDeleted: make(map[chainhash.Hash]int64),
	}
	return p
}

// keptByBlockSetLocked returns the snapshot keptByBlock lookup haveSpentInputs
// needs, built from the current primary store. Must be called with mu
// held.
func (p *Pool) keptByBlockSetLocked() map[chainhash.Hash]bool {
	m := make(map[chainhash.Hash]bool, len(p.byID))
	for id, e := range p.byID {
		m[id] = e.KeptByBlock
	}
	return m
}

// insertLocked adds entry to every index. Must be called with mu held
// and with entry.ID not already present in byID.
func (p *Pool) insertLocked(entry *PoolEntry) {
	p.byID[entry.ID] = entry
	p.priority.Push(entry)
	p.conflicts.addTransactionInputs(entry.ID, entry.Tx)
	p.secondary.add(entry)
	delete(p.recentlyDeleted, entry.ID)
}

// removeEntryLocked withdraws entry's contributions from every index and
// records its removal. Must be called with mu held and entry must
// currently be tracked by p.byID.
func (p *Pool) removeEntryLocked(entry *PoolEntry) {
	delete(p.byID, entry.ID)
	p.conflicts.removeTransactionInputs(entry.ID, entry.Tx)
	p.secondary.remove(entry)
	p.removeFromPriorityLocked(entry.ID)
	p.recentlyDeleted[entry.ID] = p.cfg.Clock.Now()
}

// removeFromPriorityLocked removes the entry with the given id from the
// priority queue. The queue has no id-indexed removal of its own, so
// this does a linear scan; pool sizes in this domain (thousands, not
// millions, of pending transactions) make that acceptable, and it keeps
// heapindex.Queue a generic, index-agnostic building block.
func (p *Pool) removeFromPriorityLocked(id chainhash.Hash) {
	found := -1
	p.priority.Do(func(i int, item *PoolEntry) {
		if item.ID == id {
			found = i
		}
	})
	if found >= 0 {
		p.priority.Remove(found)
	}
}

// Count returns the number of transactions currently pooled.
func (p *Pool) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.byID)
}

// View exposes a curated set of already-locked read operations for
// callers that need to group several pool queries into one critical
// section — the Go-idiomatic analogue of the source's obtainGuard/lock/
// unlock trio, without handing out the mutex itself.
type View struct {
	p *Pool
}

// WithLock runs fn with the pool's lock held for its entire duration,
// passing a View restricted to read-only, already-locked operations.
func (p *Pool) WithLock(fn func(*View)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&View{p: p})
}

// HaveTx reports whether id is currently pooled.
func (v *View) HaveTx(id chainhash.Hash) bool {
	_, ok := v.p.byID[id]
	return ok
}

// Get returns the entry for id, if pooled.
func (v *View) Get(id chainhash.Hash) (*PoolEntry, bool) {
	e, ok := v.p.byID[id]
	return e, ok
}

// Count returns the number of pooled transactions.
func (v *View) Count() int {
	return len(v.p.byID)
}

// DebugString returns a human-readable dump of the pool's contents,
// intended for operator diagnostics (RPC/CLI surfaces built on top of
// this package). When short is true, only ids are printed; the long form
// prints one line per entry with id, fee, size, kept-by-block status, and
// receive time.
func (p *Pool) DebugString(short bool) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var b []byte
	for id, e := range p.byID {
		if short {
			b = append(b, id.String()...)
			b = append(b, ' ')
			continue
		}
		b = appendDebugLine(b, e)
	}
	return string(b)
}

func appendDebugLine(b []byte, e *PoolEntry) []byte {
	line := fmt.Sprintf("%s fee=%d size=%d kept=%t recv=%d\n",
		e.ID, e.Fee, e.BlobSize, e.KeptByBlock, e.ReceiveTime)
	return append(b, line...)
}
