package mempool

import "github.com/cryptonote-go/txpool/chainhash"

// TakeTx removes id from the pool and returns its transaction body, blob
// size, and fee. ok is false if id was not pooled, in which case the
// other return values are zero.
func (p *Pool) TakeTx(id chainhash.Hash) (tx Tx, blobSize uint64, fee uint64, ok bool) {
	entry, ok := func() (*PoolEntry, bool) {
		p.mu.Lock()
		defer p.mu.Unlock()
		e, ok := p.byID[id]
		if !ok {
			return nil, false
		}
		p.removeEntryLocked(e)
		p.queueEvent(TransactionRemovedFromPool, id)
		return e, true
	}()
	p.drainEvents()

	if !ok {
		return nil, 0, 0, false
	}
	return entry.Tx, entry.BlobSize, entry.Fee, true
}

// removeByIDLocked removes id from the pool if present, returning the
// removed entry. Used internally by OnBlockchainInc, which queues the
// removal event itself as part of a larger batch.
func (p *Pool) removeByIDLocked(id chainhash.Hash) (*PoolEntry, bool) {
	e, ok := p.byID[id]
	if !ok {
		return nil, false
	}
	p.removeEntryLocked(e)
	return e, true
}
