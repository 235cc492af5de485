package mempool

import (
	"context"

	"github.com/cryptonote-go/txpool/chainhash"
)

// OnBlockchainInc implements §4.6's chain-advance hook: it runs the
// expiration sweep and then drops every confirmed transaction id the
// caller supplies (the ledger, not this package, knows which pool
// members just got confirmed), pushing each into recentlyDeleted.
func (p *Pool) OnBlockchainInc(newHeight uint64, topHash chainhash.Hash, confirmedIDs []chainhash.Hash) {
	func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.maybeSweepExpiredLocked()

		for _, id := range confirmedIDs {
			if _, ok := p.removeByIDLocked(id); ok {
				p.queueEvent(TransactionRemovedFromPool, id)
			}
		}
	}()
	p.drainEvents()
}

// OnBlockchainDec implements §4.6's chain-rollback hook: every
// transaction that was in a now-disconnected block is re-admitted with
// keptByBlock=true, bypassing the fee floor and tolerating conflicts,
// exactly as add_tx specifies for that flag. This may temporarily
// violate invariant 5 until later confirmations resolve the conflict.
func (p *Pool) OnBlockchainDec(ctx context.Context, newHeight uint64, topHash chainhash.Hash, disconnected []DisconnectedTx) {
	for _, d := range disconnected {
		// AddTx is self-locking and dispatches its own event, so this
		// runs the hook's re-admissions one at a time rather than as one
		// combined critical section — each re-admission is independently
		// atomic, which is sufficient here since admission order among
		// the disconnected set carries no ordering guarantee of its own.
		_, _ = p.AddTx(ctx, d.ID, d.Tx, true)
	}
}

// DisconnectedTx pairs a transaction id with its body for re-admission
// via OnBlockchainDec.
type DisconnectedTx struct {
	ID chainhash.Hash
	Tx Tx
}
