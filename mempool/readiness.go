package mempool

import (
	"context"

	"github.com/cryptonote-go/txpool/chainhash"
)

// isReadyToGoLocked implements §4.4: an entry is ready for block
// inclusion iff the validator reports success at the current tip, its
// MaxUsedBlock height does not exceed the chain's current height, and
// the block at that height still has the hash the entry expects. The
// check refreshes entry.MaxUsedBlock/LastFailedBlock as a side effect,
// caching the validator's latest verdict; it never touches the conflict
// or priority indices. Must be called with p.mu held.
func (p *Pool) isReadyToGoLocked(ctx context.Context, entry *PoolEntry, tip BlockInfo) bool {
	ok, maxUsedBlock, failedBlock := p.cfg.Validator.CheckTransactionInputs(ctx, entry.Tx, tip)
	entry.MaxUsedBlock = maxUsedBlock
	entry.LastFailedBlock = failedBlock

	if !ok {
		return false
	}
	if entry.MaxUsedBlock.Height > tip.Height {
		return false
	}

	expected, known := p.cfg.Chain.HashAtHeight(entry.MaxUsedBlock.Height)
	if !known {
		return false
	}
	return expected == entry.MaxUsedBlock.ID
}

// IsTransactionReadyToGo reports whether id's pooled transaction is
// currently eligible for block inclusion, per §4.4. It returns false if
// id is not pooled.
func (p *Pool) IsTransactionReadyToGo(ctx context.Context, id chainhash.Hash) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.byID[id]
	if !ok {
		return false
	}
	return p.isReadyToGoLocked(ctx, entry, p.cfg.Chain.Tip())
}
