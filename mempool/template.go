package mempool

import (
	"context"

	"github.com/cryptonote-go/txpool/chainhash"
)

// BlockTemplate is the result of FillBlockTemplate: the ordered list of
// transaction ids selected for the next block, along with their
// accumulated size and fee. Building an actual block header from this is
// the caller's (block assembler's) concern; the pool only selects.
type BlockTemplate struct {
	TxIDs     []chainhash.Hash
	TotalSize uint64
	TotalFee  uint64
}

// FillBlockTemplate implements §4.5: it walks the priority index highest
// first and greedily selects transactions for the next block, skipping
// any that would overflow the size budget, aren't ready, would violate
// the currency's reward rules, or conflict with an already-selected
// entry. The whole pass holds the pool lock so the selection reflects one
// consistent snapshot.
func (p *Pool) FillBlockTemplate(
	ctx context.Context,
	medianSize uint64,
	maxCumulativeSize uint64,
	alreadyGeneratedCoins uint64,
	height uint64,
) BlockTemplate {
	p.mu.Lock()
	defer p.mu.Unlock()

	tip := p.cfg.Chain.Tip()

	selected := make([]*PoolEntry, 0)
	selectedConflicts := newConflictIndex()

	var totalSize, totalFee uint64

	// Pop from the real priority queue into a scratch slice so the
	// pool's own index is left untouched by this read-only pass, then
	// push everything back before returning.
	var popped []*PoolEntry
	for {
		entry, ok := p.priority.Pop()
		if !ok {
			break
		}
		popped = append(popped, entry)

		if totalSize+entry.BlobSize > maxCumulativeSize {
			continue
		}
		if !p.isReadyToGoLocked(ctx, entry, tip) {
			continue
		}
		if p.cfg.Reward != nil && !p.cfg.Reward.Fits(medianSize, alreadyGeneratedCoins, totalSize+entry.BlobSize, totalFee+entry.Fee) {
			continue
		}
		if selectedConflicts.haveSpentInputs(entry.Tx, nil) {
			continue
		}

		selectedConflicts.addTransactionInputs(entry.ID, entry.Tx)
		selected = append(selected, entry)
		totalSize += entry.BlobSize
		totalFee += entry.Fee
	}

	for _, e := range popped {
		p.priority.Push(e)
	}

	ids := make([]chainhash.Hash, len(selected))
	for i, e := range selected {
		ids[i] = e.ID
	}

	return BlockTemplate{TxIDs: ids, TotalSize: totalSize, TotalFee: totalFee}
}
