package mempool

import "github.com/cryptonote-go/txpool/chainhash"

// HaveTx implements §4.8's have_tx.
func (p *Pool) HaveTx(id chainhash.Hash) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.byID[id]
	return ok
}

// GetTransactions implements §4.8's get_transactions: a snapshot copy of
// every pooled transaction body.
func (p *Pool) GetTransactions() []Tx {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Tx, 0, len(p.byID))
	for _, e := range p.byID {
		out = append(out, e.Tx)
	}
	return out
}

// GetTransaction returns the pooled transaction body for id, if present.
func (p *Pool) GetTransaction(id chainhash.Hash) (Tx, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.byID[id]
	if !ok {
		return nil, false
	}
	return e.Tx, true
}

// GetTransactionsCount implements §4.8's get_transactions_count.
func (p *Pool) GetTransactionsCount() int {
	return p.Count()
}

// GetDifference implements §4.8's get_difference: ids the caller doesn't
// know about yet, and ids the caller should drop because they are no
// longer pooled (either removed recently or never pooled at all).
func (p *Pool) GetDifference(knownIDs []chainhash.Hash) (newIDs, deletedIDs []chainhash.Hash) {
	p.mu.Lock()
	defer p.mu.Unlock()

	known := make(map[chainhash.Hash]struct{}, len(knownIDs))
	for _, id := range knownIDs {
		known[id] = struct{}{}
	}

	for id := range p.byID {
		if _, ok := known[id]; !ok {
			newIDs = append(newIDs, id)
		}
	}

	for _, id := range knownIDs {
		if _, pooled := p.byID[id]; pooled {
			continue
		}
		deletedIDs = append(deletedIDs, id)
	}

	return newIDs, deletedIDs
}

// GetTransactionIDsByPaymentID implements
// §4.8's getTransactionIdsByPaymentId.
func (p *Pool) GetTransactionIDsByPaymentID(pid chainhash.Hash) []chainhash.Hash {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.secondary.idsByPaymentID(pid)
}

// GetTransactionIDsByTimestamp implements
// §4.8's getTransactionIdsByTimestamp.
func (p *Pool) GetTransactionIDsByTimestamp(begin, end int64, limit int) (ids []chainhash.Hash, countWithin uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.secondary.idsByTimestamp(begin, end, limit)
}
