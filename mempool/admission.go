package mempool

import (
	"context"

	"github.com/cryptonote-go/txpool/chainhash"
)

// AdmissionResult is the outcome of an AddTx call.
type AdmissionResult int

const (
	// Added indicates the transaction was newly admitted.
	Added AdmissionResult = iota

	// AlreadyPresent indicates the transaction id was already pooled;
	// this is idempotent success, not an error.
	AlreadyPresent
)

// AddTx attempts to admit tx into the pool under id with the given
// keptByBlock flag. The blob size and fee are read from tx, and the chain
// tip passed to the validator is read from the Chain port.
//
// On success (Added or AlreadyPresent), err is nil. Any rejection is
// returned as a PoolRuleError with one of ErrFeeTooLow, ErrInvalidInputs,
// or ErrDoubleSpend.
func (p *Pool) AddTx(ctx context.Context, id chainhash.Hash, tx Tx, keptByBlock bool) (AdmissionResult, error) {
	result, err := func() (AdmissionResult, error) {
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.addTxLocked(ctx, id, tx, keptByBlock)
	}()
	p.drainEvents()
	return result, err
}

// addTxLocked implements §4.1's add_tx contract. Must be called with
// p.mu held; queues but does not dispatch the deposit event.
func (p *Pool) addTxLocked(ctx context.Context, id chainhash.Hash, tx Tx, keptByBlock bool) (AdmissionResult, error) {
	blobSize := uint64(tx.BlobSize())
	fee := tx.Fee()

	// Step 4 (checked early; an id already pooled short-circuits
	// everything else — no mutation, no error).
	if _, ok := p.byID[id]; ok {
		return AlreadyPresent, nil
	}

	// Step 1: fee floor, bypassed for keptByBlock.
	if !keptByBlock && fee < p.cfg.MinimumFee {
		return 0, poolRuleError(ErrFeeTooLow,
			"transaction fee is below the minimum required fee")
	}

	// Step 2: validator port.
	tip := p.cfg.Chain.Tip()
	ok, maxUsedBlock, failedBlock := p.cfg.Validator.CheckTransactionInputs(ctx, tx, tip)
	if !ok {
		if !keptByBlock {
			return 0, poolRuleError(ErrInvalidInputs,
				"transaction inputs failed validation")
		}
		// keptByBlock still admits; failedBlock is recorded below.
	}

	// Step 3: conflict check.
	if p.conflicts.haveSpentInputs(tx, p.keptByBlockSetLocked()) && !keptByBlock {
		return 0, poolRuleError(ErrDoubleSpend,
			"transaction conflicts with a pooled transaction's key image or output")
	}

	entry := &PoolEntry{
		ID:              id,
		Tx:              tx,
		BlobSize:        blobSize,
		Fee:             fee,
		KeptByBlock:     keptByBlock,
		ReceiveTime:     p.cfg.Clock.Now(),
		MaxUsedBlock:    maxUsedBlock,
		LastFailedBlock: failedBlock,
	}

	// Steps 5-6.
	p.insertLocked(entry)
	p.queueEvent(TransactionDepositedIntoPool, id)

	return Added, nil
}
