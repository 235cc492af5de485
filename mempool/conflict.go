package mempool

import "github.com/cryptonote-go/txpool/chainhash"

// conflictIndex tracks the two resource domains a pooled transaction can
// collide over: key images (nullifier-like double-spend tokens) and
// global output references. Both are owned exclusively by the pool and
// are always mutated under the pool's lock.
type conflictIndex struct {
	// keyImages maps a key image to the set of pool tx ids whose inputs
	// reference it. A keptByBlock id and a non-keptByBlock id may
	// legitimately coexist in the same set pending reorg resolution.
	keyImages map[chainhash.Hash]map[chainhash.Hash]struct{}

	// spentOutputs maps a global output reference to the set of pool tx
	// ids whose inputs touch it. Plain consensus operation only ever
	// holds one non-keptByBlock reference per output (invariant 5); the
	// set shape exists so that keptByBlock entries, which are exempt
	// from that invariant, can coexist with one without corrupting the
	// other's reservation on removal.
	spentOutputs map[GlobalOutputRef]map[chainhash.Hash]struct{}
}

func newConflictIndex() *conflictIndex {
	return &conflictIndex{
		keyImages:    make(map[chainhash.Hash]map[chainhash.Hash]struct{}),
		spentOutputs: make(map[GlobalOutputRef]map[chainhash.Hash]struct{}),
	}
}

// haveSpentInputs reports whether tx conflicts with the pool: any key
// image it spends is already referenced by a non-keptByBlock entry, or
// any global output it touches is already in the spent-outputs set at
// all — the spent-outputs reservation is checked unconditionally,
// mirroring the source's plain (non-id-tracking) output set, which
// cannot distinguish a keptByBlock reservation from any other.
func (c *conflictIndex) haveSpentInputs(tx Tx, keptByBlock map[chainhash.Hash]bool) bool {
	for _, in := range tx.Inputs() {
		if ids, ok := c.keyImages[in.KeyImage]; ok {
			for id := range ids {
				if !keptByBlock[id] {
					return true
				}
			}
		}
		for _, out := range in.Outputs {
			if ids, ok := c.spentOutputs[out]; ok && len(ids) > 0 {
				return true
			}
		}
	}
	return false
}

// addTransactionInputs records every resource id's transaction consumes.
// keptByBlock entries are added additively even when they collide with an
// existing reservation; that is the caller's business (§4.1 step 3), not
// this method's — it only ever adds.
func (c *conflictIndex) addTransactionInputs(id chainhash.Hash, tx Tx) {
	for _, in := range tx.Inputs() {
		ids, ok := c.keyImages[in.KeyImage]
		if !ok {
			ids = make(map[chainhash.Hash]struct{})
			c.keyImages[in.KeyImage] = ids
		}
		ids[id] = struct{}{}

		for _, out := range in.Outputs {
			outIDs, ok := c.spentOutputs[out]
			if !ok {
				outIDs = make(map[chainhash.Hash]struct{})
				c.spentOutputs[out] = outIDs
			}
			outIDs[id] = struct{}{}
		}
	}
}

// removeTransactionInputs withdraws id's reservations. Empty sets are
// erased so membership in the index implies at least one live reference,
// keeping invariant P2 tight.
func (c *conflictIndex) removeTransactionInputs(id chainhash.Hash, tx Tx) {
	for _, in := range tx.Inputs() {
		if ids, ok := c.keyImages[in.KeyImage]; ok {
			delete(ids, id)
			if len(ids) == 0 {
				delete(c.keyImages, in.KeyImage)
			}
		}

		for _, out := range in.Outputs {
			if ids, ok := c.spentOutputs[out]; ok {
				delete(ids, id)
				if len(ids) == 0 {
					delete(c.spentOutputs, out)
				}
			}
		}
	}
}
