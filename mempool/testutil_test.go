package mempool

import (
	"context"
	"testing"

	"github.com/cryptonote-go/txpool/chainhash"
)

// stepClock is a deterministic Clock a test can advance explicitly.
type stepClock struct {
	now int64
}

func (c *stepClock) Now() int64 { return c.now }

// acceptAllValidator reports every transaction valid at the given tip,
// except a fakeTx whose payment id is a key of rejectIDs, and never sets a
// maxUsedBlock height above the tip.
type acceptAllValidator struct {
	rejectIDs map[chainhash.Hash]bool
}

func (v *acceptAllValidator) CheckTransactionInputs(_ context.Context, tx Tx, tip BlockInfo) (bool, BlockInfo, BlockInfo) {
	if v.rejectIDs != nil {
		if ft, ok := tx.(*fakeTx); ok {
			if v.rejectIDs[ft.paymentID] {
				return false, NoBlock, tip
			}
		}
	}
	return true, BlockInfo{Height: tip.Height, ID: tip.ID}, NoBlock
}

// staticChain is a fixed Chain implementation for tests.
type staticChain struct {
	tip    BlockInfo
	hashes map[uint64]chainhash.Hash
}

func (c *staticChain) Tip() BlockInfo { return c.tip }

func (c *staticChain) HashAtHeight(h uint64) (chainhash.Hash, bool) {
	if hash, ok := c.hashes[h]; ok {
		return hash, true
	}
	if h == c.tip.Height {
		return c.tip.ID, true
	}
	return chainhash.Hash{}, false
}

func testHash(t *testing.T, b byte) chainhash.Hash {
	t.Helper()
	var h chainhash.Hash
	h[0] = b
	return h
}

func newTestPool(t *testing.T, clock *stepClock, chain *staticChain, validator Validator) *Pool {
	t.Helper()
	cfg := Config{
		Clock:                         clock,
		Validator:                     validator,
		Chain:                         chain,
		MinimumFee:                    100,
		MempoolTxLiveTime:             3600,
		MempoolTxFromAltBlockLiveTime: 7200,
		RecentlyDeletedRetention:      86400,
		ExpirySweepInterval:           0,
		EnableBlockchainIndices:       true,
	}
	return New(cfg)
}
