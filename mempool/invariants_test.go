package mempool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkP1AndP2 asserts the conflict-closure and no-phantom-index
// invariants against the pool's current state.
func checkP1AndP2(t *testing.T, p *Pool) {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, entry := range p.byID {
		if entry.KeptByBlock {
			continue
		}
		for _, in := range entry.Tx.Inputs() {
			require.Contains(t, p.conflicts.keyImages[in.KeyImage], id, "P1")
		}
	}

	for ki, ids := range p.conflicts.keyImages {
		for id := range ids {
			_, ok := p.byID[id]
			require.True(t, ok, "P2: key image %x references id not in primary store", ki)
		}
	}
}

func TestInvariantsHoldAfterMixedOperations(t *testing.T) {
	clock := &stepClock{now: 0}
	chain := &staticChain{tip: BlockInfo{Height: 10, ID: testHash(t, 0xAA)}}
	pool := newTestPool(t, clock, chain, &acceptAllValidator{})

	for i := byte(1); i <= 10; i++ {
		ki := testHash(t, i+100)
		_, err := pool.AddTx(context.Background(), testHash(t, i), &fakeTx{
			blobSize: 100 + int(i), fee: 1000 + uint64(i), inputs: []TxInput{{KeyImage: ki}},
		}, false)
		require.NoError(t, err)
	}
	checkP1AndP2(t, pool)

	pool.TakeTx(testHash(t, 3))
	checkP1AndP2(t, pool)

	clock.now = 10000
	pool.OnIdle()
	checkP1AndP2(t, pool)
}

func TestP3PriorityComparatorIsConsistent(t *testing.T) {
	entries := []*PoolEntry{
		{ID: testHash(t, 1), Fee: 5, BlobSize: 10, ReceiveTime: 1},
		{ID: testHash(t, 2), Fee: 50, BlobSize: 100, ReceiveTime: 2},
		{ID: testHash(t, 3), Fee: 7, BlobSize: 3, ReceiveTime: 3},
	}

	for _, a := range entries {
		for _, b := range entries {
			for _, c := range entries {
				if entryGreater(a, b) && entryGreater(b, c) {
					require.True(t, entryGreater(a, c), "transitivity")
				}
			}
		}
	}
}

func TestP5IdempotentAdmission(t *testing.T) {
	clock := &stepClock{now: 0}
	chain := &staticChain{tip: BlockInfo{Height: 10, ID: testHash(t, 0xAA)}}
	pool := newTestPool(t, clock, chain, &acceptAllValidator{})

	id := testHash(t, 0x01)
	tx := &fakeTx{blobSize: 100, fee: 1000}

	_, err := pool.AddTx(context.Background(), id, tx, false)
	require.NoError(t, err)

	before := pool.DebugString(false)
	_, err = pool.AddTx(context.Background(), id, tx, false)
	require.NoError(t, err)
	after := pool.DebugString(false)

	require.Equal(t, before, after)
}

func TestP6SweepPreservesInvariants(t *testing.T) {
	clock := &stepClock{now: 0}
	chain := &staticChain{tip: BlockInfo{Height: 10, ID: testHash(t, 0xAA)}}
	pool := newTestPool(t, clock, chain, &acceptAllValidator{})

	for i := byte(1); i <= 5; i++ {
		ki := testHash(t, i+50)
		_, err := pool.AddTx(context.Background(), testHash(t, i), &fakeTx{
			blobSize: 100, fee: 1000, inputs: []TxInput{{KeyImage: ki}},
		}, false)
		require.NoError(t, err)
	}

	clock.now = 999999
	pool.OnIdle()
	checkP1AndP2(t, pool)
	require.Equal(t, 0, pool.GetTransactionsCount())
}
