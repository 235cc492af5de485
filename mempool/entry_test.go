package mempool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntryGreaterOrdersByFeePerByteThenSizeThenTime(t *testing.T) {
	// (fee,size,time) = (100,100,t0), (200,100,t1>t0), (200,50,t2>t1)
	tx1 := &PoolEntry{ID: testHash(t, 1), Fee: 100, BlobSize: 100, ReceiveTime: 0}
	tx2 := &PoolEntry{ID: testHash(t, 2), Fee: 200, BlobSize: 100, ReceiveTime: 1}
	tx3 := &PoolEntry{ID: testHash(t, 3), Fee: 200, BlobSize: 50, ReceiveTime: 2}

	require.True(t, entryGreater(tx3, tx2), "higher fee/byte wins (4 vs 2 per byte)")
	require.True(t, entryGreater(tx2, tx1), "higher fee/byte wins")
	require.True(t, entryGreater(tx3, tx1))

	// Equal fee/byte (2 per byte): smaller size wins, then earlier time.
	tx4 := &PoolEntry{ID: testHash(t, 4), Fee: 100, BlobSize: 50, ReceiveTime: 3}
	tx5 := &PoolEntry{ID: testHash(t, 5), Fee: 200, BlobSize: 100, ReceiveTime: 0}
	require.True(t, entryGreater(tx4, tx2), "smaller size at equal fee/byte ratio wins")
	require.True(t, entryGreater(tx5, tx2), "earlier receive time wins at equal fee/byte and size")
}

func TestEntryGreaterIsATotalOrder(t *testing.T) {
	entries := []*PoolEntry{
		{ID: testHash(t, 1), Fee: 10, BlobSize: 50, ReceiveTime: 5},
		{ID: testHash(t, 2), Fee: 10, BlobSize: 50, ReceiveTime: 5},
		{ID: testHash(t, 3), Fee: 999999999, BlobSize: 1, ReceiveTime: 1},
		{ID: testHash(t, 4), Fee: 1, BlobSize: 1, ReceiveTime: 1},
	}

	for _, a := range entries {
		for _, b := range entries {
			if a.ID == b.ID {
				require.False(t, entryGreater(a, b))
				continue
			}
			require.NotEqual(t, entryGreater(a, b), entryGreater(b, a),
				"exactly one of a>b, b>a must hold for distinct entries")
		}
	}
}
