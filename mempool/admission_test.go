package mempool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddTxAndTakeTx(t *testing.T) {
	clock := &stepClock{now: 1000}
	chain := &staticChain{tip: BlockInfo{Height: 10, ID: testHash(t, 0xAA)}}
	pool := newTestPool(t, clock, chain, &acceptAllValidator{})

	var events []Event
	pool.Subscribe(ObserverFunc(func(e Event) { events = append(events, e) }))

	id := testHash(t, 0x01)
	tx := &fakeTx{blobSize: 200, fee: 1000}

	res, err := pool.AddTx(context.Background(), id, tx, false)
	require.NoError(t, err)
	require.Equal(t, Added, res)
	require.Equal(t, 1, pool.GetTransactionsCount())

	gotTx, size, fee, ok := pool.TakeTx(id)
	require.True(t, ok)
	require.Equal(t, tx, gotTx)
	require.EqualValues(t, 200, size)
	require.EqualValues(t, 1000, fee)
	require.Equal(t, 0, pool.GetTransactionsCount())

	require.Len(t, events, 2)
	require.Equal(t, TransactionDepositedIntoPool, events[0].Type)
	require.Equal(t, id, events[0].ID)
	require.Equal(t, TransactionRemovedFromPool, events[1].Type)
	require.Equal(t, id, events[1].ID)
}

func TestAddTxFeeTooLow(t *testing.T) {
	clock := &stepClock{now: 1000}
	chain := &staticChain{tip: BlockInfo{Height: 10, ID: testHash(t, 0xAA)}}
	pool := newTestPool(t, clock, chain, &acceptAllValidator{})

	id := testHash(t, 0x01)
	tx := &fakeTx{blobSize: 200, fee: 1}

	_, err := pool.AddTx(context.Background(), id, tx, false)
	require.True(t, IsErrorCode(err, ErrFeeTooLow))
	require.Equal(t, 0, pool.GetTransactionsCount())
}

func TestAddTxFeeTooLowBypassedWhenKeptByBlock(t *testing.T) {
	clock := &stepClock{now: 1000}
	chain := &staticChain{tip: BlockInfo{Height: 10, ID: testHash(t, 0xAA)}}
	pool := newTestPool(t, clock, chain, &acceptAllValidator{})

	id := testHash(t, 0x01)
	tx := &fakeTx{blobSize: 200, fee: 1}

	res, err := pool.AddTx(context.Background(), id, tx, true)
	require.NoError(t, err)
	require.Equal(t, Added, res)
}

func TestAddTxAlreadyPresentIsIdempotent(t *testing.T) {
	clock := &stepClock{now: 1000}
	chain := &staticChain{tip: BlockInfo{Height: 10, ID: testHash(t, 0xAA)}}
	pool := newTestPool(t, clock, chain, &acceptAllValidator{})

	id := testHash(t, 0x01)
	tx := &fakeTx{blobSize: 200, fee: 1000}

	_, err := pool.AddTx(context.Background(), id, tx, false)
	require.NoError(t, err)

	res, err := pool.AddTx(context.Background(), id, tx, false)
	require.NoError(t, err)
	require.Equal(t, AlreadyPresent, res)
	require.Equal(t, 1, pool.GetTransactionsCount())
}

func TestAddTxDoubleSpendRejected(t *testing.T) {
	clock := &stepClock{now: 1000}
	chain := &staticChain{tip: BlockInfo{Height: 10, ID: testHash(t, 0xAA)}}
	pool := newTestPool(t, clock, chain, &acceptAllValidator{})

	ki := testHash(t, 0x77)
	txA := &fakeTx{blobSize: 200, fee: 1000, inputs: []TxInput{{KeyImage: ki}}}
	txB := &fakeTx{blobSize: 200, fee: 1000, inputs: []TxInput{{KeyImage: ki}}}

	_, err := pool.AddTx(context.Background(), testHash(t, 0x01), txA, false)
	require.NoError(t, err)

	_, err = pool.AddTx(context.Background(), testHash(t, 0x02), txB, false)
	require.True(t, IsErrorCode(err, ErrDoubleSpend))
	require.Equal(t, 1, pool.GetTransactionsCount())
}

func TestAddTxKeptByBlockAdmitsDespiteConflict(t *testing.T) {
	clock := &stepClock{now: 1000}
	chain := &staticChain{tip: BlockInfo{Height: 10, ID: testHash(t, 0xAA)}}
	pool := newTestPool(t, clock, chain, &acceptAllValidator{})

	ki := testHash(t, 0x77)
	txA := &fakeTx{blobSize: 200, fee: 1000, inputs: []TxInput{{KeyImage: ki}}}
	txB := &fakeTx{blobSize: 200, fee: 1000, inputs: []TxInput{{KeyImage: ki}}}

	_, err := pool.AddTx(context.Background(), testHash(t, 0x01), txA, false)
	require.NoError(t, err)

	res, err := pool.AddTx(context.Background(), testHash(t, 0x02), txB, true)
	require.NoError(t, err)
	require.Equal(t, Added, res)
	require.Equal(t, 2, pool.GetTransactionsCount())
}
