package mempool

import (
	"context"
	"sync"
	"testing"

	"github.com/cryptonote-go/txpool/chainhash"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddAndTakeIsRaceFree drives AddTx, TakeTx, and OnIdle from
// many goroutines at once while an observer is subscribed, then
// unsubscribes it. It is meant to be
// run with -race: §1 names concurrent mutation of the priority ordering
// as the defining hard part of this component, and §5 describes exactly
// this multi-producer access pattern (P2P handlers, RPC, the block
// assembler, and the chain listener all calling in from separate
// goroutines) as the pool's normal operating mode.
func TestConcurrentAddAndTakeIsRaceFree(t *testing.T) {
	clock := &stepClock{now: 1000}
	chain := &staticChain{tip: BlockInfo{Height: 10, ID: testHash(t, 0xAA)}}
	pool := newTestPool(t, clock, chain, &acceptAllValidator{})

	var received int32
	var mu sync.Mutex
	obs := ObserverFunc(func(Event) {
		mu.Lock()
		received++
		mu.Unlock()
	})
	pool.Subscribe(obs)

	const perGoroutine = 50
	const goroutines = 8

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				var id chainhash.Hash
				id[0] = byte(g)
				id[1] = byte(i)
				_, _ = pool.AddTx(context.Background(), id, &fakeTx{blobSize: 100, fee: 1000}, false)
			}
		}(g)
	}

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				var id chainhash.Hash
				id[0] = byte(g)
				id[1] = byte(i)
				pool.TakeTx(id)
			}
		}(g)
	}

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.OnIdle()
		}()
	}

	wg.Wait()
	pool.Unsubscribe(obs)

	require.NotPanics(t, func() { pool.DebugString(false) })
	checkP1AndP2(t, pool)
}
