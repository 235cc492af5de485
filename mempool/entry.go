package mempool

import (
	"bytes"
	"math/bits"

	"github.com/cryptonote-go/txpool/chainhash"
)

// PoolEntry is a single transaction held by the pool, along with the
// bookkeeping the pool needs to rank, expire, and re-validate it.
type PoolEntry struct {
	ID          chainhash.Hash
	Tx          Tx
	BlobSize    uint64
	Fee         uint64
	KeptByBlock bool
	ReceiveTime int64

	// MaxUsedBlock is the highest block height referenced by any of the
	// transaction's mixins, as last reported by the validator.
	MaxUsedBlock BlockInfo

	// LastFailedBlock is the block at which validation most recently
	// failed for this entry, or NoBlock if it has never failed.
	LastFailedBlock BlockInfo
}

// entryGreater reports whether a outranks b under the pool's priority
// ordering: higher fee-per-byte first, then smaller blob size, then
// earlier receipt time, with a final bytewise-id tiebreak to make the
// order total.
func entryGreater(a, b *PoolEntry) bool {
	aHi, aLo := bits.Mul64(a.Fee, b.BlobSize)
	bHi, bLo := bits.Mul64(b.Fee, a.BlobSize)

	switch {
	case aHi != bHi:
		return aHi > bHi
	case aLo != bLo:
		return aLo > bLo
	}

	if a.BlobSize != b.BlobSize {
		return a.BlobSize < b.BlobSize
	}
	if a.ReceiveTime != b.ReceiveTime {
		return a.ReceiveTime < b.ReceiveTime
	}
	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}

// entryLess is the inverse of entryGreater, used directly as the
// less-than relation the priority heap is built on: the heap pops the
// element for which less(other, top) never holds, i.e. the one that
// outranks every other element under entryGreater.
func entryLess(a, b *PoolEntry) bool {
	return entryGreater(b, a)
}
