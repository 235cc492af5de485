package mempool

import (
	"sort"

	"github.com/cryptonote-go/txpool/chainhash"
)

// timestampEntry is one record of the timestamp-ordered index.
type timestampEntry struct {
	receiveTime int64
	id          chainhash.Hash
}

// secondaryIndex maintains the payment-id multimap and the
// timestamp-ordered index in lockstep with the primary store. It is a
// no-op when blockchain indices are disabled, matching the source's
// blockchainIndexesEnabled flag.
type secondaryIndex struct {
	enabled bool

	byPaymentID map[chainhash.Hash]map[chainhash.Hash]struct{}

	// byTimestamp is kept sorted ascending by receiveTime, with ties
	// broken by id for a deterministic order; range queries binary
	// search into it.
	byTimestamp []timestampEntry
}

func newSecondaryIndex(enabled bool) *secondaryIndex {
	return &secondaryIndex{
		enabled:     enabled,
		byPaymentID: make(map[chainhash.Hash]map[chainhash.Hash]struct{}),
	}
}

func (s *secondaryIndex) add(entry *PoolEntry) {
	if !s.enabled {
		return
	}

	if pid, ok := entry.Tx.PaymentID(); ok {
		ids, ok := s.byPaymentID[pid]
		if !ok {
			ids = make(map[chainhash.Hash]struct{})
			s.byPaymentID[pid] = ids
		}
		ids[entry.ID] = struct{}{}
	}

	rec := timestampEntry{receiveTime: entry.ReceiveTime, id: entry.ID}
	i := sort.Search(len(s.byTimestamp), func(i int) bool {
		return !timestampLess(s.byTimestamp[i], rec)
	})
	s.byTimestamp = append(s.byTimestamp, timestampEntry{})
	copy(s.byTimestamp[i+1:], s.byTimestamp[i:])
	s.byTimestamp[i] = rec
}

func (s *secondaryIndex) remove(entry *PoolEntry) {
	if !s.enabled {
		return
	}

	if pid, ok := entry.Tx.PaymentID(); ok {
		if ids, ok := s.byPaymentID[pid]; ok {
			delete(ids, entry.ID)
			if len(ids) == 0 {
				delete(s.byPaymentID, pid)
			}
		}
	}

	for i, rec := range s.byTimestamp {
		if rec.receiveTime == entry.ReceiveTime && rec.id == entry.ID {
			s.byTimestamp = append(s.byTimestamp[:i], s.byTimestamp[i+1:]...)
			break
		}
	}
}

// idsByPaymentID returns the ids of pooled transactions carrying pid in
// their extra field.
func (s *secondaryIndex) idsByPaymentID(pid chainhash.Hash) []chainhash.Hash {
	ids, ok := s.byPaymentID[pid]
	if !ok {
		return nil
	}
	out := make([]chainhash.Hash, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	return out
}

// idsByTimestamp returns ids whose receiveTime falls in [begin, end],
// capped at limit (0 means unlimited), along with the total count of ids
// in range regardless of the cap.
func (s *secondaryIndex) idsByTimestamp(begin, end int64, limit int) (ids []chainhash.Hash, countWithin uint64) {
	lo := sort.Search(len(s.byTimestamp), func(i int) bool {
		return s.byTimestamp[i].receiveTime >= begin
	})

	for i := lo; i < len(s.byTimestamp); i++ {
		rec := s.byTimestamp[i]
		if rec.receiveTime > end {
			break
		}
		countWithin++
		if limit == 0 || len(ids) < limit {
			ids = append(ids, rec.id)
		}
	}
	return ids, countWithin
}

func timestampLess(a, b timestampEntry) bool {
	if a.receiveTime != b.receiveTime {
		return a.receiveTime < b.receiveTime
	}
	return chainhashLess(a.id, b.id)
}

func chainhashLess(a, b chainhash.Hash) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
