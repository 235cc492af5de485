package mempool

import (
	"context"

	"github.com/cryptonote-go/txpool/mempool/persist"
)

// Init implements §6's init: if a snapshot exists in cfg.DataDir, it is
// loaded and every entry is reinserted via AddTx with its keptByBlock
// flag preserved. A snapshot that fails to parse is discarded with a
// warning rather than propagated, per §7's corrupt_state recovery rule.
func (p *Pool) Init(ctx context.Context) error {
	records, deleted, err := persist.Load(p.cfg.DataDir)
	if err != nil {
		log.Warnf("mempool: discarding unreadable snapshot in %s: %v", p.cfg.DataDir, err)
		return nil
	}
	if records == nil && deleted == nil {
		return nil
	}

	for _, rec := range records {
		tx, err := p.cfg.Decoder.DecodeTx(rec.TxBlob)
		if err != nil {
			log.Warnf("mempool: discarding unreadable snapshot entry %s: %v", rec.ID, err)
			continue
		}
		if _, err := p.AddTx(ctx, rec.ID, tx, rec.KeptByBlock); err != nil {
			log.Warnf("mempool: snapshot entry %s failed to re-admit: %v", rec.ID, err)
		}
	}

	p.mu.Lock()
	for _, d := range deleted {
		p.recentlyDeleted[d.ID] = d.Time
	}
	p.mu.Unlock()

	return nil
}

// Deinit implements §6's deinit: the current pool state is written
// atomically to cfg.DataDir. A write failure is surfaced to the caller
// as ErrIOError, per §7.
func (p *Pool) Deinit() error {
	p.mu.Lock()
	records := make([]persist.Record, 0, len(p.byID))
	for _, e := range p.byID {
		blob, err := e.Tx.Marshal()
		if err != nil {
			p.mu.Unlock()
			return poolRuleError(ErrIOError, "marshaling pooled transaction: "+err.Error())
		}
		records = append(records, persist.Record{
			ID:               e.ID,
			BlobSize:         e.BlobSize,
			Fee:              e.Fee,
			KeptByBlock:      e.KeptByBlock,
			ReceiveTime:      e.ReceiveTime,
			MaxUsedHeight:    e.MaxUsedBlock.Height,
			MaxUsedHash:      e.MaxUsedBlock.ID,
			LastFailedHeight: e.LastFailedBlock.Height,
			LastFailedHash:   e.LastFailedBlock.ID,
			TxBlob:           blob,
		})
	}

	deleted := make([]persist.DeletedRecord, 0, len(p.recentlyDeleted))
	for id, t := range p.recentlyDeleted {
		deleted = append(deleted, persist.DeletedRecord{ID: id, Time: t})
	}
	p.mu.Unlock()

	if err := persist.SaveAtomic(p.cfg.DataDir, records, deleted); err != nil {
		return poolRuleError(ErrIOError, "writing pool snapshot: "+err.Error())
	}
	return nil
}
