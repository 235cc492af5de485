package mempool

// sweepExpiredLocked implements §4.7: entries older than the configured
// live time are dropped (a longer threshold applies to keptByBlock
// entries), and recentlyDeleted entries past their retention window are
// pruned. Must be called with p.mu held; queues removal events but does
// not dispatch them.
func (p *Pool) sweepExpiredLocked() {
	now := p.cfg.Clock.Now()

	for id, entry := range p.byID {
		age := now - entry.ReceiveTime
		liveTime := p.cfg.MempoolTxLiveTime
		if entry.KeptByBlock {
			liveTime = p.cfg.MempoolTxFromAltBlockLiveTime
		}
		if age > liveTime {
			p.removeEntryLocked(entry)
			p.queueEvent(TransactionRemovedFromPool, id)
		}
	}

	for id, deletedAt := range p.recentlyDeleted {
		if now-deletedAt > p.cfg.RecentlyDeletedRetention {
			delete(p.recentlyDeleted, id)
		}
	}
}

// maybeSweepExpiredLocked runs the expiration sweep at most once per
// ExpirySweepInterval seconds, mirroring the source's OnceInTimeInterval
// helper around removeExpiredTransactions. Both on_idle and
// on_blockchain_inc share this single rate limit per §4.7. Must be
// called with p.mu held.
func (p *Pool) maybeSweepExpiredLocked() {
	now := p.cfg.Clock.Now()
	if now-p.lastSweep < p.cfg.ExpirySweepInterval {
		return
	}
	p.lastSweep = now
	p.sweepExpiredLocked()
}

// OnIdle runs the rate-limited expiration sweep.
func (p *Pool) OnIdle() {
	func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.maybeSweepExpiredLocked()
	}()
	p.drainEvents()
}
