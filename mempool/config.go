package mempool

// Config bundles everything the pool is constructed with: its borrowed
// collaborators and the currency parameters that govern admission and
// expiration. The caller owns and outlives every field here; the pool
// never mutates them.
type Config struct {
	// Clock supplies wall-clock readings for receive timestamps and
	// expiration sweeps.
	Clock Clock

	// Validator reports structural validity of transaction inputs.
	Validator Validator

	// Chain reports the current tip and block ids by height.
	Chain Chain

	// Reward reports whether a block candidate still satisfies the
	// currency's reward rules. If nil, FillBlockTemplate skips the reward
	// check.
	Reward RewardPolicy

	// Decoder reconstructs a Tx from its persisted bytes. Required only
	// if persistence is used.
	Decoder TxDecoder

	// MinimumFee is the minimum fee (in atomic units) a non-keptByBlock
	// transaction must carry to be admitted.
	MinimumFee uint64

	// MempoolTxLiveTime is the maximum age, in seconds, a
	// non-keptByBlock entry may reach before the expiration sweep drops
	// it.
	MempoolTxLiveTime int64

	// MempoolTxFromAltBlockLiveTime is the maximum age, in seconds, a
	// keptByBlock entry may reach before the expiration sweep drops it.
	MempoolTxFromAltBlockLiveTime int64

	// RecentlyDeletedRetention is how long, in seconds, an id stays in
	// recentlyDeletedTransactions before it is pruned.
	RecentlyDeletedRetention int64

	// ExpirySweepInterval is the minimum number of seconds between two
	// rate-limited expiration sweeps triggered by OnIdle or
	// OnBlockchainInc (the two share one rate limit).
	ExpirySweepInterval int64

	// EnableBlockchainIndices turns on the payment-id and
	// timestamp-ordered secondary indices.
	EnableBlockchainIndices bool

	// DataDir is the directory that holds the persisted pool snapshot
	// file. Required only if persistence is used.
	DataDir string
}
