package mempool

// Policy defaults of the mempool validator. Units follow the option they
// back: megabytes, hours, kilobytes per minute, counts and kilobytes.
const (
	// DefaultMaxMempoolSize is the default maximum size of the pool, in MB.
	DefaultMaxMempoolSize = 300

	// DefaultMempoolExpiry is the default number of hours a transaction may
	// stay in the pool.
	DefaultMempoolExpiry = 336

	// DefaultRelaypriority requires high priority for relaying free or
	// low-fee transactions.
	DefaultRelaypriority = true

	// DefaultLimitfreerelay is the default rate, in kB/minute, at which free
	// transactions are accepted.
	DefaultLimitfreerelay = 0

	// Ancestor and descendant package limits. Counts and sizes include the
	// transaction itself; sizes are in kB.
	DefaultAncestorLimit       = 25
	DefaultAncestorSizeLimit   = 101
	DefaultDescendantLimit     = 25
	DefaultDescendantSizeLimit = 101

	// DefaultEnableReplacement controls replace-by-fee.
	DefaultEnableReplacement = false
)
