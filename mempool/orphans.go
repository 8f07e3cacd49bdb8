package mempool

// DefaultMaxOrphanTransactions is the default number of orphan transactions
// kept in memory.
const DefaultMaxOrphanTransactions = 100
