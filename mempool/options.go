package mempool

import (
	"fmt"
	"io"
)

// Option describes a configuration option read by Load.
type Option struct {
	Key         string
	Default     interface{}
	Description string
}

var options = []Option{
	{KeyMaxMempool, DefaultMaxMempoolSize, "Maximal size of the transaction memory pool in megabytes."},
	{KeyMempoolExpiry, DefaultMempoolExpiry, "Maximum number of hours to keep transactions in the mempool."},
	{KeyRelayPriority, DefaultRelaypriority, "Require high priority for relaying free or low-fee transactions."},
	{KeyLimitFreeRelay, DefaultLimitfreerelay, "Rate limit free transactions to <n>*1000 bytes per minute."},
	{KeyLimitAncestors, DefaultAncestorLimit, "Do not accept transactions if number of in-mempool ancestors is <n> or more."},
	{KeyLimitAncestorSize, DefaultAncestorSizeLimit, "Do not accept transactions whose size with all in-mempool ancestors exceeds <n> kilobytes."},
	{KeyLimitDescendants, DefaultDescendantLimit, "Do not accept transactions if any ancestor would have <n> or more in-mempool descendants."},
	{KeyLimitDescendantSize, DefaultDescendantSizeLimit, "Do not accept transactions if any ancestor would have more than <n> kilobytes of in-mempool descendants."},
	{KeyEnableReplacement, DefaultEnableReplacement, "Enable transaction replacement in the memory pool."},
	{KeyMaxOrphanTx, DefaultMaxOrphanTransactions, "Keep at most <n> unconnectable transactions in memory."},
	{KeyBlocksOnly, DefaultBlocksOnly, "Only relay and accept confirmed blocks, not unconfirmed transactions."},
	{KeyWhiteListRelay, DefaultWhiteListRelay, "Accept relayed transactions received from whitelisted peers even when not relaying transactions."},
}

// Options returns the options read by Load, in resolution order.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// PrintHelp writes a usage line for every mempool option to w.
func PrintHelp(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Mempool settings:"); err != nil {
		return err
	}
	for _, o := range options {
		arg := fmt.Sprintf("-%s=<number>", o.Key)
		def := fmt.Sprint(o.Default)
		if b, ok := o.Default.(bool); ok {
			arg = fmt.Sprintf("-%s=<0 or 1>", o.Key)
			def = boolDigit(b)
		}
		if _, err := fmt.Fprintf(w, "  %-34s %s Default: %s.\n", arg, o.Description, def); err != nil {
			return err
		}
	}
	return nil
}

// DefaultSettings returns settings holding the compiled-in defaults. They are
// not bound to any node.
func DefaultSettings() *Settings {
	return &Settings{
		MaxMempool:          DefaultMaxMempoolSize,
		MempoolExpiry:       DefaultMempoolExpiry,
		RelayPriority:       DefaultRelaypriority,
		LimitFreeRelay:      DefaultLimitfreerelay,
		LimitAncestors:      DefaultAncestorLimit,
		LimitAncestorSize:   DefaultAncestorSizeLimit,
		LimitDescendants:    DefaultDescendantLimit,
		LimitDescendantSize: DefaultDescendantSizeLimit,
		EnableReplacement:   DefaultEnableReplacement,
		MaxOrphanTx:         DefaultMaxOrphanTransactions,
		RelayTxes:           !DefaultBlocksOnly,
		WhiteListRelay:      DefaultWhiteListRelay,
	}
}

// Value returns the resolved value behind an option key. For "blocksonly"
// that is the negation of RelayTxes.
func (s *Settings) Value(key string) (interface{}, bool) {
	switch key {
	case KeyMaxMempool:
		return s.MaxMempool, true
	case KeyMempoolExpiry:
		return s.MempoolExpiry, true
	case KeyRelayPriority:
		return s.RelayPriority, true
	case KeyLimitFreeRelay:
		return s.LimitFreeRelay, true
	case KeyLimitAncestors:
		return s.LimitAncestors, true
	case KeyLimitAncestorSize:
		return s.LimitAncestorSize, true
	case KeyLimitDescendants:
		return s.LimitDescendants, true
	case KeyLimitDescendantSize:
		return s.LimitDescendantSize, true
	case KeyEnableReplacement:
		return s.EnableReplacement, true
	case KeyMaxOrphanTx:
		return s.MaxOrphanTx, true
	case KeyBlocksOnly:
		return !s.RelayTxes, true
	case KeyWhiteListRelay:
		return s.WhiteListRelay, true
	}
	return nil, false
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
