package mempool

import (
	"github.com/tendermint/txpoolconfig/config"
)

const (
	// DefaultBlocksOnly is the default of the "blocksonly" option.
	DefaultBlocksOnly = false

	// DefaultWhiteListRelay is the default of the "whitelistrelay" option.
	DefaultWhiteListRelay = true
)

// Option keys understood by Load.
const (
	KeyMaxMempool          = "maxmempool"
	KeyMempoolExpiry       = "mempoolexpiry"
	KeyRelayPriority       = "relaypriority"
	KeyLimitFreeRelay      = "limitfreerelay"
	KeyLimitAncestors      = "limitancestorcount"
	KeyLimitAncestorSize   = "limitancestorsize"
	KeyLimitDescendants    = "limitdescendantcount"
	KeyLimitDescendantSize = "limitdescendantsize"
	KeyEnableReplacement   = "mempoolreplacement"
	KeyMaxOrphanTx         = "maxorphantx"
	KeyBlocksOnly          = "blocksonly"
	KeyWhiteListRelay      = "whitelistrelay"
)

// OverrideFunc adjusts settings after they have been loaded. It is called
// once at the end of every Load.
type OverrideFunc func(*Settings)

// Settings holds the mempool configuration of a node.
//
// Settings are populated by Load during startup and only read afterwards.
// Load must complete before any other goroutine reads the fields.
type Settings struct {
	// Maximal size of the transaction memory pool in megabytes.
	MaxMempool int `json:"max_mempool"`

	// Maximum number of hours to keep transactions in the mempool.
	MempoolExpiry int `json:"mempool_expiry"`

	// Require high priority for relaying free or low-fee transactions.
	RelayPriority bool `json:"relay_priority"`

	// Number of kB/minute at which free transactions (with enough priority)
	// will be accepted.
	LimitFreeRelay int `json:"limit_free_relay"`

	// Maximum number of ancestors of a transaction in mempool (including itself).
	LimitAncestors int `json:"limit_ancestors"`

	// Maximal size in kB of ancestors of a transaction in mempool (including itself).
	LimitAncestorSize int `json:"limit_ancestor_size"`

	// Maximum number of descendants any ancestor can have in mempool (including itself).
	LimitDescendants int `json:"limit_descendants"`

	// Maximum size in kB of descendants any ancestor can have in mempool (including itself).
	LimitDescendantSize int `json:"limit_descendant_size"`

	// Enable transaction replacement in the memory pool.
	EnableReplacement bool `json:"enable_replacement"`

	// Maximum number of orphan transactions kept in memory.
	MaxOrphanTx int `json:"max_orphan_tx"`

	// Relay unconfirmed transactions. False in blocks-only mode.
	RelayTxes bool `json:"relay_txes"`

	// Accept relayed transactions received from whitelisted peers even when
	// not relaying transactions.
	WhiteListRelay bool `json:"whitelist_relay"`

	// NodeSettings is the node configuration the settings were loaded from.
	// It is not owned by Settings.
	NodeSettings *config.NodeSettings `json:"-"`

	override OverrideFunc
}

// NewSettings returns empty settings that call override, if non-nil, at the
// end of each Load.
func NewSettings(override OverrideFunc) *Settings {
	return &Settings{override: override}
}

// LoadSettings creates settings and loads them from node.
func LoadSettings(node *config.NodeSettings, override OverrideFunc) (*Settings, error) {
	s := NewSettings(override)
	if err := s.Load(node); err != nil {
		return nil, err
	}
	return s, nil
}

// Load resolves every mempool option from node's configuration reader,
// falling back to the compiled-in defaults for absent options, and then
// applies the override. Coercion errors from the reader are returned as is;
// settings whose Load failed must not be used.
func (s *Settings) Load(node *config.NodeSettings) error {
	if node == nil || node.ConfigReader == nil {
		return config.ErrNoConfigReader
	}
	r := node.ConfigReader

	var err error
	if s.MaxMempool, err = r.GetInt(KeyMaxMempool, DefaultMaxMempoolSize); err != nil {
		return err
	}
	if s.MempoolExpiry, err = r.GetInt(KeyMempoolExpiry, DefaultMempoolExpiry); err != nil {
		return err
	}
	if s.RelayPriority, err = r.GetBool(KeyRelayPriority, DefaultRelaypriority); err != nil {
		return err
	}
	if s.LimitFreeRelay, err = r.GetInt(KeyLimitFreeRelay, DefaultLimitfreerelay); err != nil {
		return err
	}
	if s.LimitAncestors, err = r.GetInt(KeyLimitAncestors, DefaultAncestorLimit); err != nil {
		return err
	}
	if s.LimitAncestorSize, err = r.GetInt(KeyLimitAncestorSize, DefaultAncestorSizeLimit); err != nil {
		return err
	}
	if s.LimitDescendants, err = r.GetInt(KeyLimitDescendants, DefaultDescendantLimit); err != nil {
		return err
	}
	if s.LimitDescendantSize, err = r.GetInt(KeyLimitDescendantSize, DefaultDescendantSizeLimit); err != nil {
		return err
	}
	if s.EnableReplacement, err = r.GetBool(KeyEnableReplacement, DefaultEnableReplacement); err != nil {
		return err
	}
	if s.MaxOrphanTx, err = r.GetInt(KeyMaxOrphanTx, DefaultMaxOrphanTransactions); err != nil {
		return err
	}
	blocksOnly, err := r.GetBool(KeyBlocksOnly, DefaultBlocksOnly)
	if err != nil {
		return err
	}
	s.RelayTxes = !blocksOnly
	if s.WhiteListRelay, err = r.GetBool(KeyWhiteListRelay, DefaultWhiteListRelay); err != nil {
		return err
	}

	s.NodeSettings = node

	if s.override != nil {
		s.override(s)
	}

	if node.Logger != nil {
		node.Logger.Debug("loaded mempool settings", s.logFields()...)
	}
	return nil
}

func (s *Settings) logFields() []interface{} {
	return []interface{}{
		KeyMaxMempool, s.MaxMempool,
		KeyMempoolExpiry, s.MempoolExpiry,
		KeyRelayPriority, s.RelayPriority,
		KeyLimitFreeRelay, s.LimitFreeRelay,
		KeyLimitAncestors, s.LimitAncestors,
		KeyLimitAncestorSize, s.LimitAncestorSize,
		KeyLimitDescendants, s.LimitDescendants,
		KeyLimitDescendantSize, s.LimitDescendantSize,
		KeyEnableReplacement, s.EnableReplacement,
		KeyMaxOrphanTx, s.MaxOrphanTx,
		"relaytxes", s.RelayTxes,
		KeyWhiteListRelay, s.WhiteListRelay,
	}
}
