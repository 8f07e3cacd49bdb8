package config

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/tendermint/txpoolconfig/libs/log"
)

const (
	// LogFormatPlain is a format for colored text
	LogFormatPlain = "plain"
	// LogFormatJSON is a format for json output
	LogFormatJSON = "json"

	// DefaultNetwork is the network name used when none is configured.
	DefaultNetwork = "main"
)

var (
	DefaultNodeDir   = ".txpool"
	defaultConfigDir = "config"

	defaultConfigFileName = "mempool.toml"
	defaultConfigFilePath = filepath.Join(defaultConfigDir, defaultConfigFileName)
)

// ErrNoConfigReader is returned when settings are loaded from a NodeSettings
// which carries no configuration source.
var ErrNoConfigReader = errors.New("node settings have no configuration reader")

// NodeSettings is the node-wide configuration context. Components resolve
// their own options through ConfigReader and may keep a reference to the
// NodeSettings for further lookups; they never own it.
type NodeSettings struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home"`

	// Path to the configuration file, relative to RootDir unless absolute
	ConfigFile string `mapstructure:"conf"`

	// Name of the network the node participates in
	Network string `mapstructure:"network"`

	// Output level for logging
	LogLevel string `mapstructure:"log_level"`

	// Output format: 'plain' (colored text) or 'json'
	LogFormat string `mapstructure:"log_format"`

	// ConfigReader supplies raw option values.
	ConfigReader Source `mapstructure:"-"`

	Logger log.Logger `mapstructure:"-"`
}

// DefaultNodeSettings returns node settings with an empty configuration
// source, so every option resolves to its compiled-in default.
func DefaultNodeSettings() *NodeSettings {
	return &NodeSettings{
		ConfigFile:   defaultConfigFilePath,
		Network:      DefaultNetwork,
		LogLevel:     log.LogLevelInfo,
		LogFormat:    LogFormatPlain,
		ConfigReader: NewTextSource(nil),
		Logger:       log.NewNopLogger(),
	}
}

// NewNodeSettings returns default node settings rooted at rootDir which read
// options from reader. A nil logger is replaced by a no-op logger.
func NewNodeSettings(rootDir string, reader Source, logger log.Logger) *NodeSettings {
	ns := DefaultNodeSettings()
	ns.RootDir = rootDir
	ns.ConfigReader = reader
	if logger != nil {
		ns.Logger = logger
	}
	return ns
}

// ConfigFilePath returns the full path to the configuration file.
func (ns *NodeSettings) ConfigFilePath() string {
	return rootify(ns.ConfigFile, ns.RootDir)
}

// ValidateBasic performs basic validation and returns an error if any check
// fails. Option values read through ConfigReader are not inspected.
func (ns *NodeSettings) ValidateBasic() error {
	switch ns.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return errors.New("unknown log_format (must be 'plain' or 'json')")
	}
	if ns.ConfigReader == nil {
		return ErrNoConfigReader
	}
	return nil
}

// helper function to make config creation independent of root dir
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
