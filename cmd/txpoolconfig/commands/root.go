package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tendermint/txpoolconfig/config"
	"github.com/tendermint/txpoolconfig/libs/log"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "TXPOOL"

// textConfigExt marks a config file in the classic key=value format.
const textConfigExt = ".conf"

// DefaultHome is the default node home directory.
var DefaultHome = os.ExpandEnv(filepath.Join("$HOME", config.DefaultNodeDir))

// ParseConfig unmarshals viper's view of the node settings into conf and
// chooses its configuration reader. A config file ending in .conf is read in
// the classic text format, with the flags given on the command line taking
// precedence; otherwise options are read through viper.
func ParseConfig(conf *config.NodeSettings, flags *pflag.FlagSet) (*config.NodeSettings, error) {
	if err := viper.Unmarshal(conf); err != nil {
		return nil, err
	}

	if path := conf.ConfigFilePath(); filepath.Ext(path) == textConfigExt {
		src, err := textSource(flags, path)
		if err != nil {
			return nil, err
		}
		conf.ConfigReader = src
	} else {
		// viper only discovers <home>/config/mempool.toml by itself
		if used := viper.ConfigFileUsed(); path != used {
			if _, err := os.Stat(path); err == nil {
				viper.SetConfigFile(path)
				if err := viper.ReadInConfig(); err != nil {
					return nil, err
				}
			}
		}
		conf.ConfigReader = config.NewViperSource(viper.GetViper())
	}

	if err := conf.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("error in config file: %w", err)
	}
	return conf, nil
}

func textSource(flags *pflag.FlagSet, path string) (*config.TextSource, error) {
	var args []string
	flags.Visit(func(f *pflag.Flag) {
		args = append(args, fmt.Sprintf("-%s=%s", f.Name, f.Value.String()))
	})
	src := config.NewTextSource(args)
	if err := src.MergeFile(path); err != nil {
		return nil, err
	}
	return src, nil
}

// RootCommand constructs the root command-line entry point. Wrap it with
// cli.PrepareBaseCmd to get the home and trace flags and config loading.
func RootCommand(conf *config.NodeSettings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txpoolconfig",
		Short: "Resolve and inspect transaction pool settings",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			pconf, err := ParseConfig(conf, cmd.Flags())
			if err != nil {
				return err
			}
			*conf = *pconf

			logger, err := log.NewLogger(cmd.ErrOrStderr(), conf.LogFormat, conf.LogLevel)
			if err != nil {
				return err
			}
			conf.Logger = logger.With("module", "main")
			return nil
		},
	}
	cmd.PersistentFlags().String("conf", conf.ConfigFile, "config file, relative to home; a .conf file is read as key=value lines")
	cmd.PersistentFlags().String("log_level", conf.LogLevel, "log level")
	cmd.PersistentFlags().String("log_format", conf.LogFormat, "log format (plain|json)")
	cmd.PersistentFlags().String("network", conf.Network, "network name")
	return cmd
}
