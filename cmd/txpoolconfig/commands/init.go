package commands

import (
	"github.com/spf13/cobra"

	"github.com/tendermint/txpoolconfig/config"
	"github.com/tendermint/txpoolconfig/mempool"
)

// InitFilesCmd writes the resolved mempool settings to the config file. A
// missing file is generated from the template; an existing one keeps its
// layout and comments, has its options set in place and gains any option it
// lacks. Flags given here are therefore written through.
func InitFilesCmd(conf *config.NodeSettings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write or complete the mempool config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := mempool.LoadSettings(conf, nil)
			if err != nil {
				return err
			}

			path := conf.ConfigFilePath()
			if err := settings.UpdateConfigFile(cmd.Context(), path); err != nil {
				return err
			}
			conf.Logger.Info("Wrote config file", "path", path)
			return nil
		},
	}
	AddOptionFlags(cmd)
	return cmd
}
