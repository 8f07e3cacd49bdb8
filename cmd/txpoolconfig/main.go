package main

import (
	"os"

	"github.com/tendermint/txpoolconfig/cmd/txpoolconfig/commands"
	"github.com/tendermint/txpoolconfig/config"
	"github.com/tendermint/txpoolconfig/libs/cli"
)

func main() {
	conf := config.DefaultNodeSettings()

	rcmd := commands.RootCommand(conf)
	rcmd.AddCommand(
		commands.InitFilesCmd(conf),
		commands.ShowCmd(conf),
		commands.OptionsCmd(),
	)

	cmd := cli.PrepareBaseCmd(rcmd, commands.EnvPrefix, commands.DefaultHome)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
