package commands

import (
	"github.com/spf13/cobra"

	"github.com/tendermint/txpoolconfig/mempool"
)

// OptionsCmd prints the mempool options with their defaults.
func OptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List mempool options and their defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			return mempool.PrintHelp(cmd.OutOrStdout())
		},
	}
}
