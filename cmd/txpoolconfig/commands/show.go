package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/tendermint/txpoolconfig/config"
	"github.com/tendermint/txpoolconfig/libs/cli"
	"github.com/tendermint/txpoolconfig/mempool"
)

const metricsNamespace = "txpool"

// ShowCmd resolves the mempool settings from flags, environment and config
// file, and prints them.
func ShowCmd(conf *config.NodeSettings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved mempool settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := mempool.LoadSettings(conf, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			output, _ := cmd.Flags().GetString(cli.OutputFlag)
			switch output {
			case "json":
				bz, err := json.MarshalIndent(settings, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(bz))
			case "text":
				for _, o := range mempool.Options() {
					v, _ := settings.Value(o.Key)
					fmt.Fprintf(out, "%s=%v\n", o.Key, v)
				}
			default:
				return fmt.Errorf("unsupported output format %q", output)
			}

			if withMetrics, _ := cmd.Flags().GetBool("metrics"); withMetrics {
				mempool.PrometheusMetrics(metricsNamespace).Observe(settings)
				return writeMetrics(out)
			}
			return nil
		},
	}
	cmd.Flags().StringP(cli.OutputFlag, "o", "text", "output format (text|json)")
	cmd.Flags().Bool("metrics", false, "also print the settings as Prometheus gauges")
	AddOptionFlags(cmd)
	return cmd
}

// AddOptionFlags registers a flag for every mempool option. Flags left unset
// do not shadow the config file or the compiled-in defaults. Integer options
// are string flags so the value reaches the config source verbatim and is
// read as a decimal number.
func AddOptionFlags(cmd *cobra.Command) {
	for _, o := range mempool.Options() {
		switch def := o.Default.(type) {
		case bool:
			cmd.Flags().Bool(o.Key, def, o.Description)
		case int:
			cmd.Flags().String(o.Key, strconv.Itoa(def), o.Description)
		}
	}
}

func writeMetrics(w io.Writer) error {
	families, err := stdprometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
