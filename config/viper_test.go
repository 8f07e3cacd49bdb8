package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViperSourceLayers(t *testing.T) {
	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader("[mempool]\nmaxmempool = 500\nlimitancestorcount = 10\n")))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("limitancestorcount", 25, "")
	flags.Bool("blocksonly", false, "")
	require.NoError(t, v.BindPFlags(flags))
	require.NoError(t, flags.Parse([]string{"--limitancestorcount=12"}))

	s := NewViperSource(v)

	got, err := s.GetInt("maxmempool", 300)
	require.NoError(t, err)
	assert.Equal(t, 500, got)

	got, err = s.GetInt("limitancestorcount", 25)
	require.NoError(t, err)
	assert.Equal(t, 12, got, "flag overrides config file")

	b, err := s.GetBool("blocksonly", true)
	require.NoError(t, err)
	assert.True(t, b, "unchanged flag falls back to the supplied default")
}

func TestViperSourceEnv(t *testing.T) {
	t.Setenv("TXPOOLTEST_MAXORPHANTX", "not-a-number")

	v := viper.New()
	v.SetEnvPrefix("TXPOOLTEST")
	v.AutomaticEnv()

	_, err := NewViperSource(v).GetInt("maxorphantx", 100)
	var verr *ValueError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "not-a-number", verr.Value)
}
