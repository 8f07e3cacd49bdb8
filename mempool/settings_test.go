package mempool

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendermint/txpoolconfig/config"
	"github.com/tendermint/txpoolconfig/libs/log"
)

// ignore the node back-reference and the captured override
var cmpSettings = []cmp.Option{
	cmpopts.IgnoreFields(Settings{}, "NodeSettings"),
	cmpopts.IgnoreUnexported(Settings{}),
}

func testNode(args ...string) *config.NodeSettings {
	return config.NewNodeSettings("", config.NewTextSource(args), log.TestingLogger())
}

func TestLoadDefaults(t *testing.T) {
	node := testNode()

	s, err := LoadSettings(node, nil)
	require.NoError(t, err)

	if diff := cmp.Diff(DefaultSettings(), s, cmpSettings...); diff != "" {
		t.Errorf("unexpected settings (-want +got):\n%s", diff)
	}
	assert.True(t, s.WhiteListRelay)
	assert.True(t, s.RelayTxes)
	assert.Equal(t, DefaultMaxOrphanTransactions, s.MaxOrphanTx)
	assert.Same(t, node, s.NodeSettings)
}

func TestLoadPassthrough(t *testing.T) {
	node := testNode(
		"-maxmempool=1",
		"-mempoolexpiry=2",
		"-relaypriority=0",
		"-limitfreerelay=3",
		"-limitancestorcount=4",
		"-limitancestorsize=5",
		"-limitdescendantcount=6",
		"-limitdescendantsize=7",
		"-mempoolreplacement=1",
		"-maxorphantx=8",
		"-blocksonly=1",
		"-whitelistrelay=0",
	)

	s, err := LoadSettings(node, nil)
	require.NoError(t, err)

	want := &Settings{
		MaxMempool:          1,
		MempoolExpiry:       2,
		RelayPriority:       false,
		LimitFreeRelay:      3,
		LimitAncestors:      4,
		LimitAncestorSize:   5,
		LimitDescendants:    6,
		LimitDescendantSize: 7,
		EnableReplacement:   true,
		MaxOrphanTx:         8,
		RelayTxes:           false,
		WhiteListRelay:      false,
	}
	if diff := cmp.Diff(want, s, cmpSettings...); diff != "" {
		t.Errorf("unexpected settings (-want +got):\n%s", diff)
	}
}

func TestLoadDecimalPassthrough(t *testing.T) {
	s, err := LoadSettings(testNode("-maxmempool=0300", "-limitancestorcount=08"), nil)
	require.NoError(t, err)
	assert.Equal(t, 300, s.MaxMempool)
	assert.Equal(t, 8, s.LimitAncestors)

	_, err = LoadSettings(testNode("-maxmempool=0x10"), nil)
	var verr *config.ValueError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KeyMaxMempool, verr.Key)
}

func TestLoadBlocksOnly(t *testing.T) {
	testCases := []struct {
		name      string
		args      []string
		relayTxes bool
	}{
		{"default", nil, true},
		{"explicit true", []string{"-blocksonly=1"}, false},
		{"bare flag", []string{"-blocksonly"}, false},
		{"explicit false", []string{"-blocksonly=0"}, true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, err := LoadSettings(testNode(tc.args...), nil)
			require.NoError(t, err)
			assert.Equal(t, tc.relayTxes, s.RelayTxes)
		})
	}
}

func TestLoadPartialConfig(t *testing.T) {
	s, err := LoadSettings(testNode("-maxmempool=500", "-limitancestorcount=10"), nil)
	require.NoError(t, err)

	want := DefaultSettings()
	want.MaxMempool = 500
	want.LimitAncestors = 10
	if diff := cmp.Diff(want, s, cmpSettings...); diff != "" {
		t.Errorf("unexpected settings (-want +got):\n%s", diff)
	}
}

func TestLoadOverride(t *testing.T) {
	calls := 0
	s := NewSettings(func(s *Settings) {
		calls++
		require.NotNil(t, s.NodeSettings, "override runs after the node is stored")
		s.MaxMempool = 999
	})

	require.NoError(t, s.Load(testNode("-maxmempool=500")))
	assert.Equal(t, 999, s.MaxMempool)
	assert.Equal(t, 1, calls)

	require.NoError(t, s.Load(testNode()))
	assert.Equal(t, 999, s.MaxMempool)
	assert.Equal(t, 2, calls)
}

func TestLoadWithoutOverride(t *testing.T) {
	s := NewSettings(nil)
	assert.Zero(t, s.MaxMempool)
	require.NoError(t, s.Load(testNode()))
	assert.Equal(t, DefaultMaxMempoolSize, s.MaxMempool)
}

func TestLoadIsRepeatable(t *testing.T) {
	node := testNode("-maxmempool=42", "-blocksonly=1")

	s := NewSettings(nil)
	require.NoError(t, s.Load(node))
	first := *s

	require.NoError(t, s.Load(node))
	if diff := cmp.Diff(&first, s, cmpSettings...); diff != "" {
		t.Errorf("second load differs (-first +second):\n%s", diff)
	}
	assert.Same(t, first.NodeSettings, s.NodeSettings)
}

func TestLoadReplacesNode(t *testing.T) {
	s := NewSettings(nil)
	first, second := testNode(), testNode("-maxorphantx=1")

	require.NoError(t, s.Load(first))
	require.NoError(t, s.Load(second))
	assert.Same(t, second, s.NodeSettings)
	assert.Equal(t, 1, s.MaxOrphanTx)
}

func TestLoadCoercionError(t *testing.T) {
	called := false
	s := NewSettings(func(*Settings) { called = true })

	err := s.Load(testNode("-limitdescendantsize=big"))
	var verr *config.ValueError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KeyLimitDescendantSize, verr.Key)
	assert.False(t, called)
	assert.Nil(t, s.NodeSettings)

	_, err = LoadSettings(testNode("-whitelistrelay=sometimes"), nil)
	require.Error(t, err)
}

func TestLoadNoConfigReader(t *testing.T) {
	s := NewSettings(nil)
	assert.ErrorIs(t, s.Load(nil), config.ErrNoConfigReader)
	assert.ErrorIs(t, s.Load(&config.NodeSettings{}), config.ErrNoConfigReader)
}

func TestLoadNoValidation(t *testing.T) {
	s, err := LoadSettings(testNode("-maxmempool=-1", "-limitancestorcount=0"), nil)
	require.NoError(t, err)
	assert.Equal(t, -1, s.MaxMempool)
	assert.Equal(t, 0, s.LimitAncestors)
}

func TestLoadLogsResolvedSettings(t *testing.T) {
	var buf bytes.Buffer
	logger, err := log.NewLogger(&buf, log.LogFormatJSON, log.LogLevelDebug)
	require.NoError(t, err)

	node := config.NewNodeSettings("", config.NewTextSource([]string{"-maxmempool=7"}), logger)
	_, err = LoadSettings(node, nil)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded mempool settings", entry["message"])
	assert.EqualValues(t, 7, entry[KeyMaxMempool])
	assert.Equal(t, true, entry["relaytxes"])
}

func TestSettingsJSON(t *testing.T) {
	s, err := LoadSettings(testNode(), nil)
	require.NoError(t, err)

	bz, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(bz), "NodeSettings")
	assert.Contains(t, string(bz), `"max_mempool":300`)
}
