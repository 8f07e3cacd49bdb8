package mempool

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsCoverSettings(t *testing.T) {
	opts := Options()
	require.Len(t, opts, 12)

	defaults := DefaultSettings()
	seen := make(map[string]bool)
	for _, o := range opts {
		assert.False(t, seen[o.Key], "duplicate option %s", o.Key)
		seen[o.Key] = true
		assert.Equal(t, strings.ToLower(o.Key), o.Key)

		v, ok := defaults.Value(o.Key)
		require.True(t, ok, o.Key)
		assert.Equal(t, o.Default, v, o.Key)
	}

	_, ok := defaults.Value("relaytxes")
	assert.False(t, ok)
}

func TestOptionsIsACopy(t *testing.T) {
	opts := Options()
	opts[0].Key = "changed"
	assert.Equal(t, KeyMaxMempool, Options()[0].Key)
}

func TestPrintHelp(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintHelp(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(options)+1)
	assert.Equal(t, "Mempool settings:", lines[0])
	assert.Contains(t, lines[1], "-maxmempool=<number>")
	assert.Contains(t, lines[1], "Default: 300.")
	assert.Contains(t, buf.String(), "-blocksonly=<0 or 1>")
	assert.Contains(t, buf.String(), "Default: 0.")
}
