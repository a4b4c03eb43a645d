package gzipkit_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/gzipkit"
)

func TestRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("abc "), 100)

	compressed, err := gzipkit.CompressLevel(payload, gzipkit.BestSpeed)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(payload))
	require.True(t, gzipkit.IsGzipFramed(compressed))
	require.False(t, gzipkit.IsGzipFramed(payload))

	restored, err := gzipkit.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestEmptyLaws(t *testing.T) {
	out, err := gzipkit.Compress(nil)
	require.NoError(t, err)
	require.Empty(t, out)

	out, err = gzipkit.Decompress(nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestPassthrough(t *testing.T) {
	input := []byte("not gzip framed")

	out, err := gzipkit.Decompress(input)
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestLevelFromInt(t *testing.T) {
	level, err := gzipkit.LevelFromInt(9)
	require.NoError(t, err)
	require.Equal(t, gzipkit.BestCompression, level)

	_, err = gzipkit.LevelFromInt(11)
	require.Error(t, err)
}
