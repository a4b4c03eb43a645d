package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/gzipkit/internal/core/domain"
	"github.com/iamNilotpal/gzipkit/pkg/errors"
)

func TestIsGzipFramed(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
		want  bool
	}{
		{"nil", nil, false},
		{"empty", []byte{}, false},
		{"one byte", []byte{0x1f}, false},
		{"exact magic", []byte{0x1f, 0x8b}, true},
		{"magic with payload", []byte{0x1f, 0x8b, 0x08, 0x00}, true},
		{"swapped magic", []byte{0x8b, 0x1f}, false},
		{"plain text", []byte("abc "), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, domain.IsGzipFramed(tc.input))
		})
	}
}

func TestLevelFromInt(t *testing.T) {
	cases := []struct {
		raw  int
		want domain.CompressionLevel
	}{
		{0, domain.LevelNone},
		{1, domain.LevelBestSpeed},
		{2, domain.LevelDefault},
		{6, domain.LevelDefault},
		{8, domain.LevelDefault},
		{9, domain.LevelBestCompression},
	}

	for _, tc := range cases {
		got, err := domain.LevelFromInt(tc.raw)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	for _, raw := range []int{-1, 10, 100} {
		_, err := domain.LevelFromInt(raw)
		require.Error(t, err)
		require.True(t, errors.IsValidationError(err))
	}
}

func TestCompressionLevelValid(t *testing.T) {
	for _, level := range []domain.CompressionLevel{
		domain.LevelDefault, domain.LevelNone, domain.LevelBestSpeed, domain.LevelBestCompression,
	} {
		require.True(t, level.Valid())
		require.NotEqual(t, "invalid", level.String())
	}

	require.False(t, domain.CompressionLevel(42).Valid())
	require.Equal(t, "invalid", domain.CompressionLevel(42).String())
}
