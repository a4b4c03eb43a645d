package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/gzipkit/pkg/errors"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		code int
		want errors.Kind
	}{
		{-2, errors.KindStreamInconsistent},
		{-3, errors.KindDataCorrupted},
		{-4, errors.KindOutOfMemory},
		{-5, errors.KindBufferStalled},
		{-6, errors.KindVersionMismatch},
		{-1, errors.KindUnknown},
		{-7, errors.KindUnknown},
		{42, errors.KindUnknown},
	}

	for _, tc := range cases {
		err := errors.Classify("decompress", tc.code, "boom")
		require.Equal(t, tc.want, err.Kind, "code %d", tc.code)
		require.Equal(t, tc.code, err.Code, "original code preserved")
		require.Equal(t, "boom", err.Message)
		require.Equal(t, "decompress", err.Operation)
	}
}

func TestClassifyPlaceholderMessage(t *testing.T) {
	err := errors.Classify("compress", -3, "")
	require.Equal(t, "unknown codec error", err.Message)
	require.Contains(t, err.Error(), "data-corrupted")
	require.Contains(t, err.Error(), "compress")
}

func TestKindString(t *testing.T) {
	require.Equal(t, "stream-inconsistent", errors.KindStreamInconsistent.String())
	require.Equal(t, "data-corrupted", errors.KindDataCorrupted.String())
	require.Equal(t, "out-of-memory", errors.KindOutOfMemory.String())
	require.Equal(t, "buffer-insufficient-progress", errors.KindBufferStalled.String())
	require.Equal(t, "version-mismatch", errors.KindVersionMismatch.String())
	require.Equal(t, "unknown", errors.KindUnknown.String())
}

func TestHelpers(t *testing.T) {
	classified := errors.Classify("compress", -5, "stalled")
	wrapped := fmt.Errorf("operation failed: %w", classified)

	require.True(t, errors.IsError(wrapped))
	require.True(t, errors.IsKind(wrapped, errors.KindBufferStalled))
	require.False(t, errors.IsKind(wrapped, errors.KindDataCorrupted))
	require.Equal(t, classified, errors.AsError(wrapped))

	plain := fmt.Errorf("plain")
	require.False(t, errors.IsError(plain))
	require.Nil(t, errors.AsError(plain))
}

func TestValidationError(t *testing.T) {
	ve := errors.NewValidationError("level", 17, fmt.Errorf("out of range"))
	wrapped := fmt.Errorf("config: %w", ve)

	require.True(t, errors.IsValidationError(wrapped))
	require.Equal(t, ve, errors.AsValidationError(wrapped))
	require.Equal(t, "out of range", ve.Error())
	require.Equal(t, "level", ve.Field)
	require.Equal(t, 17, ve.Value)

	require.False(t, errors.IsValidationError(fmt.Errorf("other")))
	require.Nil(t, errors.AsValidationError(fmt.Errorf("other")))
}
