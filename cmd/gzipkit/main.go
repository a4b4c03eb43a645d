package main

import (
	"bytes"
	"context"
	"os"

	"github.com/iamNilotpal/gzipkit/config"
	"github.com/iamNilotpal/gzipkit/internal/adapters/codec"
	"github.com/iamNilotpal/gzipkit/internal/core/domain"
	"github.com/iamNilotpal/gzipkit/internal/core/services/gzip"
	"github.com/iamNilotpal/gzipkit/pkg/errors"
	"github.com/iamNilotpal/gzipkit/pkg/logger"
)

func main() {
	logger := logger.New("gzipkit")
	defer logger.Sync()

	logger.Info("starting gzipkit demo")

	cfg := config.DefaultConfig()
	level, err := domain.LevelFromInt(cfg.Compression.Level)
	if err != nil {
		logger.Infow("invalid compression level", "error", err)
		os.Exit(1)
	}

	compressor, err := gzip.New(codec.New(), &domain.CompressionOptions{
		Level:             level,
		CompressChunkSize: cfg.Compression.ChunkSizeKiB * 1024,
	})
	if err != nil {
		if errors.IsValidationError(err) {
			ve := errors.AsValidationError(err)
			logger.Infow("create compressor error", "field", ve.Field, "value", ve.Value, "error", ve.Err)
		} else {
			logger.Infow("create compressor error", "error", err)
		}
		os.Exit(1)
	}

	payload := bytes.Repeat([]byte("all work and no play makes gzip a dull codec. "), 512)

	compressed, err := compressor.CompressContext(context.Background(), payload)
	if err != nil {
		logger.Infow("compress error", "error", err)
		os.Exit(1)
	}
	logger.Infow("compressed",
		"level", compressor.Level().String(),
		"in_bytes", len(payload),
		"out_bytes", len(compressed),
		"gzip_framed", domain.IsGzipFramed(compressed),
	)

	restored, err := compressor.Decompress(compressed)
	if err != nil {
		if ce := errors.AsError(err); ce != nil {
			logger.Infow("decompress error", "kind", ce.Kind.String(), "code", ce.Code, "error", ce)
		} else {
			logger.Infow("decompress error", "error", err)
		}
		os.Exit(1)
	}

	logger.Infow("round trip", "restored_bytes", len(restored), "matches", bytes.Equal(payload, restored))
}
