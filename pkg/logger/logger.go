package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a sugared production logger annotated with the service
// name. Logging never happens inside the library's operation paths; this
// logger is for binaries wiring the library together.
func New(service string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.InitialFields = map[string]any{"service": service}

	log, err := config.Build(zap.WithCaller(true))
	if err != nil {
		os.Exit(1)
	}

	return log.Sugar()
}
