// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger builds the zap logger used by every command. Console output
// goes to the supplied writer (stderr in the CLI, so stdout stays clean for
// command output); an optional file output is rotated by lumberjack.
package logger

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pdiddy/patent-report/pkg/types"
)

// New returns a logger for cfg writing console output to console.
func New(cfg types.LogConfig, console io.Writer) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder(cfg.Format), zapcore.AddSync(console), level),
	}

	if cfg.File.Path != "" {
		w := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxAge:     cfg.File.MaxAgeDays,
			MaxBackups: cfg.File.MaxBackups,
			Compress:   cfg.File.Compress,
		}
		// Files never get color codes.
		cores = append(cores, zapcore.NewCore(encoder(types.LogFormatJSON), zapcore.AddSync(w), level))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

// ParseLevel maps debug, info, warn and error to zap levels. Empty means warn.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zap.DebugLevel, nil
	case "info":
		return zap.InfoLevel, nil
	case "", "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	default:
		return zap.WarnLevel, fmt.Errorf("unknown log level %q (want debug, info, warn, or error)", s)
	}
}

func encoder(format string) zapcore.Encoder {
	if format == types.LogFormatJSON {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	if format == types.LogFormatText {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewConsoleEncoder(cfg)
}
