package logging

// Copyright (c) 2025 Colin McRae

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the encoding, level and sink of a logger
type Config struct {
	// Format is "json", "logfmt" or "console". Empty means "console".
	Format string

	// Level is a zap level name such as "debug" or "warn". Empty means "info".
	Level string

	// Writer defaults to os.Stderr
	Writer io.Writer
}

// New returns a zap logger named name built from c
func New(name string, c Config) (*zap.Logger, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(c.Format) {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case "logfmt":
		encoder = zaplogfmt.NewEncoder(encoderConfig)
	case "", "console":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		return nil, errors.Errorf("logging: unknown format %q", c.Format)
	}

	level := zapcore.InfoLevel
	if c.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(c.Level))); err != nil {
			return nil, errors.Wrapf(err, "logging: level %q", c.Level)
		}
	}

	var sink zapcore.WriteSyncer
	switch w := c.Writer.(type) {
	case nil:
		sink = zapcore.Lock(os.Stderr)
	case *os.File:
		sink = zapcore.Lock(w)
	case zapcore.WriteSyncer:
		sink = w
	default:
		sink = zapcore.AddSync(w)
	}
	return zap.New(zapcore.NewCore(encoder, sink, level)).Named(name), nil
}
