package logging

// Copyright (c) 2025 Colin McRae

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("presimp", Config{Format: "json", Level: "debug", Writer: &buf})
	require.NoError(t, err)
	logger.Debug("simplified", zap.Int("generators", 2))
	require.NoError(t, logger.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "presimp", entry["name"])
	require.Equal(t, "simplified", entry["msg"])
	require.Equal(t, "debug", entry["level"])
	require.EqualValues(t, 2, entry["generators"])

	buf.Reset()
	logger, err = New("kat", Config{Format: "logfmt", Writer: &buf})
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("results", zap.Int("runs", 3))
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=results")
	require.Contains(t, buf.String(), "runs=3")
	require.Contains(t, buf.String(), "name=kat")

	buf.Reset()
	logger, err = New("console", Config{Level: "WARN", Writer: &buf})
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	require.Equal(t, 1, strings.Count(buf.String(), "\n"))
	require.Contains(t, buf.String(), "WARN")
}

func TestNewErrors(t *testing.T) {
	_, err := New("x", Config{Format: "xml"})
	require.Error(t, err)
	_, err = New("x", Config{Level: "loud"})
	require.Error(t, err)
}
