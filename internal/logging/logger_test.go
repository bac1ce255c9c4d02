package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerEnvironments(t *testing.T) {
	for _, env := range []string{"development", "production", "Production"} {
		logger, err := NewLogger(&LoggerConfig{Environment: env})
		require.NoError(t, err, env)
		require.NotNil(t, logger)
	}
}

func TestNewLoggerRejectsUnknownEnvironment(t *testing.T) {
	_, err := NewLogger(&LoggerConfig{Environment: "staging"})
	require.Error(t, err)
}

func TestLoggerKeyValues(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core)).Named("filter").With("size", 64)

	logger.Warn("cannot open source", "path", "/nope")
	logger.Debug("added", "item", "alpha")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "cannot open source", entries[0].Message)
	require.Equal(t, "filter", entries[0].LoggerName)
	fields := entries[0].ContextMap()
	require.Equal(t, "/nope", fields["path"])
	require.EqualValues(t, 64, fields["size"])
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := Nop()
	logger.Error("ignored", "k", "v")
	require.NoError(t, logger.Sync())
}
