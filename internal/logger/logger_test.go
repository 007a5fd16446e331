package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rojanmagar2001/siteicons/internal/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(in), "level %q", in)
	}
}

func TestNew_WritesToConfiguredPath(t *testing.T) {
	t.Parallel()

	l, err := logger.New(logger.Config{Level: "debug", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	l.Debug("hello", logger.String("k", "v"))
}

func TestWith_CarriesFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	l := logger.FromZap(zap.New(core)).With(logger.String("run_id", "abc"))

	l.Warn("probe failed", logger.Error(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "abc", ctx["run_id"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestNop_DoesNothing(t *testing.T) {
	t.Parallel()

	l := logger.NewNop()
	l.Info("ignored")
	assert.Equal(t, l, l.With(logger.Int("n", 1)))
	assert.NoError(t, l.Sync())
}
