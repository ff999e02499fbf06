package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		"info":   zapcore.InfoLevel,
		" WARN ": zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
		"fatal":  zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestContextLogger checks that name and fields attached to a context reach the output.
func TestContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := New(zap.NewAtomicLevelAt(zapcore.DebugLevel), &buf)
	ctx := ToContext(context.Background(), l)
	ctx = WithName(ctx, "xa-init")
	ctx = WithKV(ctx, "path", "package.json")

	InfoKV(ctx, "manifest written", "bytes", 42)

	out := buf.String()
	require.Contains(t, out, "xa-init")
	require.Contains(t, out, "manifest written")
	require.Contains(t, out, "package.json")
	require.Contains(t, out, "42")
}

// TestFromContext_Fallback ensures a context without a logger yields the global one.
func TestFromContext_Fallback(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestSetLevel changes the level shared by the global logger.
func TestSetLevel(t *testing.T) {
	prev := Level()
	t.Cleanup(func() { SetLevel(prev) })

	SetLevel(zapcore.DebugLevel)
	require.Equal(t, zapcore.DebugLevel, Level())
	require.True(t, Logger().Desugar().Core().Enabled(zapcore.DebugLevel))
}
