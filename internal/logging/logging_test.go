package logging

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithPathStderr(t *testing.T) {
	result := NewLoggerWithPath(Config{Level: "debug", Format: FormatJSON})

	assert.False(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, zerolog.DebugLevel, result.Logger.GetLevel())
	assert.NoError(t, result.Close())
}

func TestNewLoggerWithPathFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecofoot.log")
	result := NewLoggerWithPath(Config{Level: "info", Format: FormatJSON, File: path})

	require.True(t, result.UsingFile)
	assert.Equal(t, path, result.FilePath)
	assert.False(t, result.FallbackUsed)

	result.Logger.Info().Str("component", "test").Msg("hello")
	require.NoError(t, result.Close())

	assert.FileExists(t, path)
}

func TestNewLoggerWithPathFallback(t *testing.T) {
	// A directory that does not exist forces the stderr fallback.
	path := filepath.Join(t.TempDir(), "missing", "ecofoot.log")
	result := NewLoggerWithPath(Config{Level: "info", File: path})

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
	assert.NoError(t, result.Close())
}

func TestNewLoggerDefaultsUnknownLevel(t *testing.T) {
	logger := New(Config{Level: "shouting", Format: FormatJSON})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	logger = New(Config{Format: FormatJSON})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestComponentLogger(t *testing.T) {
	var buf strings.Builder
	base := zerolog.New(&buf)

	log := ComponentLogger(base, "render")
	log.Info().Msg("drew chart")

	assert.Contains(t, buf.String(), `"component":"render"`)
}

func TestTraceIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	id := GetOrGenerateTraceID(ctx)
	require.NotEmpty(t, id)

	ctx = ContextWithTraceID(ctx, id)
	assert.Equal(t, id, TraceIDFromContext(ctx))
	assert.Equal(t, id, GetOrGenerateTraceID(ctx), "an existing trace ID is reused")
}

func TestFromContext(t *testing.T) {
	var buf strings.Builder
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	log := FromContext(ctx)
	log.Info().Msg("attached")
	assert.Contains(t, buf.String(), "attached")

	// A bare context yields a usable, silent logger.
	bare := FromContext(context.Background())
	bare.Info().Msg("dropped")
}
