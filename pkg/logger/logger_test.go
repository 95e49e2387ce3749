package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"medconnect-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestInitLevelFromEnv(t *testing.T) {
	ctx := context.Background()

	t.Run("Should default to info when LOG_LEVEL is unset", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		logger.Init()
		assert.False(t, logger.Log.Enabled(ctx, slog.LevelDebug))
		assert.True(t, logger.Log.Enabled(ctx, slog.LevelInfo))
	})

	t.Run("Should honor LOG_LEVEL=error", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "error")
		logger.Init()
		assert.False(t, logger.Log.Enabled(ctx, slog.LevelInfo))
		assert.False(t, logger.Log.Enabled(ctx, slog.LevelWarn))
		assert.True(t, logger.Log.Enabled(ctx, slog.LevelError))
	})

	t.Run("Should honor LOG_LEVEL=debug regardless of case", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "DEBUG")
		logger.Init()
		assert.True(t, logger.Log.Enabled(ctx, slog.LevelDebug))
	})
}
