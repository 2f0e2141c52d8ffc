package logger

import (
	"testing"

	"psychotest/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	t.Cleanup(func() { log = nil })

	t.Run("nop before initialize", func(t *testing.T) {
		log = nil
		assert.NotNil(t, Get())
		assert.NoError(t, Sync())
	})

	t.Run("debug level", func(t *testing.T) {
		require.NoError(t, Initialize(config.LoggerConfig{Level: "debug", Env: "development"}))
		assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("default level is info", func(t *testing.T) {
		require.NoError(t, Initialize(config.LoggerConfig{Env: "production"}))
		assert.False(t, Get().Core().Enabled(zapcore.DebugLevel))
		assert.True(t, Get().Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("unknown level", func(t *testing.T) {
		assert.Error(t, Initialize(config.LoggerConfig{Level: "loud"}))
	})
}
