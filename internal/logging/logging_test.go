package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fivetwenty-io/partnercenter/internal/logging"
)

func TestNew_WritesLevelsAndFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := logging.New(zap.New(core))

	logger.Debug("HTTP Request", map[string]interface{}{"method": "GET", "url": "https://example.com/v1/roles"})
	logger.Info("info", nil)
	logger.Warn("warn", map[string]interface{}{"attempt": 2})
	logger.Error("error", map[string]interface{}{"status": 500})

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "HTTP Request", entries[0].Message)
	assert.Equal(t, "GET", entries[0].ContextMap()["method"])
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.EqualValues(t, 2, entries[2].ContextMap()["attempt"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestNew_NilLogger(t *testing.T) {
	t.Parallel()

	logger := logging.New(nil)

	assert.NotPanics(t, func() {
		logger.Info("discarded", map[string]interface{}{"key": "value"})
	})
}

func TestLeveled_FoldsKeyValuePairs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	leveled := logging.Leveled(logging.New(zap.New(core)))

	leveled.Debug("performing request", "method", "GET", "url", "https://example.com")
	leveled.Warn("odd pairs", "dangling")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, "GET", entries[0].ContextMap()["method"])
	assert.Equal(t, "https://example.com", entries[0].ContextMap()["url"])
	assert.Contains(t, entries[1].ContextMap(), "dangling")
	assert.Nil(t, entries[1].ContextMap()["dangling"])
}

func TestNewZap(t *testing.T) {
	t.Parallel()

	logger, err := logging.NewZap(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = logging.NewZap(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
